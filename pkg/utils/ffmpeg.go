package utils

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration reads the container duration, in seconds, of a local media file.
func ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe the media file")
	}
	duration := gjson.Get(out, "format.duration")
	if !duration.Exists() {
		return 0, errors.Errorf("no duration reported for %s", path)
	}
	return duration.Float(), nil
}
