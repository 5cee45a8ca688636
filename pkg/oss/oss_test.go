package oss

import (
	"testing"

	"VidTube.com/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectFor(t *testing.T) {
	bucket, object, contentType := objectFor("/tmp/upload/clip.MP4", "abc")
	assert.Equal(t, constants.VideoBucket, bucket)
	assert.Equal(t, "video/abc/video.mp4", object)
	assert.Equal(t, "video/mp4", contentType)

	bucket, object, contentType = objectFor("/tmp/upload/thumb.png", "abc")
	assert.Equal(t, constants.PictureBucket, bucket)
	assert.Equal(t, "picture/abc/cover.png", object)
	assert.Equal(t, "image/png", contentType)

	_, _, contentType = objectFor("/tmp/upload/thumb", "abc")
	assert.Equal(t, "image/jpeg", contentType)
}

func TestSplitURL(t *testing.T) {
	s := NewStore(nil, "http://localhost:9000/")

	bucket, object, err := s.splitURL("http://localhost:9000/video/video/abc/video.mp4")
	require.NoError(t, err)
	assert.Equal(t, "video", bucket)
	assert.Equal(t, "video/abc/video.mp4", object)

	_, _, err = s.splitURL("https://elsewhere.example/video/x.mp4")
	assert.Error(t, err)

	_, _, err = s.splitURL("http://localhost:9000/video")
	assert.Error(t, err)
}
