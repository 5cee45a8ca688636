package oss

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// UploadResult describes a stored object. Duration is set for videos only.
type UploadResult struct {
	URL      string
	Bucket   string
	Object   string
	Duration float64
}

// Store uploads local files into MinIO and serves them under publicURL.
type Store struct {
	client    *minio.Client
	publicURL string
}

func NewStore(client *minio.Client, publicURL string) *Store {
	return &Store{client: client, publicURL: trimSlash(publicURL)}
}

var videoExts = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".mkv":  true,
	".avi":  true,
}

// objectFor picks the bucket and object name of a local file by its extension.
func objectFor(localPath, id string) (bucket, object, contentType string) {
	ext := strings.ToLower(filepath.Ext(localPath))
	contentType = mime.TypeByExtension(ext)
	if videoExts[ext] {
		if contentType == "" {
			contentType = "video/mp4"
		}
		return constants.VideoBucket, "video/" + id + "/video" + ext, contentType
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return constants.PictureBucket, "picture/" + id + "/cover" + ext, contentType
}

func (s *Store) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Wrapf(err, "check bucket %s failed", bucketName)
	}
	if !exists {
		if err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: constants.BucketRegion}); err != nil {
			return errors.Wrapf(err, "create bucket %s failed", bucketName)
		}
	}
	return nil
}

// Upload stores the file at localPath and removes the local copy, whether
// the upload succeeded or not.
func (s *Store) Upload(ctx context.Context, localPath string) (*UploadResult, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			hlog.CtxWarnf(ctx, "remove temp file %s failed: %v", localPath, err)
		}
	}()
	if localPath == "" {
		return nil, errors.New("empty local path")
	}

	bucketName, objectName, contentType := objectFor(localPath, uuid.NewString())
	result := &UploadResult{Bucket: bucketName, Object: objectName}
	if bucketName == constants.VideoBucket {
		duration, err := utils.ProbeDuration(localPath)
		if err != nil {
			hlog.CtxWarnf(ctx, "probe duration of %s failed: %v", localPath, err)
		}
		result.Duration = duration
	}

	if err := s.ensureBucket(ctx, bucketName); err != nil {
		return nil, err
	}
	if _, err := s.client.FPutObject(ctx, bucketName, objectName, localPath, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrapf(err, "upload %s failed", objectName)
	}
	result.URL = fmt.Sprintf("%s/%s/%s", s.publicURL, bucketName, objectName)
	return result, nil
}

// splitURL recovers bucket and object from a URL produced by Upload.
func (s *Store) splitURL(url string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(url, s.publicURL+"/")
	if rest == url {
		return "", "", errors.Errorf("url %s is not served by this store", url)
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("malformed object url %s", url)
	}
	return parts[0], parts[1], nil
}

func (s *Store) Remove(ctx context.Context, url string) error {
	bucketName, objectName, err := s.splitURL(url)
	if err != nil {
		return err
	}
	if err = s.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "remove %s failed", objectName)
	}
	return nil
}
