package oss

import (
	"os"
	"strings"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// InitMinio builds the blob store from the minio config section. Empty
// entries fall back to MINIO_* environment variables.
func InitMinio() (*Store, error) {
	cfg := config.ConfigInfo.Minio
	endpoint := getEnvOrDefault(cfg.Endpoint, "MINIO_ENDPOINT", "localhost:9000")
	accessKeyID := getEnvOrDefault(cfg.AccessKey, "MINIO_ACCESS_KEY", "minioadmin")
	secretAccessKey := getEnvOrDefault(cfg.SecretKey, "MINIO_SECRET_KEY", "minioadmin")
	useSSL := cfg.UseSSL || os.Getenv("MINIO_USE_SSL") == "true"

	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", endpoint, accessKeyID)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, errors.Wrap(err, "create minio client failed")
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if useSSL {
			scheme = "https://"
		}
		publicURL = scheme + endpoint
	}

	hlog.Info("Connect Minio Success")
	return NewStore(client, publicURL), nil
}

func getEnvOrDefault(value, key, defaultValue string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(key); env != "" {
		return env
	}
	return defaultValue
}

func trimSlash(s string) string {
	return strings.TrimRight(s, "/")
}
