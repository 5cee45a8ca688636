package constants

import "time"

const (
	ServiceName = "VidTube"

	IdentityKey = "user_id"

	VideoBucket   = "video"
	PictureBucket = "picture"
	BucketRegion  = "us-east-1"

	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultLockExpiry = 5 * time.Second
	DefaultLockTries  = 32

	DefaultTempDir = "./public/temp"
)
