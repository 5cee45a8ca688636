package service

import (
	"context"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/pkg/oss"
)

// Locker serializes work on one key. The returned func releases the key.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// BlobStore keeps uploaded media. Upload consumes the local file; a nil
// result without error means the store produced nothing.
type BlobStore interface {
	Upload(ctx context.Context, localPath string) (*oss.UploadResult, error)
	Remove(ctx context.Context, url string) error
}

// Deps is shared by every service of the engagement core.
type Deps struct {
	Store  dal.Store
	Locker Locker
	Blobs  BlobStore

	// OwnerOnlyMembership restricts playlist add/remove to the playlist owner.
	OwnerOnlyMembership bool
}

func NewDeps(store dal.Store, locker Locker, blobs BlobStore, ownerOnlyMembership bool) *Deps {
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &Deps{
		Store:               store,
		Locker:              locker,
		Blobs:               blobs,
		OwnerOnlyMembership: ownerOnlyMembership,
	}
}
