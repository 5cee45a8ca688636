package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"VidTube.com/cmd/engagement/dal/memory"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/oss"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeBlobs records uploads and removals. Paths listed in fail are rejected.
type fakeBlobs struct {
	mu       sync.Mutex
	fail     map[string]bool
	uploaded []string
	removed  []string
}

func newFakeBlobs(fail ...string) *fakeBlobs {
	b := &fakeBlobs{fail: make(map[string]bool)}
	for _, p := range fail {
		b.fail[p] = true
	}
	return b
}

func (b *fakeBlobs) Upload(ctx context.Context, localPath string) (*oss.UploadResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail[localPath] {
		return nil, errors.Errorf("upload %s refused", localPath)
	}
	url := fmt.Sprintf("http://blobs.local/%s", localPath)
	b.uploaded = append(b.uploaded, url)
	return &oss.UploadResult{URL: url, Duration: 12.5}, nil
}

func (b *fakeBlobs) Remove(ctx context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removed = append(b.removed, url)
	return nil
}

type fixture struct {
	ctx   context.Context
	store *memory.Store
	blobs *fakeBlobs
	deps  *Deps
}

func newFixture() *fixture {
	store := memory.New()
	blobs := newFakeBlobs()
	return &fixture{
		ctx:   context.Background(),
		store: store,
		blobs: blobs,
		deps:  NewDeps(store, nil, blobs, true),
	}
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	u := &model.User{Username: name, Email: name + "@vidtube.dev", FullName: name + " full"}
	require.NoError(t, f.store.CreateUser(f.ctx, u))
	return u
}

func (f *fixture) video(t *testing.T, ownerID int64, title string, views uint64) *model.Video {
	v := &model.Video{OwnerID: ownerID, Title: title, Description: title + " description", Views: views, IsPublished: true}
	require.NoError(t, f.store.CreateVideo(f.ctx, v))
	return v
}
