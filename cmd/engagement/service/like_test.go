package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLikedVideosSkipsDeleted(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	fan := f.user(t, "fan")
	first := f.video(t, owner.ID, "first", 0)
	gone := f.video(t, owner.ID, "gone", 0)
	last := f.video(t, owner.ID, "last", 0)

	svc := NewLikeService(f.ctx, f.deps)
	for _, v := range []int64{last.ID, gone.ID, first.ID} {
		res, err := svc.ToggleVideoLike(fan.ID, v)
		require.NoError(t, err)
		assert.Equal(t, Created, res)
	}
	require.NoError(t, f.store.DeleteVideo(f.ctx, gone.ID))

	videos, err := svc.ListLikedVideos(fan.ID)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, last.ID, videos[0].ID)
	assert.Equal(t, first.ID, videos[1].ID)

	videos, err = svc.ListLikedVideos(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestToggleCommentAndTweetLike(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	video := f.video(t, owner.ID, "clip", 0)
	comment, err := NewCommentService(f.ctx, f.deps).AddComment(owner.ID, video.ID, "nice")
	require.NoError(t, err)
	tweet, err := NewTweetService(f.ctx, f.deps).CreateTweet(owner.ID, "tweet")
	require.NoError(t, err)

	svc := NewLikeService(f.ctx, f.deps)
	res, err := svc.ToggleCommentLike(owner.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, Created, res)
	res, err = svc.ToggleTweetLike(owner.ID, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, Created, res)

	// Comment and tweet likes are not video likes.
	videos, err := svc.ListLikedVideos(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, videos)
}
