package service

import (
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetLifecycle(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	stranger := f.user(t, "stranger")
	svc := NewTweetService(f.ctx, f.deps)

	tweets, err := svc.ListUserTweets(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, tweets)

	_, err = svc.CreateTweet(owner.ID, "")
	assert.True(t, errors.Is(err, errno.ParamErr))

	tweet, err := svc.CreateTweet(owner.ID, "hello world")
	require.NoError(t, err)

	_, err = svc.UpdateTweet(stranger.ID, tweet.ID, "mine now")
	assert.True(t, errors.Is(err, errno.ForbiddenErr))
	_, err = svc.UpdateTweet(owner.ID, tweet.ID, " ")
	assert.True(t, errors.Is(err, errno.ParamErr))
	updated, err := svc.UpdateTweet(owner.ID, tweet.ID, "hello again")
	require.NoError(t, err)
	assert.Equal(t, "hello again", updated.Content)

	tweets, err = svc.ListUserTweets(owner.ID)
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	assert.Equal(t, "hello again", tweets[0].Content)

	assert.True(t, errors.Is(svc.DeleteTweet(stranger.ID, tweet.ID), errno.ForbiddenErr))
	require.NoError(t, svc.DeleteTweet(owner.ID, tweet.ID))
	_, err = svc.UpdateTweet(owner.ID, tweet.ID, "ghost")
	assert.True(t, errors.Is(err, errno.NotFoundErr))
}
