package service

import (
	"strings"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentOwnership(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	stranger := f.user(t, "stranger")
	video := f.video(t, owner.ID, "clip", 0)
	svc := NewCommentService(f.ctx, f.deps)

	comment, err := svc.AddComment(owner.ID, video.ID, "  first!  ")
	require.NoError(t, err)
	assert.Equal(t, "first!", comment.Content)

	_, err = svc.UpdateComment(stranger.ID, comment.ID, "hijack")
	assert.True(t, errors.Is(err, errno.ForbiddenErr))
	assert.True(t, errors.Is(svc.DeleteComment(stranger.ID, comment.ID), errno.ForbiddenErr))

	updated, err := svc.UpdateComment(owner.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	require.NoError(t, svc.DeleteComment(owner.ID, comment.ID))

	assert.True(t, errors.Is(svc.DeleteComment(owner.ID, comment.ID), errno.NotFoundErr))
}

func TestAddCommentValidation(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	video := f.video(t, owner.ID, "clip", 0)
	svc := NewCommentService(f.ctx, f.deps)

	_, err := svc.AddComment(owner.ID, video.ID, "   ")
	assert.True(t, errors.Is(err, errno.ParamErr))
	_, err = svc.AddComment(owner.ID, video.ID, strings.Repeat("x", MaxContentLength+1))
	assert.True(t, errors.Is(err, errno.ParamErr))
	_, err = svc.AddComment(owner.ID, 31337, "orphan")
	assert.True(t, errors.Is(err, errno.NotFoundErr))
}

func TestListVideoComments(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	video := f.video(t, owner.ID, "clip", 0)
	svc := NewCommentService(f.ctx, f.deps)

	_, err := svc.ListVideoComments(video.ID, PageRequest{Page: 1, PageSize: 10})
	assert.True(t, errors.Is(err, errno.NotFoundErr))
	assert.Equal(t, "No comment found for the given video", errno.ConvertErr(err).ErrMsg)

	for i := 0; i < 12; i++ {
		_, err = svc.AddComment(owner.ID, video.ID, "c")
		require.NoError(t, err)
	}
	page, err := svc.ListVideoComments(video.ID, PageRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.TotalPages)

	_, err = svc.ListVideoComments(video.ID, PageRequest{Page: 3, PageSize: 10})
	assert.True(t, errors.Is(err, errno.PageOutOfRangeErr))
}
