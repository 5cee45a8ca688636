package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

const MaxContentLength = 2000

// validateContent trims content and rejects empty or oversized text.
func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.ParamErr.WithMessage("Content should not be empty")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return "", errno.ParamErr.WithMessagef("Content is too long, maximum %d characters allowed", MaxContentLength)
	}
	return content, nil
}

type CommentService struct {
	ctx  context.Context
	deps *Deps
}

func NewCommentService(ctx context.Context, deps *Deps) *CommentService {
	return &CommentService{ctx: ctx, deps: deps}
}

// ListVideoComments pages through the comments of a video, oldest first.
func (s *CommentService) ListVideoComments(videoID int64, page PageRequest) (*Page[*model.Comment], error) {
	store := s.deps.Store
	return Paginate(s.ctx, page, "No comment found for the given video",
		func(ctx context.Context) (int64, error) {
			count, err := store.CountCommentsByVideo(ctx, videoID)
			return count, errors.WithMessage(err, "Failed to count comments")
		},
		func(ctx context.Context, offset, limit int) ([]*model.Comment, error) {
			comments, err := store.ListCommentsByVideo(ctx, videoID, offset, limit)
			return comments, errors.WithMessage(err, "Failed to list comments")
		},
	)
}

func (s *CommentService) AddComment(actorID, videoID int64, content string) (*model.Comment, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	if _, err = s.deps.Store.GetVideo(s.ctx, videoID); err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessagef("Video with ID=%d not found", videoID)
		}
		return nil, errors.WithMessage(err, "Failed to get video")
	}
	comment := &model.Comment{VideoID: videoID, OwnerID: actorID, Content: content}
	if err = s.deps.Store.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "Failed to create comment")
	}
	return comment, nil
}

func (s *CommentService) getComment(commentID int64) (*model.Comment, error) {
	comment, err := s.deps.Store.GetComment(s.ctx, commentID)
	if err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessagef("Comment with id=%d not found", commentID)
		}
		return nil, errors.WithMessage(err, "Failed to get comment")
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(actorID, commentID int64, content string) (*model.Comment, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	comment, err := s.getComment(commentID)
	if err != nil {
		return nil, err
	}
	if err = Authorize(comment.OwnerID, actorID, "Can not update comment not created by you"); err != nil {
		return nil, err
	}
	comment.Content = content
	if err = s.deps.Store.UpdateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "Failed to update comment")
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(actorID, commentID int64) error {
	comment, err := s.getComment(commentID)
	if err != nil {
		return err
	}
	if err = Authorize(comment.OwnerID, actorID, "Can not delete comment not created by you"); err != nil {
		return err
	}
	if err = s.deps.Store.DeleteComment(s.ctx, commentID); err != nil && !errors.Is(err, dal.ErrRecordNotFound) {
		return errors.WithMessage(err, "Failed to delete comment")
	}
	return nil
}
