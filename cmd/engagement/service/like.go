package service

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type LikeService struct {
	ctx     context.Context
	deps    *Deps
	toggler *Toggler
}

func NewLikeService(ctx context.Context, deps *Deps) *LikeService {
	return &LikeService{ctx: ctx, deps: deps, toggler: NewToggler(deps)}
}

func (s *LikeService) ToggleVideoLike(actorID, videoID int64) (ToggleResult, error) {
	return s.toggler.Toggle(s.ctx, model.RelationKey{Kind: model.VideoLikeRelation, TargetID: videoID, ActorID: actorID})
}

func (s *LikeService) ToggleCommentLike(actorID, commentID int64) (ToggleResult, error) {
	return s.toggler.Toggle(s.ctx, model.RelationKey{Kind: model.CommentLikeRelation, TargetID: commentID, ActorID: actorID})
}

func (s *LikeService) ToggleTweetLike(actorID, tweetID int64) (ToggleResult, error) {
	return s.toggler.Toggle(s.ctx, model.RelationKey{Kind: model.TweetLikeRelation, TargetID: tweetID, ActorID: actorID})
}

// ListLikedVideos resolves the video likes of actorID in the order they were
// made. Likes whose video has been deleted are skipped.
func (s *LikeService) ListLikedVideos(actorID int64) ([]*model.Video, error) {
	likes, err := s.deps.Store.ListLikesByActor(s.ctx, actorID, model.TargetVideo)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list liked videos")
	}
	ids := make([]int64, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.Target().ID())
	}
	videos, err := s.deps.Store.GetVideosByIDs(s.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to resolve liked videos")
	}
	byID := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	out := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		v, ok := byID[id]
		if !ok {
			hlog.CtxDebugf(s.ctx, "liked video %d no longer exists", id)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
