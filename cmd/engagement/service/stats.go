package service

import (
	"context"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

// ChannelStats is the dashboard summary of a channel. A nil field means the
// group it is derived from had no rows; it is never reported as 0.
type ChannelStats struct {
	ID               int64   `json:"id,string"`
	Username         string  `json:"username"`
	FullName         string  `json:"fullName"`
	TotalVideos      *int64  `json:"totalVideos"`
	TotalViews       *uint64 `json:"totalViews"`
	TotalLikes       *int64  `json:"totalLikes"`
	TotalSubscribers *int64  `json:"totalSubscribers"`
}

// group is the reduction of a set of rows: how many, and the sum of one column.
type group struct {
	rows int64
	sum  uint64
}

func (g group) count() *int64 {
	if g.rows == 0 {
		return nil
	}
	n := g.rows
	return &n
}

func (g group) total() *uint64 {
	if g.rows == 0 {
		return nil
	}
	n := g.sum
	return &n
}

type DashboardService struct {
	ctx  context.Context
	deps *Deps
}

func NewDashboardService(ctx context.Context, deps *Deps) *DashboardService {
	return &DashboardService{ctx: ctx, deps: deps}
}

// ChannelStats is computed fresh on every call from the videos, likes and
// subscriptions of actorID.
func (s *DashboardService) ChannelStats(actorID int64) (*ChannelStats, error) {
	store := s.deps.Store
	user, err := store.GetUser(s.ctx, actorID)
	if err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessagef("User with ID=%d not found", actorID)
		}
		return nil, errors.WithMessage(err, "Failed to get channel owner")
	}
	stats := &ChannelStats{ID: user.ID, Username: user.Username, FullName: user.FullName}

	videos, err := store.ListVideosByOwner(s.ctx, actorID)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list channel videos")
	}
	var vg group
	ids := make([]int64, 0, len(videos))
	for _, v := range videos {
		vg.rows++
		vg.sum += v.Views
		ids = append(ids, v.ID)
	}
	stats.TotalVideos = vg.count()
	stats.TotalViews = vg.total()

	// Likes are looked up within the video group only.
	if vg.rows > 0 {
		likes, err := store.CountLikes(s.ctx, model.TargetVideo, ids)
		if err != nil {
			return nil, errors.WithMessage(err, "Failed to count channel likes")
		}
		stats.TotalLikes = group{rows: likes}.count()
	}

	subscribers, err := store.CountSubscribers(s.ctx, actorID)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to count channel subscribers")
	}
	stats.TotalSubscribers = group{rows: subscribers}.count()
	return stats, nil
}

// ChannelVideos lists every video owned by actorID, published or not.
func (s *DashboardService) ChannelVideos(actorID int64) ([]*model.Video, error) {
	videos, err := s.deps.Store.ListVideosByOwner(s.ctx, actorID)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list channel videos")
	}
	return videos, nil
}
