package memory

import (
	"context"
	"time"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

// === Likes and subscriptions ===

// relationIndex returns the slice position of the record for key, or -1.
func (s *Store) relationIndex(key model.RelationKey) (int, error) {
	if key.Kind == model.SubscriptionRelation {
		for i, sub := range s.subscriptions {
			if sub.SubscriberID == key.ActorID && sub.ChannelID == key.TargetID {
				return i, nil
			}
		}
		return -1, nil
	}
	target, ok := key.LikeTarget()
	if !ok {
		return -1, errors.Errorf("unknown relation kind %q", key.Kind)
	}
	for i, like := range s.likes {
		if like.LikedBy == key.ActorID && like.Target() == target {
			return i, nil
		}
	}
	return -1, nil
}

func (s *Store) DeleteRelation(ctx context.Context, key model.RelationKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.relationIndex(key)
	if err != nil || i < 0 {
		return false, err
	}
	if key.Kind == model.SubscriptionRelation {
		s.subscriptions = append(s.subscriptions[:i:i], s.subscriptions[i+1:]...)
	} else {
		s.likes = append(s.likes[:i:i], s.likes[i+1:]...)
	}
	return true, nil
}

func (s *Store) CreateRelation(ctx context.Context, key model.RelationKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.relationIndex(key)
	if err != nil || i >= 0 {
		return err
	}
	if key.Kind == model.SubscriptionRelation {
		s.subscriptions = append(s.subscriptions, &model.Subscription{
			ID:           utils.NextID(),
			SubscriberID: key.ActorID,
			ChannelID:    key.TargetID,
			CreatedAt:    time.Now(),
		})
		return nil
	}
	target, _ := key.LikeTarget()
	like := model.NewLike(target, key.ActorID)
	like.ID = utils.NextID()
	like.CreatedAt = time.Now()
	s.likes = append(s.likes, like)
	return nil
}

// CountRelations reports how many records exist for key. It is an
// inspection hook for checking uniqueness and is not part of dal.Store.
func (s *Store) CountRelations(ctx context.Context, key model.RelationKey) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, err := s.relationIndex(key)
	if err != nil || i < 0 {
		return 0, err
	}
	return 1, nil
}

func (s *Store) CountLikes(ctx context.Context, kind model.TargetKind, targetIDs []int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		wanted[id] = struct{}{}
	}
	var count int64
	for _, like := range s.likes {
		if like.TargetKind != kind {
			continue
		}
		if _, ok := wanted[like.TargetID]; ok {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListLikesByActor(ctx context.Context, actorID int64, kind model.TargetKind) ([]*model.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Like, 0)
	for _, like := range s.likes {
		if like.LikedBy == actorID && like.TargetKind == kind {
			cp := *like
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Store) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, sub := range s.subscriptions {
		if sub.ChannelID == channelID {
			count++
		}
	}
	return count, nil
}

func (s *Store) listSubscriptions(match func(*model.Subscription) bool) []*model.Subscription {
	out := make([]*model.Subscription, 0)
	for _, sub := range s.subscriptions {
		if match(sub) {
			cp := *sub
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) ListSubscriptionsByChannel(ctx context.Context, channelID int64) ([]*model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listSubscriptions(func(sub *model.Subscription) bool { return sub.ChannelID == channelID }), nil
}

func (s *Store) ListSubscriptionsBySubscriber(ctx context.Context, subscriberID int64) ([]*model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listSubscriptions(func(sub *model.Subscription) bool { return sub.SubscriberID == subscriberID }), nil
}

// === Playlists ===

func copyPlaylist(p *model.Playlist) *model.Playlist {
	cp := *p
	cp.Videos = append(make([]int64, 0, len(p.Videos)), p.Videos...)
	return &cp
}

func (s *Store) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&playlist.ID, &playlist.CreatedAt, &playlist.UpdatedAt)
	if playlist.Videos == nil {
		playlist.Videos = []int64{}
	}
	s.playlists[playlist.ID] = copyPlaylist(playlist)
	s.playlistOrder = append(s.playlistOrder, playlist.ID)
	return nil
}

func (s *Store) GetPlaylist(ctx context.Context, id int64) (*model.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.playlists[id]
	if !ok {
		return nil, dal.ErrRecordNotFound
	}
	return copyPlaylist(p), nil
}

func (s *Store) UpdatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlists[playlist.ID]
	if !ok {
		return dal.ErrRecordNotFound
	}
	playlist.UpdatedAt = time.Now()
	p.Name = playlist.Name
	p.Description = playlist.Description
	p.UpdatedAt = playlist.UpdatedAt
	return nil
}

func (s *Store) DeletePlaylist(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[id]; !ok {
		return dal.ErrRecordNotFound
	}
	delete(s.playlists, id)
	s.playlistOrder = removeID(s.playlistOrder, id)
	return nil
}

func (s *Store) ListPlaylistsByOwner(ctx context.Context, ownerID int64) ([]*model.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Playlist, 0)
	for _, id := range s.playlistOrder {
		if p := s.playlists[id]; p.OwnerID == ownerID {
			out = append(out, copyPlaylist(p))
		}
	}
	return out, nil
}

func (s *Store) AppendPlaylistVideo(ctx context.Context, playlistID, videoID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlists[playlistID]
	if !ok {
		return dal.ErrRecordNotFound
	}
	for _, v := range p.Videos {
		if v == videoID {
			return dal.ErrDuplicate
		}
	}
	p.Videos = append(p.Videos, videoID)
	p.UpdatedAt = time.Now()
	return nil
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistID, videoID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlists[playlistID]
	if !ok {
		return dal.ErrRecordNotFound
	}
	for i, v := range p.Videos {
		if v == videoID {
			p.Videos = append(p.Videos[:i:i], p.Videos[i+1:]...)
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return dal.ErrNotMember
}
