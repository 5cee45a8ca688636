package db

import (
	"context"
	"time"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (s *Store) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if playlist.ID == 0 {
		playlist.ID = utils.NextID()
	}
	if playlist.Videos == nil {
		playlist.Videos = []int64{}
	}
	return translate(s.db.WithContext(ctx).Create(playlist).Error, "CreatePlaylist failed, owner_id=%d", playlist.OwnerID)
}

func (s *Store) GetPlaylist(ctx context.Context, id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&playlist).Error; err != nil {
		return nil, translate(err, "GetPlaylist failed, playlist_id=%d", id)
	}
	videos := make([]int64, 0)
	err := s.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", id).
		Order("position ASC").Order("id ASC").
		Pluck("video_id", &videos).Error
	if err != nil {
		return nil, translate(err, "GetPlaylist videos failed, playlist_id=%d", id)
	}
	playlist.Videos = videos
	return &playlist, nil
}

func (s *Store) UpdatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	playlist.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Model(&model.Playlist{}).Where("id = ?", playlist.ID).Updates(map[string]interface{}{
		"name":        playlist.Name,
		"description": playlist.Description,
		"updated_at":  playlist.UpdatedAt,
	}).Error
	return translate(err, "UpdatePlaylist failed, playlist_id=%d", playlist.ID)
}

func (s *Store) DeletePlaylist(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return translate(err, "DeletePlaylist videos failed, playlist_id=%d", id)
		}
		res := tx.Where("id = ?", id).Delete(&model.Playlist{})
		if res.Error != nil {
			return translate(res.Error, "DeletePlaylist failed, playlist_id=%d", id)
		}
		if res.RowsAffected == 0 {
			return dal.ErrRecordNotFound
		}
		return nil
	})
}

func (s *Store) ListPlaylistsByOwner(ctx context.Context, ownerID int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&playlists).Error; err != nil {
		return nil, translate(err, "ListPlaylistsByOwner failed, owner_id=%d", ownerID)
	}
	if len(playlists) == 0 {
		return playlists, nil
	}
	ids := make([]int64, 0, len(playlists))
	byID := make(map[int64]*model.Playlist, len(playlists))
	for _, p := range playlists {
		p.Videos = []int64{}
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}
	var entries []*model.PlaylistVideo
	err := s.db.WithContext(ctx).Where("playlist_id IN ?", ids).
		Order("playlist_id ASC").Order("position ASC").Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, translate(err, "ListPlaylistsByOwner videos failed, owner_id=%d", ownerID)
	}
	for _, e := range entries {
		byID[e.PlaylistID].Videos = append(byID[e.PlaylistID].Videos, e.VideoID)
	}
	return playlists, nil
}

func (s *Store) AppendPlaylistVideo(ctx context.Context, playlistID, videoID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last *int64
		if err := tx.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistID).
			Select("MAX(position)").Scan(&last).Error; err != nil {
			return translate(err, "AppendPlaylistVideo position failed, playlist_id=%d", playlistID)
		}
		next := int64(0)
		if last != nil {
			next = *last + 1
		}
		err := tx.Create(&model.PlaylistVideo{
			ID:         utils.NextID(),
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   next,
		}).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return dal.ErrDuplicate
			}
			return translate(err, "AppendPlaylistVideo failed, playlist_id=%d, video_id=%d", playlistID, videoID)
		}
		return translate(tx.Model(&model.Playlist{}).Where("id = ?", playlistID).
			Update("updated_at", time.Now()).Error, "touch playlist failed, playlist_id=%d", playlistID)
	})
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistID, videoID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).Delete(&model.PlaylistVideo{})
		if res.Error != nil {
			return translate(res.Error, "RemovePlaylistVideo failed, playlist_id=%d, video_id=%d", playlistID, videoID)
		}
		if res.RowsAffected == 0 {
			return dal.ErrNotMember
		}
		return translate(tx.Model(&model.Playlist{}).Where("id = ?", playlistID).
			Update("updated_at", time.Now()).Error, "touch playlist failed, playlist_id=%d", playlistID)
	})
}
