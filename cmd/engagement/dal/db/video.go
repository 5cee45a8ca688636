package db

import (
	"context"
	"time"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	if video.ID == 0 {
		video.ID = utils.NextID()
	}
	return translate(s.db.WithContext(ctx).Create(video).Error, "CreateVideo failed, owner_id=%d", video.OwnerID)
}

func (s *Store) GetVideo(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, translate(err, "GetVideo failed, video_id=%d", id)
	}
	return &video, nil
}

func (s *Store) GetVideosByIDs(ctx context.Context, ids []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(ids))
	if len(ids) == 0 {
		return videos, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, translate(err, "GetVideosByIDs failed")
	}
	return videos, nil
}

func (s *Store) UpdateVideo(ctx context.Context, video *model.Video) error {
	video.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", video.ID).Updates(map[string]interface{}{
		"title":         video.Title,
		"description":   video.Description,
		"thumbnail_url": video.ThumbnailURL,
		"is_published":  video.IsPublished,
		"updated_at":    video.UpdatedAt,
	}).Error
	return translate(err, "UpdateVideo failed, video_id=%d", video.ID)
}

func (s *Store) DeleteVideo(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Video{})
	if res.Error != nil {
		return translate(res.Error, "DeleteVideo failed, video_id=%d", id)
	}
	if res.RowsAffected == 0 {
		return dal.ErrRecordNotFound
	}
	return nil
}

func (s *Store) videoQuery(ctx context.Context, filter model.VideoFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.Video{})
	if filter.Query != "" {
		p := containsPattern(filter.Query)
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", p, p)
	}
	if filter.OwnerID != 0 {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	return q
}

func (s *Store) CountVideos(ctx context.Context, filter model.VideoFilter) (int64, error) {
	var count int64
	if err := s.videoQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, translate(err, "CountVideos failed")
	}
	return count, nil
}

func (s *Store) ListVideos(ctx context.Context, filter model.VideoFilter, sort model.VideoSort, offset, limit int) ([]*model.Video, error) {
	column := sort.Column
	if !validVideoColumn(column) {
		column = "created_at"
	}
	videos := make([]*model.Video, 0)
	err := s.videoQuery(ctx, filter).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: sort.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: sort.Desc}).
		Offset(offset).Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, translate(err, "ListVideos failed")
	}
	return videos, nil
}

func (s *Store) ListVideosByOwner(ctx context.Context, ownerID int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&videos).Error; err != nil {
		return nil, translate(err, "ListVideosByOwner failed, owner_id=%d", ownerID)
	}
	return videos, nil
}

func validVideoColumn(column string) bool {
	for _, c := range model.VideoSortColumns {
		if c == column {
			return true
		}
	}
	return false
}
