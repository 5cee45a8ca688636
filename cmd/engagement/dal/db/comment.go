package db

import (
	"context"
	"time"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
)

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	if comment.ID == 0 {
		comment.ID = utils.NextID()
	}
	return translate(s.db.WithContext(ctx).Create(comment).Error, "CreateComment failed, video_id=%d", comment.VideoID)
}

func (s *Store) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, translate(err, "GetComment failed, comment_id=%d", id)
	}
	return &comment, nil
}

func (s *Store) UpdateComment(ctx context.Context, comment *model.Comment) error {
	comment.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", comment.ID).Updates(map[string]interface{}{
		"content":    comment.Content,
		"updated_at": comment.UpdatedAt,
	}).Error
	return translate(err, "UpdateComment failed, comment_id=%d", comment.ID)
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if res.Error != nil {
		return translate(res.Error, "DeleteComment failed, comment_id=%d", id)
	}
	if res.RowsAffected == 0 {
		return dal.ErrRecordNotFound
	}
	return nil
}

func (s *Store) CountCommentsByVideo(ctx context.Context, videoID int64) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, translate(err, "CountCommentsByVideo failed, video_id=%d", videoID)
	}
	return count, nil
}

func (s *Store) ListCommentsByVideo(ctx context.Context, videoID int64, offset, limit int) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).Where("video_id = ?", videoID).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, translate(err, "ListCommentsByVideo failed, video_id=%d", videoID)
	}
	return comments, nil
}
