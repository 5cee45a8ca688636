package db

import (
	"context"
	"time"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
)

func (s *Store) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if tweet.ID == 0 {
		tweet.ID = utils.NextID()
	}
	return translate(s.db.WithContext(ctx).Create(tweet).Error, "CreateTweet failed, owner_id=%d", tweet.OwnerID)
}

func (s *Store) GetTweet(ctx context.Context, id int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&tweet).Error; err != nil {
		return nil, translate(err, "GetTweet failed, tweet_id=%d", id)
	}
	return &tweet, nil
}

func (s *Store) UpdateTweet(ctx context.Context, tweet *model.Tweet) error {
	tweet.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Model(&model.Tweet{}).Where("id = ?", tweet.ID).Updates(map[string]interface{}{
		"content":    tweet.Content,
		"updated_at": tweet.UpdatedAt,
	}).Error
	return translate(err, "UpdateTweet failed, tweet_id=%d", tweet.ID)
}

func (s *Store) DeleteTweet(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tweet{})
	if res.Error != nil {
		return translate(res.Error, "DeleteTweet failed, tweet_id=%d", id)
	}
	if res.RowsAffected == 0 {
		return dal.ErrRecordNotFound
	}
	return nil
}

func (s *Store) ListTweetsByOwner(ctx context.Context, ownerID int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&tweets).Error; err != nil {
		return nil, translate(err, "ListTweetsByOwner failed, owner_id=%d", ownerID)
	}
	return tweets, nil
}
