package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
)

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = utils.NextID()
	}
	return translate(s.db.WithContext(ctx).Create(user).Error, "CreateUser failed, username=%s", user.Username)
}

func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "GetUser failed, user_id=%d", id)
	}
	return &user, nil
}

func (s *Store) GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, translate(err, "GetUsersByIDs failed")
	}
	return users, nil
}
