package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// relationScope selects the single record addressed by key.
func (s *Store) relationScope(ctx context.Context, key model.RelationKey) (*gorm.DB, interface{}, error) {
	tx := s.db.WithContext(ctx)
	if key.Kind == model.SubscriptionRelation {
		return tx.Model(&model.Subscription{}).
			Where("subscriber_id = ? AND channel_id = ?", key.ActorID, key.TargetID), &model.Subscription{}, nil
	}
	target, ok := key.LikeTarget()
	if !ok {
		return nil, nil, errors.Errorf("unknown relation kind %q", key.Kind)
	}
	return tx.Model(&model.Like{}).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", key.ActorID, target.Kind(), target.ID()), &model.Like{}, nil
}

func (s *Store) DeleteRelation(ctx context.Context, key model.RelationKey) (bool, error) {
	scope, rec, err := s.relationScope(ctx, key)
	if err != nil {
		return false, err
	}
	res := scope.Delete(rec)
	if res.Error != nil {
		return false, translate(res.Error, "DeleteRelation failed, key=%s", key)
	}
	return res.RowsAffected > 0, nil
}

// CreateRelation relies on the unique key; a concurrent insert of the same
// key is absorbed by ON DUPLICATE KEY.
func (s *Store) CreateRelation(ctx context.Context, key model.RelationKey) error {
	var rec interface{}
	if key.Kind == model.SubscriptionRelation {
		rec = &model.Subscription{
			ID:           utils.NextID(),
			SubscriberID: key.ActorID,
			ChannelID:    key.TargetID,
		}
	} else {
		target, ok := key.LikeTarget()
		if !ok {
			return errors.Errorf("unknown relation kind %q", key.Kind)
		}
		like := model.NewLike(target, key.ActorID)
		like.ID = utils.NextID()
		rec = like
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error
	return translate(err, "CreateRelation failed, key=%s", key)
}

// CountRelations reports how many records exist for key. It is an
// inspection hook for checking uniqueness and is not part of dal.Store.
func (s *Store) CountRelations(ctx context.Context, key model.RelationKey) (int64, error) {
	scope, _, err := s.relationScope(ctx, key)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := scope.Count(&count).Error; err != nil {
		return 0, translate(err, "CountRelations failed, key=%s", key)
	}
	return count, nil
}

func (s *Store) CountLikes(ctx context.Context, kind model.TargetKind, targetIDs []int64) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Count(&count).Error
	if err != nil {
		return 0, translate(err, "CountLikes failed, kind=%s", kind)
	}
	return count, nil
}

func (s *Store) ListLikesByActor(ctx context.Context, actorID int64, kind model.TargetKind) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	err := s.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ?", actorID, kind).
		Order("id ASC").
		Find(&likes).Error
	if err != nil {
		return nil, translate(err, "ListLikesByActor failed, user_id=%d", actorID)
	}
	return likes, nil
}

func (s *Store) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error; err != nil {
		return 0, translate(err, "CountSubscribers failed, channel_id=%d", channelID)
	}
	return count, nil
}

func (s *Store) ListSubscriptionsByChannel(ctx context.Context, channelID int64) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	if err := s.db.WithContext(ctx).Where("channel_id = ?", channelID).Order("id ASC").Find(&subs).Error; err != nil {
		return nil, translate(err, "ListSubscriptionsByChannel failed, channel_id=%d", channelID)
	}
	return subs, nil
}

func (s *Store) ListSubscriptionsBySubscriber(ctx context.Context, subscriberID int64) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	if err := s.db.WithContext(ctx).Where("subscriber_id = ?", subscriberID).Order("id ASC").Find(&subs).Error; err != nil {
		return nil, translate(err, "ListSubscriptionsBySubscriber failed, subscriber_id=%d", subscriberID)
	}
	return subs, nil
}
