package model

import (
	"fmt"
	"time"
)

// Subscription records SubscriberID following the channel ChannelID.
type Subscription struct {
	ID           int64     `json:"id,string" gorm:"primaryKey;autoIncrement:false"`
	SubscriberID int64     `json:"subscriber,string" gorm:"not null;uniqueIndex:idx_subscription_pair,priority:1"`
	ChannelID    int64     `json:"channel,string" gorm:"not null;uniqueIndex:idx_subscription_pair,priority:2;index"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RelationKind names the toggleable relationships.
type RelationKind string

const (
	VideoLikeRelation    RelationKind = "video-like"
	CommentLikeRelation  RelationKind = "comment-like"
	TweetLikeRelation    RelationKind = "tweet-like"
	SubscriptionRelation RelationKind = "subscription"
)

// RelationKey identifies one relationship record. At most one record exists per key.
type RelationKey struct {
	Kind     RelationKind
	TargetID int64
	ActorID  int64
}

func (k RelationKey) String() string {
	return fmt.Sprintf("%s:%d:%d", k.Kind, k.TargetID, k.ActorID)
}

// LikeTarget returns the like target of a like relation; ok is false for subscriptions.
func (k RelationKey) LikeTarget() (target LikeTarget, ok bool) {
	switch k.Kind {
	case VideoLikeRelation:
		return VideoTarget(k.TargetID), true
	case CommentLikeRelation:
		return CommentTarget(k.TargetID), true
	case TweetLikeRelation:
		return TweetTarget(k.TargetID), true
	}
	return LikeTarget{}, false
}
