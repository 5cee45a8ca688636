package model

import (
	"fmt"
	"time"
)

type Comment struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement:false"`
	VideoID   int64     `json:"video,string" gorm:"index;not null"`
	OwnerID   int64     `json:"owner,string" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:varchar(2000);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tweet struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement:false"`
	OwnerID   int64     `json:"owner,string" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:varchar(2000);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TargetKind tags what a Like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// LikeTarget is exactly one of video, comment or tweet. Build it with
// VideoTarget, CommentTarget or TweetTarget.
type LikeTarget struct {
	kind TargetKind
	id   int64
}

func VideoTarget(id int64) LikeTarget   { return LikeTarget{kind: TargetVideo, id: id} }
func CommentTarget(id int64) LikeTarget { return LikeTarget{kind: TargetComment, id: id} }
func TweetTarget(id int64) LikeTarget   { return LikeTarget{kind: TargetTweet, id: id} }

func (t LikeTarget) Kind() TargetKind { return t.kind }
func (t LikeTarget) ID() int64        { return t.id }

func (t LikeTarget) String() string {
	return fmt.Sprintf("%s:%d", t.kind, t.id)
}

// Like is stored flat; (liked_by, target_kind, target_id) is unique.
type Like struct {
	ID         int64      `json:"id,string" gorm:"primaryKey;autoIncrement:false"`
	LikedBy    int64      `json:"likedBy,string" gorm:"not null;uniqueIndex:idx_like_target,priority:1"`
	TargetKind TargetKind `json:"targetKind" gorm:"type:varchar(16);not null;uniqueIndex:idx_like_target,priority:2;index:idx_like_kind_target,priority:1"`
	TargetID   int64      `json:"targetId,string" gorm:"not null;uniqueIndex:idx_like_target,priority:3;index:idx_like_kind_target,priority:2"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func NewLike(target LikeTarget, likedBy int64) *Like {
	return &Like{
		LikedBy:    likedBy,
		TargetKind: target.Kind(),
		TargetID:   target.ID(),
	}
}

func (l *Like) Target() LikeTarget {
	return LikeTarget{kind: l.TargetKind, id: l.TargetID}
}
