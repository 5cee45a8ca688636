package model

import "time"

type Video struct {
	ID           int64     `json:"id,string" gorm:"primaryKey;autoIncrement:false"`
	OwnerID      int64     `json:"owner,string" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	VideoURL     string    `json:"videoFile" gorm:"type:varchar(512);not null"`
	ThumbnailURL string    `json:"thumbnail" gorm:"type:varchar(512);not null"`
	Duration     float64   `json:"duration"`
	Views        uint64    `json:"views" gorm:"not null;default:0"`
	IsPublished  bool      `json:"isPublished" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VideoFilter narrows a video listing. Zero values disable a predicate.
type VideoFilter struct {
	// Query is matched case-insensitively as a substring of title or description.
	Query   string
	OwnerID int64
}

// VideoSort orders a video listing by a store column.
type VideoSort struct {
	Column string
	Desc   bool
}

// Sortable video columns keyed by their public field name.
var VideoSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}
