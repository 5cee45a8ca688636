package model

import "time"

type Playlist struct {
	ID          int64     `json:"id,string" gorm:"primaryKey;autoIncrement:false"`
	OwnerID     int64     `json:"owner,string" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Videos      []int64   `json:"videos" gorm:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistVideo is one entry of a playlist's ordered video sequence.
type PlaylistVideo struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false"`
	PlaylistID int64     `gorm:"not null;uniqueIndex:idx_playlist_video,priority:1;index:idx_playlist_position,priority:1"`
	VideoID    int64     `gorm:"not null;uniqueIndex:idx_playlist_video,priority:2"`
	Position   int64     `gorm:"not null;index:idx_playlist_position,priority:2"`
	CreatedAt  time.Time
}
