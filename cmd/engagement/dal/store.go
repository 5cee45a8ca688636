package dal

import (
	"context"
	"errors"

	"VidTube.com/cmd/model"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicate reports a violated uniqueness key.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotMember reports a playlist entry that is not present.
	ErrNotMember = errors.New("video not present in the playlist")
)

// Store is the persistence contract of the engagement core. Single record
// lookups return ErrRecordNotFound; batch lookups silently skip missing ids.
type Store interface {
	UserStore
	VideoStore
	CommentStore
	TweetStore
	RelationStore
	PlaylistStore
}

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error)
}

type VideoStore interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideo(ctx context.Context, id int64) (*model.Video, error)
	GetVideosByIDs(ctx context.Context, ids []int64) ([]*model.Video, error)
	// UpdateVideo persists title, description, thumbnail and publish state.
	UpdateVideo(ctx context.Context, video *model.Video) error
	DeleteVideo(ctx context.Context, id int64) error
	CountVideos(ctx context.Context, filter model.VideoFilter) (int64, error)
	ListVideos(ctx context.Context, filter model.VideoFilter, sort model.VideoSort, offset, limit int) ([]*model.Video, error)
	ListVideosByOwner(ctx context.Context, ownerID int64) ([]*model.Video, error)
}

type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
	UpdateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id int64) error
	CountCommentsByVideo(ctx context.Context, videoID int64) (int64, error)
	// ListCommentsByVideo returns comments in creation order.
	ListCommentsByVideo(ctx context.Context, videoID int64, offset, limit int) ([]*model.Comment, error)
}

type TweetStore interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweet(ctx context.Context, id int64) (*model.Tweet, error)
	UpdateTweet(ctx context.Context, tweet *model.Tweet) error
	DeleteTweet(ctx context.Context, id int64) error
	ListTweetsByOwner(ctx context.Context, ownerID int64) ([]*model.Tweet, error)
}

// RelationStore keeps likes and subscriptions. Records are unique per
// RelationKey and listings come back in insertion order.
type RelationStore interface {
	// DeleteRelation removes the record for key in one statement and reports
	// whether one existed.
	DeleteRelation(ctx context.Context, key model.RelationKey) (bool, error)
	// CreateRelation inserts the record for key. An existing record is not an error.
	CreateRelation(ctx context.Context, key model.RelationKey) error

	CountLikes(ctx context.Context, kind model.TargetKind, targetIDs []int64) (int64, error)
	ListLikesByActor(ctx context.Context, actorID int64, kind model.TargetKind) ([]*model.Like, error)

	CountSubscribers(ctx context.Context, channelID int64) (int64, error)
	ListSubscriptionsByChannel(ctx context.Context, channelID int64) ([]*model.Subscription, error)
	ListSubscriptionsBySubscriber(ctx context.Context, subscriberID int64) ([]*model.Subscription, error)
}

type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	// GetPlaylist loads the playlist with its videos in sequence order.
	GetPlaylist(ctx context.Context, id int64) (*model.Playlist, error)
	// UpdatePlaylist persists name and description.
	UpdatePlaylist(ctx context.Context, playlist *model.Playlist) error
	DeletePlaylist(ctx context.Context, id int64) error
	ListPlaylistsByOwner(ctx context.Context, ownerID int64) ([]*model.Playlist, error)
	// AppendPlaylistVideo adds videoID at the end of the sequence, or fails
	// with ErrDuplicate when it is already present.
	AppendPlaylistVideo(ctx context.Context, playlistID, videoID int64) error
	// RemovePlaylistVideo drops videoID from the sequence, or fails with ErrNotMember.
	RemovePlaylistVideo(ctx context.Context, playlistID, videoID int64) error
}
