package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
)

var _ dal.Store = (*Store)(nil)

// Store keeps every collection in process memory. Listings follow insertion
// order, like the MySQL store ordering by snowflake id.
type Store struct {
	mu sync.RWMutex

	users map[int64]*model.User

	videos     map[int64]*model.Video
	videoOrder []int64

	comments     map[int64]*model.Comment
	commentOrder []int64

	tweets     map[int64]*model.Tweet
	tweetOrder []int64

	likes         []*model.Like
	subscriptions []*model.Subscription

	playlists     map[int64]*model.Playlist
	playlistOrder []int64
}

func New() *Store {
	return &Store{
		users:     make(map[int64]*model.User),
		videos:    make(map[int64]*model.Video),
		comments:  make(map[int64]*model.Comment),
		tweets:    make(map[int64]*model.Tweet),
		playlists: make(map[int64]*model.Playlist),
	}
}

func stamp(id *int64, createdAt, updatedAt *time.Time) {
	if *id == 0 {
		*id = utils.NextID()
	}
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt != nil {
		*updatedAt = now
	}
}

func removeID(order []int64, id int64) []int64 {
	for i, v := range order {
		if v == id {
			return append(order[:i:i], order[i+1:]...)
		}
	}
	return order
}

// === Users ===

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return dal.ErrDuplicate
		}
	}
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, dal.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

// === Videos ===

func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&video.ID, &video.CreatedAt, &video.UpdatedAt)
	cp := *video
	s.videos[video.ID] = &cp
	s.videoOrder = append(s.videoOrder, video.ID)
	return nil
}

func (s *Store) GetVideo(ctx context.Context, id int64) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, dal.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *Store) GetVideosByIDs(ctx context.Context, ids []int64) ([]*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.videos[id]; ok {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Store) UpdateVideo(ctx context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[video.ID]
	if !ok {
		return dal.ErrRecordNotFound
	}
	video.UpdatedAt = time.Now()
	v.Title = video.Title
	v.Description = video.Description
	v.ThumbnailURL = video.ThumbnailURL
	v.IsPublished = video.IsPublished
	v.UpdatedAt = video.UpdatedAt
	return nil
}

func (s *Store) DeleteVideo(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return dal.ErrRecordNotFound
	}
	delete(s.videos, id)
	s.videoOrder = removeID(s.videoOrder, id)
	return nil
}

func matchVideo(v *model.Video, filter model.VideoFilter) bool {
	if filter.OwnerID != 0 && v.OwnerID != filter.OwnerID {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(v.Title), q) && !strings.Contains(strings.ToLower(v.Description), q) {
			return false
		}
	}
	return true
}

func (s *Store) filterVideos(filter model.VideoFilter) []*model.Video {
	out := make([]*model.Video, 0)
	for _, id := range s.videoOrder {
		if v := s.videos[id]; matchVideo(v, filter) {
			out = append(out, v)
		}
	}
	return out
}

func (s *Store) CountVideos(ctx context.Context, filter model.VideoFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.filterVideos(filter))), nil
}

// lessVideo compares on column; ties fall back to id.
func lessVideo(a, b *model.Video, column string) (less, equal bool) {
	switch column {
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt), a.UpdatedAt.Equal(b.UpdatedAt)
	case "views":
		return a.Views < b.Views, a.Views == b.Views
	case "duration":
		return a.Duration < b.Duration, a.Duration == b.Duration
	case "title":
		return a.Title < b.Title, a.Title == b.Title
	default:
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	}
}

func (s *Store) ListVideos(ctx context.Context, filter model.VideoFilter, order model.VideoSort, offset, limit int) ([]*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.filterVideos(filter)
	sort.SliceStable(matched, func(i, j int) bool {
		less, equal := lessVideo(matched[i], matched[j], order.Column)
		if equal {
			less = matched[i].ID < matched[j].ID
		}
		if order.Desc {
			if equal {
				return matched[i].ID > matched[j].ID
			}
			return !less
		}
		return less
	})

	out := make([]*model.Video, 0)
	if offset >= len(matched) {
		return out, nil
	}
	end := len(matched)
	if limit < end-offset {
		end = offset + limit
	}
	for _, v := range matched[offset:end] {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Store) ListVideosByOwner(ctx context.Context, ownerID int64) ([]*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Video, 0)
	for _, v := range s.filterVideos(model.VideoFilter{OwnerID: ownerID}) {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

// === Comments ===

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	cp := *comment
	s.comments[comment.ID] = &cp
	s.commentOrder = append(s.commentOrder, comment.ID)
	return nil
}

func (s *Store) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, dal.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) UpdateComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[comment.ID]
	if !ok {
		return dal.ErrRecordNotFound
	}
	comment.UpdatedAt = time.Now()
	c.Content = comment.Content
	c.UpdatedAt = comment.UpdatedAt
	return nil
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return dal.ErrRecordNotFound
	}
	delete(s.comments, id)
	s.commentOrder = removeID(s.commentOrder, id)
	return nil
}

func (s *Store) CountCommentsByVideo(ctx context.Context, videoID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, id := range s.commentOrder {
		if s.comments[id].VideoID == videoID {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListCommentsByVideo(ctx context.Context, videoID int64, offset, limit int) ([]*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Comment, 0)
	skipped := 0
	for _, id := range s.commentOrder {
		c := s.comments[id]
		if c.VideoID != videoID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(out) == limit {
			break
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// === Tweets ===

func (s *Store) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&tweet.ID, &tweet.CreatedAt, &tweet.UpdatedAt)
	cp := *tweet
	s.tweets[tweet.ID] = &cp
	s.tweetOrder = append(s.tweetOrder, tweet.ID)
	return nil
}

func (s *Store) GetTweet(ctx context.Context, id int64) (*model.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tweets[id]
	if !ok {
		return nil, dal.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *Store) UpdateTweet(ctx context.Context, tweet *model.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tweets[tweet.ID]
	if !ok {
		return dal.ErrRecordNotFound
	}
	tweet.UpdatedAt = time.Now()
	t.Content = tweet.Content
	t.UpdatedAt = tweet.UpdatedAt
	return nil
}

func (s *Store) DeleteTweet(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tweets[id]; !ok {
		return dal.ErrRecordNotFound
	}
	delete(s.tweets, id)
	s.tweetOrder = removeID(s.tweetOrder, id)
	return nil
}

func (s *Store) ListTweetsByOwner(ctx context.Context, ownerID int64) ([]*model.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Tweet, 0)
	for _, id := range s.tweetOrder {
		if t := s.tweets[id]; t.OwnerID == ownerID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}
