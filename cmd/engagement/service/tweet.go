package service

import (
	"context"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type TweetService struct {
	ctx  context.Context
	deps *Deps
}

func NewTweetService(ctx context.Context, deps *Deps) *TweetService {
	return &TweetService{ctx: ctx, deps: deps}
}

func (s *TweetService) CreateTweet(actorID int64, content string) (*model.Tweet, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	tweet := &model.Tweet{OwnerID: actorID, Content: content}
	if err = s.deps.Store.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "Failed to create tweet")
	}
	return tweet, nil
}

// ListUserTweets returns every tweet of userID; an empty list is not an error.
func (s *TweetService) ListUserTweets(userID int64) ([]*model.Tweet, error) {
	tweets, err := s.deps.Store.ListTweetsByOwner(s.ctx, userID)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list tweets")
	}
	return tweets, nil
}

func (s *TweetService) getTweet(tweetID int64) (*model.Tweet, error) {
	tweet, err := s.deps.Store.GetTweet(s.ctx, tweetID)
	if err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessagef("Tweet with id='%d' not found", tweetID)
		}
		return nil, errors.WithMessage(err, "Failed to get tweet")
	}
	return tweet, nil
}

func (s *TweetService) UpdateTweet(actorID, tweetID int64, content string) (*model.Tweet, error) {
	tweet, err := s.getTweet(tweetID)
	if err != nil {
		return nil, err
	}
	if err = Authorize(tweet.OwnerID, actorID, "Can not update tweet not created by you"); err != nil {
		return nil, err
	}
	content, err = validateContent(content)
	if err != nil {
		return nil, err
	}
	tweet.Content = content
	if err = s.deps.Store.UpdateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "Failed to update tweet")
	}
	return tweet, nil
}

func (s *TweetService) DeleteTweet(actorID, tweetID int64) error {
	tweet, err := s.getTweet(tweetID)
	if err != nil {
		return err
	}
	if err = Authorize(tweet.OwnerID, actorID, "Can not delete tweet not created by you"); err != nil {
		return err
	}
	if err = s.deps.Store.DeleteTweet(s.ctx, tweetID); err != nil && !errors.Is(err, dal.ErrRecordNotFound) {
		return errors.WithMessage(err, "Failed to delete tweet")
	}
	return nil
}
