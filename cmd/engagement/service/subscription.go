package service

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

type SubscriptionService struct {
	ctx     context.Context
	deps    *Deps
	toggler *Toggler
}

func NewSubscriptionService(ctx context.Context, deps *Deps) *SubscriptionService {
	return &SubscriptionService{ctx: ctx, deps: deps, toggler: NewToggler(deps)}
}

// ToggleSubscription subscribes actorID to channelID or cancels the
// subscription. The channel is not looked up and a user may subscribe to
// their own channel.
func (s *SubscriptionService) ToggleSubscription(actorID, channelID int64) (ToggleResult, error) {
	return s.toggler.Toggle(s.ctx, model.RelationKey{Kind: model.SubscriptionRelation, TargetID: channelID, ActorID: actorID})
}

func (s *SubscriptionService) ListChannelSubscribers(channelID int64) ([]*model.PublicUser, error) {
	subs, err := s.deps.Store.ListSubscriptionsByChannel(s.ctx, channelID)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list channel subscribers")
	}
	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.SubscriberID)
	}
	return s.resolveUsers(ids)
}

func (s *SubscriptionService) ListSubscribedChannels(subscriberID int64) ([]*model.PublicUser, error) {
	subs, err := s.deps.Store.ListSubscriptionsBySubscriber(s.ctx, subscriberID)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list subscribed channels")
	}
	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ChannelID)
	}
	return s.resolveUsers(ids)
}

// resolveUsers keeps the order of ids and drops users that no longer exist.
func (s *SubscriptionService) resolveUsers(ids []int64) ([]*model.PublicUser, error) {
	users, err := s.deps.Store.GetUsersByIDs(s.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to resolve users")
	}
	byID := make(map[int64]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := make([]*model.PublicUser, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, u.Public())
		}
	}
	return out, nil
}
