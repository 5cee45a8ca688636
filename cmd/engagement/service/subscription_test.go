package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionListings(t *testing.T) {
	f := newFixture()
	channel := f.user(t, "channel")
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	svc := NewSubscriptionService(f.ctx, f.deps)

	for _, u := range []int64{bob.ID, alice.ID} {
		res, err := svc.ToggleSubscription(u, channel.ID)
		require.NoError(t, err)
		assert.Equal(t, Created, res)
	}
	// Self subscription is allowed.
	_, err := svc.ToggleSubscription(channel.ID, channel.ID)
	require.NoError(t, err)
	// So is a channel that does not exist; it is dropped from listings.
	_, err = svc.ToggleSubscription(alice.ID, 424242)
	require.NoError(t, err)

	subscribers, err := svc.ListChannelSubscribers(channel.ID)
	require.NoError(t, err)
	require.Len(t, subscribers, 3)
	assert.Equal(t, "bob", subscribers[0].Username)
	assert.Equal(t, "alice", subscribers[1].Username)
	assert.Equal(t, "alice@vidtube.dev", subscribers[1].Email)

	channels, err := svc.ListSubscribedChannels(alice.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, channel.ID, channels[0].ID)

	res, err := svc.ToggleSubscription(bob.ID, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, Removed, res)

	channels, err = svc.ListSubscribedChannels(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, channels)
}
