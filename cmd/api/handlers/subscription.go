package handlers

import (
	"context"

	"VidTube.com/cmd/engagement/service"
	"github.com/cloudwego/hertz/pkg/app"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	channelID, err := pathID(c, "channelId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	res, err := service.NewSubscriptionService(ctx, deps).ToggleSubscription(actorID, channelID)
	sendToggle(ctx, c, res, err, toggleMessages{
		service.Created: "Channel subscribed successfully",
		service.Removed: "Channel unsubscribed successfully",
	})
}

func ListChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	users, err := service.NewSubscriptionService(ctx, deps).ListChannelSubscribers(channelID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Subscribers fetched successfully", users)
}

func ListSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberID, err := pathID(c, "subscriberId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	users, err := service.NewSubscriptionService(ctx, deps).ListSubscribedChannels(subscriberID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Subscribed channels fetched successfully", users)
}
