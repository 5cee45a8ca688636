package handlers

import (
	"context"

	"VidTube.com/cmd/engagement/service"
	"github.com/cloudwego/hertz/pkg/app"
)

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	stats, err := service.NewDashboardService(ctx, deps).ChannelStats(actorID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Stats fetched successfully", stats)
}

func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	videos, err := service.NewDashboardService(ctx, deps).ChannelVideos(actorID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Videos fetched successfully", videos)
}
