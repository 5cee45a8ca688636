package handlers

import (
	"context"

	"VidTube.com/cmd/engagement/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// toggleMessages maps a toggle outcome to its response message.
type toggleMessages map[service.ToggleResult]string

func sendToggle(ctx context.Context, c *app.RequestContext, res service.ToggleResult, err error, msgs toggleMessages) {
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, msgs[res], utils.H{})
}

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	res, err := service.NewLikeService(ctx, deps).ToggleVideoLike(actorID, videoID)
	sendToggle(ctx, c, res, err, toggleMessages{
		service.Created: "Video liked successfully",
		service.Removed: "Video like removed successfully",
	})
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	res, err := service.NewLikeService(ctx, deps).ToggleCommentLike(actorID, commentID)
	sendToggle(ctx, c, res, err, toggleMessages{
		service.Created: "Comment liked successfully",
		service.Removed: "Comment like removed successfully",
	})
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	res, err := service.NewLikeService(ctx, deps).ToggleTweetLike(actorID, tweetID)
	sendToggle(ctx, c, res, err, toggleMessages{
		service.Created: "Tweet liked successfully",
		service.Removed: "Tweet like removed successfully",
	})
}

func ListLikedVideos(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	videos, err := service.NewLikeService(ctx, deps).ListLikedVideos(actorID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Liked video fetched successfully", videos)
}
