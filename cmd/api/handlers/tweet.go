package handlers

import (
	"context"

	"VidTube.com/cmd/engagement/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	var param ContentParam
	if err := c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	tweet, err := service.NewTweetService(ctx, deps).CreateTweet(actorID, param.Content)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Tweeted successfully", tweet)
}

func ListUserTweets(ctx context.Context, c *app.RequestContext) {
	userID, err := pathID(c, "userId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	tweets, err := service.NewTweetService(ctx, deps).ListUserTweets(userID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Tweets fetched successfully", tweets)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	var param ContentParam
	if err = c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	tweet, err := service.NewTweetService(ctx, deps).UpdateTweet(actorID, tweetID, param.Content)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Tweet updated successfully", tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	if err = service.NewTweetService(ctx, deps).DeleteTweet(actorID, tweetID); err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Tweet deleted successfully", utils.H{})
}
