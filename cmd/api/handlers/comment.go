package handlers

import (
	"context"

	"VidTube.com/cmd/engagement/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func ListVideoComments(ctx context.Context, c *app.RequestContext) {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	page, err := pageRequest(c)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	comments, err := service.NewCommentService(ctx, deps).ListVideoComments(videoID, page)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Comments fetched successfully", comments)
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	var param ContentParam
	if err = c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	comment, err := service.NewCommentService(ctx, deps).AddComment(actorID, videoID, param.Content)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Comment added successfully", comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	var param ContentParam
	if err = c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	comment, err := service.NewCommentService(ctx, deps).UpdateComment(actorID, commentID, param.Content)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Comment updated successfully", comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	if err = service.NewCommentService(ctx, deps).DeleteComment(actorID, commentID); err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Comment deleted successfully", utils.H{})
}
