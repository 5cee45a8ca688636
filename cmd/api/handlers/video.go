package handlers

import (
	"context"

	"VidTube.com/cmd/engagement/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.BindQuery(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	page, err := pageRequest(c)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	videos, err := service.NewVideoService(ctx, deps).ListVideos(&service.ListVideosRequest{
		Query:    param.Query,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		UserID:   param.UserID,
		Page:     page.Page,
		Limit:    page.PageSize,
	})
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Videos fetched successfully", videos)
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	var param VideoDetailParam
	if err := c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	videoPath, err := saveUpload(c, "videoFile")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	defer removeStaged(ctx, videoPath)
	thumbnailPath, err := saveUpload(c, "thumbnail")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	defer removeStaged(ctx, thumbnailPath)
	video, err := service.NewVideoService(ctx, deps).PublishVideo(actorID, &service.PublishVideoRequest{
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Video published successfully", video)
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	video, err := service.NewVideoService(ctx, deps).GetVideo(videoID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Video fetched successfully", video)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	var param VideoDetailParam
	if err = c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	thumbnailPath, err := saveUpload(c, "thumbnail")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	defer removeStaged(ctx, thumbnailPath)
	video, err := service.NewVideoService(ctx, deps).UpdateVideo(actorID, &service.UpdateVideoRequest{
		VideoID:       videoID,
		Title:         param.Title,
		Description:   param.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Video updated successfully", video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	if err = service.NewVideoService(ctx, deps).DeleteVideo(actorID, videoID); err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Video deleted successfully", utils.H{})
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	video, err := service.NewVideoService(ctx, deps).TogglePublishStatus(actorID, videoID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Video publish status toggled successfully", video)
}
