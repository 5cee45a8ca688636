package handlers

import (
	"context"

	"VidTube.com/cmd/engagement/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	var param PlaylistParam
	if err := c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	playlist, err := service.NewPlaylistService(ctx, deps).CreatePlaylist(actorID, &service.CreatePlaylistRequest{
		Name:        param.Name,
		Description: param.Description,
	})
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Playlist created successfully", playlist)
}

func ListUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userID, err := pathID(c, "userId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	playlists, err := service.NewPlaylistService(ctx, deps).ListUserPlaylists(userID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Playlists for the given user fetched successfully", playlists)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx, deps).GetPlaylist(playlistID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Playlist fetched successfully", playlist)
}

func membershipIDs(c *app.RequestContext) (playlistID, videoID int64, err error) {
	if videoID, err = pathID(c, "videoId"); err != nil {
		return 0, 0, err
	}
	if playlistID, err = pathID(c, "playlistId"); err != nil {
		return 0, 0, err
	}
	return playlistID, videoID, nil
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	playlistID, videoID, err := membershipIDs(c)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx, deps).AddVideo(actorID, playlistID, videoID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Video added to the playlist successfully", playlist)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	playlistID, videoID, err := membershipIDs(c)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx, deps).RemoveVideo(actorID, playlistID, videoID)
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Video removed from the playlist successfully", playlist)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	var param PlaylistParam
	if err = c.Bind(&param); err != nil {
		SendError(ctx, c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	playlist, err := service.NewPlaylistService(ctx, deps).UpdatePlaylist(actorID, &service.UpdatePlaylistRequest{
		PlaylistID:  playlistID,
		Name:        param.Name,
		Description: param.Description,
	})
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Playlist updated successfully", playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	actorID, ok := actor(ctx, c)
	if !ok {
		return
	}
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		SendError(ctx, c, err)
		return
	}
	if err = service.NewPlaylistService(ctx, deps).DeletePlaylist(actorID, playlistID); err != nil {
		SendError(ctx, c, err)
		return
	}
	SendResponse(c, "Playlist deleted successfully", utils.H{})
}
