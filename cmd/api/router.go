package main

import (
	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	v1 := r.Group("/api/v1", authfunc.Auth()...)

	videos := v1.Group("/videos")
	videos.GET("", handlers.ListVideos)
	videos.POST("", handlers.PublishVideo)
	videos.GET("/:videoId", handlers.GetVideo)
	videos.PATCH("/:videoId", handlers.UpdateVideo)
	videos.DELETE("/:videoId", handlers.DeleteVideo)
	videos.PATCH("/toggle/publish/:videoId", handlers.TogglePublishStatus)

	comments := v1.Group("/comments")
	comments.GET("/:videoId", handlers.ListVideoComments)
	comments.POST("/:videoId", handlers.AddComment)
	comments.PATCH("/c/:commentId", handlers.UpdateComment)
	comments.DELETE("/c/:commentId", handlers.DeleteComment)

	tweets := v1.Group("/tweets")
	tweets.POST("", handlers.CreateTweet)
	tweets.GET("/user/:userId", handlers.ListUserTweets)
	tweets.PATCH("/:tweetId", handlers.UpdateTweet)
	tweets.DELETE("/:tweetId", handlers.DeleteTweet)

	likes := v1.Group("/likes")
	likes.POST("/toggle/v/:videoId", handlers.ToggleVideoLike)
	likes.POST("/toggle/c/:commentId", handlers.ToggleCommentLike)
	likes.POST("/toggle/t/:tweetId", handlers.ToggleTweetLike)
	likes.GET("/videos", handlers.ListLikedVideos)

	subscriptions := v1.Group("/subscriptions")
	subscriptions.GET("/c/:channelId", handlers.ListChannelSubscribers)
	subscriptions.POST("/c/:channelId", handlers.ToggleSubscription)
	subscriptions.GET("/u/:subscriberId", handlers.ListSubscribedChannels)

	playlist := v1.Group("/playlist")
	playlist.POST("", handlers.CreatePlaylist)
	playlist.GET("/:playlistId", handlers.GetPlaylist)
	playlist.PATCH("/:playlistId", handlers.UpdatePlaylist)
	playlist.DELETE("/:playlistId", handlers.DeletePlaylist)
	playlist.PATCH("/add/:videoId/:playlistId", handlers.AddVideoToPlaylist)
	playlist.PATCH("/remove/:videoId/:playlistId", handlers.RemoveVideoFromPlaylist)
	playlist.GET("/user/:userId", handlers.ListUserPlaylists)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("/stats", handlers.ChannelStats)
	dashboard.GET("/videos", handlers.ChannelVideos)
}
