package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// ListVideosRequest carries the raw listing query. Empty strings disable
// the matching filter.
type ListVideosRequest struct {
	Query    string
	SortBy   string
	SortType string
	UserID   string
	Page     int64
	Limit    int64
}

type PublishVideoRequest struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// UpdateVideoRequest changes the non-empty fields only.
type UpdateVideoRequest struct {
	VideoID       int64
	Title         string
	Description   string
	ThumbnailPath string
}

type VideoService struct {
	ctx  context.Context
	deps *Deps
}

func NewVideoService(ctx context.Context, deps *Deps) *VideoService {
	return &VideoService{ctx: ctx, deps: deps}
}

// videoSort resolves sortBy and sortType. Without sortBy the newest videos
// come first; with it the order is descending only for sortType "desc".
func videoSort(sortBy, sortType string) (model.VideoSort, error) {
	if sortBy == "" {
		return model.VideoSort{Column: "created_at", Desc: true}, nil
	}
	column, ok := model.VideoSortColumns[sortBy]
	if !ok {
		return model.VideoSort{}, errno.ParamErr.WithMessagef("Can not sort videos by %q", sortBy)
	}
	return model.VideoSort{Column: column, Desc: sortType == "desc"}, nil
}

func (s *VideoService) ListVideos(req *ListVideosRequest) (*Page[*model.Video], error) {
	filter := model.VideoFilter{Query: strings.TrimSpace(req.Query)}
	if req.UserID != "" {
		ownerID, err := utils.ConvertStringToInt64(req.UserID)
		if err != nil || ownerID <= 0 {
			return nil, errno.ParamErr.WithMessage("Invalid userId")
		}
		filter.OwnerID = ownerID
	}
	order, err := videoSort(req.SortBy, req.SortType)
	if err != nil {
		return nil, err
	}

	store := s.deps.Store
	return Paginate(s.ctx, PageRequest{Page: req.Page, PageSize: req.Limit}, "No video found for the given query",
		func(ctx context.Context) (int64, error) {
			count, err := store.CountVideos(ctx, filter)
			return count, errors.WithMessage(err, "Failed to count videos")
		},
		func(ctx context.Context, offset, limit int) ([]*model.Video, error) {
			videos, err := store.ListVideos(ctx, filter, order, offset, limit)
			return videos, errors.WithMessage(err, "Failed to list videos")
		},
	)
}

// upload stores localPath and treats an empty result as an upstream failure.
func (s *VideoService) upload(localPath, msg string) (*oss.UploadResult, error) {
	result, err := s.deps.Blobs.Upload(s.ctx, localPath)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "upload %s failed: %v", localPath, err)
		return nil, errno.UpstreamErr.WithMessage(msg)
	}
	if result == nil || result.URL == "" {
		return nil, errno.UpstreamErr.WithMessage(msg)
	}
	return result, nil
}

// discard removes blobs that no record points at anymore. Failures are
// logged and not returned.
func (s *VideoService) discard(urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.deps.Blobs.Remove(s.ctx, url); err != nil {
			hlog.CtxWarnf(s.ctx, "remove orphaned blob %s failed: %v", url, err)
		}
	}
}

func (s *VideoService) PublishVideo(actorID int64, req *PublishVideoRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return nil, errno.ParamErr.WithMessage("Title is required")
	}
	if description == "" {
		return nil, errno.ParamErr.WithMessage("Description is required")
	}
	if req.VideoPath == "" {
		return nil, errno.ParamErr.WithMessage("Video file is required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("Thumbnail is required")
	}

	videoFile, err := s.upload(req.VideoPath, "Video file is missing")
	if err != nil {
		return nil, err
	}
	thumbnail, err := s.upload(req.ThumbnailPath, "Thumbnail file is missing")
	if err != nil {
		s.discard(videoFile.URL)
		return nil, err
	}

	video := &model.Video{
		OwnerID:      actorID,
		Title:        title,
		Description:  description,
		VideoURL:     videoFile.URL,
		ThumbnailURL: thumbnail.URL,
		Duration:     videoFile.Duration,
		Views:        0,
		IsPublished:  true,
	}
	if err = s.deps.Store.CreateVideo(s.ctx, video); err != nil {
		s.discard(videoFile.URL, thumbnail.URL)
		return nil, errors.WithMessage(err, "Failed to create video")
	}
	return video, nil
}

func (s *VideoService) GetVideo(videoID int64) (*model.Video, error) {
	video, err := s.deps.Store.GetVideo(s.ctx, videoID)
	if err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.VideoNotFoundErr.WithMessagef("Video with ID=%d not found", videoID)
		}
		return nil, errors.WithMessage(err, "Failed to get video")
	}
	return video, nil
}

func (s *VideoService) UpdateVideo(actorID int64, req *UpdateVideoRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" && description == "" && req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("Provide some detail to be updated")
	}
	video, err := s.GetVideo(req.VideoID)
	if err != nil {
		return nil, err
	}
	if err = Authorize(video.OwnerID, actorID, "Can not update video not published by you"); err != nil {
		return nil, err
	}

	if title != "" {
		video.Title = title
	}
	if description != "" {
		video.Description = description
	}
	var uploaded string
	replaced := video.ThumbnailURL
	if req.ThumbnailPath != "" {
		thumbnail, err := s.upload(req.ThumbnailPath, "Error while uploading thumbnail")
		if err != nil {
			return nil, err
		}
		uploaded = thumbnail.URL
		video.ThumbnailURL = thumbnail.URL
	}

	if err = s.deps.Store.UpdateVideo(s.ctx, video); err != nil {
		s.discard(uploaded)
		return nil, errors.WithMessage(err, "Failed to update video")
	}
	if uploaded != "" && replaced != uploaded {
		s.discard(replaced)
	}
	return video, nil
}

// DeleteVideo removes the video record and its blobs. Likes, comments and
// playlist entries pointing at it are left in place.
func (s *VideoService) DeleteVideo(actorID, videoID int64) error {
	video, err := s.GetVideo(videoID)
	if err != nil {
		return err
	}
	if err = Authorize(video.OwnerID, actorID, "Can not delete video not published by you"); err != nil {
		return err
	}
	if err = s.deps.Store.DeleteVideo(s.ctx, videoID); err != nil && !errors.Is(err, dal.ErrRecordNotFound) {
		return errors.WithMessage(err, "Failed to delete video")
	}
	s.discard(video.VideoURL, video.ThumbnailURL)
	return nil
}

func (s *VideoService) TogglePublishStatus(actorID, videoID int64) (*model.Video, error) {
	video, err := s.GetVideo(videoID)
	if err != nil {
		return nil, err
	}
	if err = Authorize(video.OwnerID, actorID, "Can not change publish status of video not published by you"); err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err = s.deps.Store.UpdateVideo(s.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "Failed to update publish status")
	}
	return video, nil
}
