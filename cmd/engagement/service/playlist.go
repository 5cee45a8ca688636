package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type CreatePlaylistRequest struct {
	Name        string
	Description string
}

// UpdatePlaylistRequest changes the non-empty fields only.
type UpdatePlaylistRequest struct {
	PlaylistID  int64
	Name        string
	Description string
}

type PlaylistService struct {
	ctx  context.Context
	deps *Deps
}

func NewPlaylistService(ctx context.Context, deps *Deps) *PlaylistService {
	return &PlaylistService{ctx: ctx, deps: deps}
}

func (s *PlaylistService) CreatePlaylist(actorID int64, req *CreatePlaylistRequest) (*model.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" {
		return nil, errno.ParamErr.WithMessage("Playlist name should not be empty")
	}
	if description == "" {
		return nil, errno.ParamErr.WithMessage("Playlist description should not be empty")
	}
	playlist := &model.Playlist{OwnerID: actorID, Name: name, Description: description, Videos: []int64{}}
	if err := s.deps.Store.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "Failed to create playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) ListUserPlaylists(userID int64) ([]*model.Playlist, error) {
	if _, err := s.deps.Store.GetUser(s.ctx, userID); err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessagef("User with ID=%d not found", userID)
		}
		return nil, errors.WithMessage(err, "Failed to get user")
	}
	playlists, err := s.deps.Store.ListPlaylistsByOwner(s.ctx, userID)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list playlists")
	}
	return playlists, nil
}

func (s *PlaylistService) GetPlaylist(playlistID int64) (*model.Playlist, error) {
	playlist, err := s.deps.Store.GetPlaylist(s.ctx, playlistID)
	if err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessagef("Playlist with id=%d not found", playlistID)
		}
		return nil, errors.WithMessage(err, "Failed to get playlist")
	}
	return playlist, nil
}

// membershipGuard applies the ownership check to membership edits when
// configured to.
func (s *PlaylistService) membershipGuard(playlist *model.Playlist, actorID int64, msg string) error {
	if !s.deps.OwnerOnlyMembership {
		return nil
	}
	return Authorize(playlist.OwnerID, actorID, msg)
}

// AddVideo appends videoID to the end of the playlist. A video already in
// the playlist is rejected with Conflict.
func (s *PlaylistService) AddVideo(actorID, playlistID, videoID int64) (*model.Playlist, error) {
	playlist, err := s.GetPlaylist(playlistID)
	if err != nil {
		return nil, err
	}
	if err = s.membershipGuard(playlist, actorID, "Can not add video to playlist not created by you"); err != nil {
		return nil, err
	}
	if _, err = s.deps.Store.GetVideo(s.ctx, videoID); err != nil {
		if errors.Is(err, dal.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessagef("Video with id=%d not found", videoID)
		}
		return nil, errors.WithMessage(err, "Failed to get video")
	}

	switch err = s.deps.Store.AppendPlaylistVideo(s.ctx, playlistID, videoID); {
	case errors.Is(err, dal.ErrDuplicate):
		return nil, errno.ConflictErr.WithMessage("Video already present in the playlist")
	case errors.Is(err, dal.ErrRecordNotFound):
		return nil, errno.NotFoundErr.WithMessagef("Playlist with id=%d not found", playlistID)
	case err != nil:
		return nil, errors.WithMessage(err, "Failed to add video to playlist")
	}
	return s.GetPlaylist(playlistID)
}

func (s *PlaylistService) RemoveVideo(actorID, playlistID, videoID int64) (*model.Playlist, error) {
	playlist, err := s.GetPlaylist(playlistID)
	if err != nil {
		return nil, err
	}
	if err = s.membershipGuard(playlist, actorID, "Can not remove video from playlist not created by you"); err != nil {
		return nil, err
	}

	switch err = s.deps.Store.RemovePlaylistVideo(s.ctx, playlistID, videoID); {
	case errors.Is(err, dal.ErrNotMember):
		return nil, errno.NotFoundErr.WithMessage("Video not present in the playlist")
	case errors.Is(err, dal.ErrRecordNotFound):
		return nil, errno.NotFoundErr.WithMessagef("Playlist with id=%d not found", playlistID)
	case err != nil:
		return nil, errors.WithMessage(err, "Failed to remove video from playlist")
	}
	return s.GetPlaylist(playlistID)
}

func (s *PlaylistService) UpdatePlaylist(actorID int64, req *UpdatePlaylistRequest) (*model.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" && description == "" {
		return nil, errno.ParamErr.WithMessage("Provide some detail to be updated")
	}
	playlist, err := s.GetPlaylist(req.PlaylistID)
	if err != nil {
		return nil, err
	}
	if err = Authorize(playlist.OwnerID, actorID, "Can not update playlist not created by you"); err != nil {
		return nil, err
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	if err = s.deps.Store.UpdatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "Failed to update playlist")
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(actorID, playlistID int64) error {
	playlist, err := s.GetPlaylist(playlistID)
	if err != nil {
		return err
	}
	if err = Authorize(playlist.OwnerID, actorID, "Can not delete playlist not created by you"); err != nil {
		return err
	}
	if err = s.deps.Store.DeletePlaylist(s.ctx, playlistID); err != nil && !errors.Is(err, dal.ErrRecordNotFound) {
		return errors.WithMessage(err, "Failed to delete playlist")
	}
	return nil
}
