package main

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/cmd/engagement/dal/memory"
	"VidTube.com/cmd/engagement/service"
	"VidTube.com/cmd/model"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type apiFixture struct {
	t       *testing.T
	r       *server.Hertz
	store   *memory.Store
	tempDir string
}

func newAPIFixture(t *testing.T) *apiFixture {
	require.NoError(t, authfunc.Init("test-secret", "header: Authorization", handlers.Unauthorized))
	store := memory.New()
	tempDir := filepath.Join(t.TempDir(), "staged")
	handlers.Init(service.NewDeps(store, nil, nil, true), tempDir)

	r := server.New()
	register(r)
	return &apiFixture{t: t, r: r, store: store, tempDir: tempDir}
}

func (f *apiFixture) user(name string) (*model.User, string) {
	u := &model.User{Username: name, Email: name + "@vidtube.dev", FullName: name}
	require.NoError(f.t, f.store.CreateUser(context.Background(), u))
	token, err := authfunc.GenerateToken(u.ID)
	require.NoError(f.t, err)
	return u, token
}

// do performs a request and returns status and body.
func (f *apiFixture) do(method, url, token, jsonBody string) (int, gjson.Result) {
	headers := []ut.Header{{Key: "Content-Type", Value: "application/json"}}
	if token != "" {
		headers = append(headers, ut.Header{Key: "Authorization", Value: "Bearer " + token})
	}
	var body *ut.Body
	if jsonBody != "" {
		body = &ut.Body{Body: bytes.NewBufferString(jsonBody), Len: len(jsonBody)}
	}
	w := ut.PerformRequest(f.r.Engine, method, url, body, headers...)
	resp := w.Result()
	return resp.StatusCode(), gjson.ParseBytes(resp.Body())
}

// doMultipart sends form fields plus one file per entry of files.
func (f *apiFixture) doMultipart(method, url, token string, fields, files map[string]string) (int, gjson.Result) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(f.t, mw.WriteField(k, v))
	}
	for field, name := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(f.t, err)
		_, err = fw.Write([]byte("payload"))
		require.NoError(f.t, err)
	}
	require.NoError(f.t, mw.Close())

	w := ut.PerformRequest(f.r.Engine, method, url, &ut.Body{Body: buf, Len: buf.Len()},
		ut.Header{Key: "Content-Type", Value: mw.FormDataContentType()},
		ut.Header{Key: "Authorization", Value: "Bearer " + token},
	)
	resp := w.Result()
	return resp.StatusCode(), gjson.ParseBytes(resp.Body())
}

// staged lists files left in the upload staging dir.
func (f *apiFixture) staged() []string {
	entries, err := os.ReadDir(f.tempDir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(f.t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRejectsMissingToken(t *testing.T) {
	f := newAPIFixture(t)
	status, body := f.do("GET", "/api/v1/dashboard/stats", "", "")
	assert.Equal(t, 401, status)
	assert.False(t, body.Get("success").Bool())
	assert.Equal(t, int64(401), body.Get("statusCode").Int())
}

func TestTweetRoutes(t *testing.T) {
	f := newAPIFixture(t)
	owner, token := f.user("owner")
	_, strangerToken := f.user("stranger")

	status, body := f.do("POST", "/api/v1/tweets", token, `{"content":"  hello  "}`)
	require.Equal(t, 200, status, body.Raw)
	assert.True(t, body.Get("success").Bool())
	assert.Equal(t, "Tweeted successfully", body.Get("message").String())
	assert.Equal(t, "hello", body.Get("data.content").String())
	tweetID := body.Get("data.id").String()

	status, body = f.do("PATCH", "/api/v1/tweets/"+tweetID, strangerToken, `{"content":"mine"}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Can not update tweet not created by you", body.Get("message").String())

	status, body = f.do("GET", fmt.Sprintf("/api/v1/tweets/user/%d", owner.ID), token, "")
	require.Equal(t, 200, status)
	assert.Equal(t, int64(1), body.Get("data.#").Int())

	status, body = f.do("DELETE", "/api/v1/tweets/"+tweetID, token, "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "{}", body.Get("data").Raw)
}

func TestVideoLookupAndListing(t *testing.T) {
	f := newAPIFixture(t)
	_, token := f.user("viewer")

	status, body := f.do("GET", "/api/v1/videos/12345", token, "")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Video with ID=12345 not found", body.Get("message").String())

	status, body = f.do("GET", "/api/v1/videos", token, "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "No video found for the given query", body.Get("message").String())

	status, _ = f.do("GET", "/api/v1/videos/not-a-number", token, "")
	assert.Equal(t, 400, status)

	status, _ = f.do("GET", "/api/v1/videos?page=abc", token, "")
	assert.Equal(t, 400, status)
}

func TestLikeToggleAndStats(t *testing.T) {
	f := newAPIFixture(t)
	owner, ownerToken := f.user("owner")
	_, fanToken := f.user("fan")

	status, body := f.do("GET", "/api/v1/dashboard/stats", ownerToken, "")
	require.Equal(t, 200, status)
	assert.Equal(t, gjson.Null, body.Get("data.totalVideos").Type)
	assert.Equal(t, gjson.Null, body.Get("data.totalLikes").Type)

	video := &model.Video{OwnerID: owner.ID, Title: "clip", Description: "d", Views: 3, IsPublished: true}
	require.NoError(t, f.store.CreateVideo(context.Background(), video))
	url := fmt.Sprintf("/api/v1/likes/toggle/v/%d", video.ID)

	status, body = f.do("POST", url, fanToken, "")
	require.Equal(t, 200, status)
	assert.Equal(t, "Video liked successfully", body.Get("message").String())

	status, body = f.do("GET", "/api/v1/likes/videos", fanToken, "")
	require.Equal(t, 200, status)
	assert.Equal(t, fmt.Sprint(video.ID), body.Get("data.0.id").String())

	status, body = f.do("GET", "/api/v1/dashboard/stats", ownerToken, "")
	require.Equal(t, 200, status)
	assert.Equal(t, int64(1), body.Get("data.totalVideos").Int())
	assert.Equal(t, int64(3), body.Get("data.totalViews").Int())
	assert.Equal(t, int64(1), body.Get("data.totalLikes").Int())

	status, body = f.do("POST", url, fanToken, "")
	require.Equal(t, 200, status)
	assert.Equal(t, "Video like removed successfully", body.Get("message").String())

	status, body = f.do("POST", "/api/v1/likes/toggle/c/999", fanToken, "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "Comment with ID=999 not found", body.Get("message").String())
}

func TestPlaylistRoutes(t *testing.T) {
	f := newAPIFixture(t)
	owner, token := f.user("owner")
	video := &model.Video{OwnerID: owner.ID, Title: "clip", Description: "d", IsPublished: true}
	require.NoError(t, f.store.CreateVideo(context.Background(), video))

	status, body := f.do("POST", "/api/v1/playlist", token, `{"name":"mix","description":"songs"}`)
	require.Equal(t, 200, status, body.Raw)
	playlistID := body.Get("data.id").String()

	add := fmt.Sprintf("/api/v1/playlist/add/%d/%s", video.ID, playlistID)
	status, body = f.do("PATCH", add, token, "")
	require.Equal(t, 200, status, body.Raw)
	assert.Equal(t, int64(1), body.Get("data.videos.#").Int())

	status, body = f.do("PATCH", add, token, "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "Video already present in the playlist", body.Get("message").String())

	remove := fmt.Sprintf("/api/v1/playlist/remove/%d/%s", video.ID, playlistID)
	status, _ = f.do("PATCH", remove, token, "")
	assert.Equal(t, 200, status)
	status, body = f.do("PATCH", remove, token, "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "Video not present in the playlist", body.Get("message").String())

	status, body = f.do("GET", fmt.Sprintf("/api/v1/playlist/user/%d", owner.ID), token, "")
	require.Equal(t, 200, status)
	assert.Equal(t, "mix", body.Get("data.0.name").String())
}

func TestCommentRoutes(t *testing.T) {
	f := newAPIFixture(t)
	owner, token := f.user("owner")
	video := &model.Video{OwnerID: owner.ID, Title: "clip", Description: "d", IsPublished: true}
	require.NoError(t, f.store.CreateVideo(context.Background(), video))
	comments := fmt.Sprintf("/api/v1/comments/%d", video.ID)

	status, body := f.do("GET", comments, token, "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "No comment found for the given video", body.Get("message").String())

	status, body = f.do("POST", comments, token, `{"content":"first"}`)
	require.Equal(t, 200, status, body.Raw)
	commentID := body.Get("data.id").String()

	status, body = f.do("GET", comments+"?page=1&limit=5", token, "")
	require.Equal(t, 200, status)
	assert.Equal(t, int64(1), body.Get("data.totalPages").Int())
	assert.Equal(t, "first", body.Get("data.items.0.content").String())

	status, _ = f.do("GET", comments+"?page=2&limit=5", token, "")
	assert.Equal(t, 400, status)

	status, body = f.do("PATCH", "/api/v1/comments/c/"+commentID, token, `{"content":"edited"}`)
	require.Equal(t, 200, status, body.Raw)
	assert.Equal(t, "edited", body.Get("data.content").String())
}

func TestRejectedUploadsAreNotLeftStaged(t *testing.T) {
	f := newAPIFixture(t)
	owner, _ := f.user("owner")
	_, strangerToken := f.user("stranger")
	video := &model.Video{OwnerID: owner.ID, Title: "clip", Description: "d", IsPublished: true}
	require.NoError(t, f.store.CreateVideo(context.Background(), video))

	status, body := f.doMultipart("PATCH", fmt.Sprintf("/api/v1/videos/%d", video.ID), strangerToken,
		map[string]string{"title": "mine"}, map[string]string{"thumbnail": "cover.png"})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Can not update video not published by you", body.Get("message").String())
	assert.Empty(t, f.staged())

	status, _ = f.doMultipart("PATCH", "/api/v1/videos/777", strangerToken,
		nil, map[string]string{"thumbnail": "cover.png"})
	assert.Equal(t, 404, status)
	assert.Empty(t, f.staged())

	status, body = f.doMultipart("POST", "/api/v1/videos", strangerToken,
		map[string]string{"description": "no title"},
		map[string]string{"videoFile": "clip.mp4", "thumbnail": "cover.png"})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Title is required", body.Get("message").String())
	assert.Empty(t, f.staged())
}
