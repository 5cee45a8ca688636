package handlers

import (
	"context"
	"os"
	"path/filepath"

	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/cmd/engagement/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	deps    *service.Deps
	tempDir string
)

// Init wires the handlers to the engagement core. Uploaded files are staged
// under dir until the blob store takes them.
func Init(d *service.Deps, dir string) {
	deps = d
	tempDir = dir
}

type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, message string, data interface{}) {
	status := errno.Success.HTTPStatus()
	c.JSON(status, Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// SendError writes the error envelope. Errors without a code are logged
// with their stack and reported as service errors.
func SendError(ctx context.Context, c *app.RequestContext, err error) {
	Err := errno.ConvertErr(err)
	if Err.ErrCode == errno.ServiceErrCode {
		hlog.CtxErrorf(ctx, "%s %s failed, original error: %v", c.Method(), c.Request.URI().Path(), errors.Cause(err))
		hlog.CtxErrorf(ctx, "stack trace: \n%+v\n", err)
	}
	status := Err.HTTPStatus()
	c.JSON(status, ErrorResponse{
		StatusCode: status,
		Message:    Err.ErrMsg,
		Success:    false,
	})
}

// Unauthorized is the jwt middleware rejection hook.
func Unauthorized(ctx context.Context, c *app.RequestContext, err error) {
	SendError(ctx, c, err)
	c.Abort()
}

func pathID(c *app.RequestContext, name string) (int64, error) {
	id, err := utils.ConvertStringToInt64(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessagef("Invalid %s", name)
	}
	return id, nil
}

func queryInt(c *app.RequestContext, def int64, names ...string) (int64, error) {
	for _, name := range names {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := utils.ConvertStringToInt64(raw)
		if err != nil {
			return 0, errno.ParamErr.WithMessagef("Invalid %s", name)
		}
		return v, nil
	}
	return def, nil
}

func pageRequest(c *app.RequestContext) (service.PageRequest, error) {
	page, err := queryInt(c, 1, "page")
	if err != nil {
		return service.PageRequest{}, err
	}
	limit, err := queryInt(c, 10, "limit", "pageSize")
	if err != nil {
		return service.PageRequest{}, err
	}
	return service.PageRequest{Page: page, PageSize: limit}, nil
}

// saveUpload stages the multipart file field into the temp dir and returns
// its path, or "" when the field is absent.
func saveUpload(c *app.RequestContext, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	if err = os.MkdirAll(tempDir, os.ModePerm); err != nil {
		return "", errors.Wrapf(err, "create temp dir %s failed", tempDir)
	}
	path := filepath.Join(tempDir, uuid.NewString()+filepath.Ext(fh.Filename))
	if err = c.SaveUploadedFile(fh, path); err != nil {
		return "", errors.Wrapf(err, "save upload %s failed", field)
	}
	return path, nil
}

// removeStaged deletes staged uploads once the request is done. The blob
// store may already have consumed them.
func removeStaged(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			hlog.CtxWarnf(ctx, "remove staged upload %s failed: %v", path, err)
		}
	}
}

// actor resolves the caller or writes the error envelope and returns false.
func actor(ctx context.Context, c *app.RequestContext) (int64, bool) {
	id, err := authfunc.ActorID(ctx, c)
	if err != nil {
		SendError(ctx, c, err)
		return 0, false
	}
	return id, true
}
