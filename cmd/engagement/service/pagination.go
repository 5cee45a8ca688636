package service

import (
	"context"

	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
)

type PageRequest struct {
	Page     int64
	PageSize int64
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int64 `json:"page"`
	PageSize   int64 `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// Paginate counts the matching items and then fetches the requested page.
// Page size is capped at constants.MaxPageSize. A result set with no items
// fails with NotFound carrying emptyMsg, and a page beyond the last one
// fails with PageOutOfRange.
func Paginate[T any](
	ctx context.Context,
	req PageRequest,
	emptyMsg string,
	count func(ctx context.Context) (int64, error),
	fetch func(ctx context.Context, offset, limit int) ([]T, error),
) (*Page[T], error) {
	if req.Page < 1 {
		return nil, errno.ParamErr.WithMessage("Page must be a positive integer")
	}
	if req.PageSize < 1 {
		return nil, errno.ParamErr.WithMessage("Limit must be a positive integer")
	}
	if req.PageSize > constants.MaxPageSize {
		return nil, errno.ParamErr.WithMessagef("Limit must not exceed %d", constants.MaxPageSize)
	}

	total, err := count(ctx)
	if err != nil {
		return nil, err
	}
	totalPages := total / req.PageSize
	if total%req.PageSize != 0 {
		totalPages++
	}
	if totalPages == 0 {
		return nil, errno.NotFoundErr.WithMessage(emptyMsg)
	}
	if req.Page > totalPages {
		return nil, errno.PageOutOfRangeErr
	}

	items, err := fetch(ctx, int((req.Page-1)*req.PageSize), int(req.PageSize))
	if err != nil {
		return nil, err
	}
	return &Page[T]{
		Items:      items,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}
