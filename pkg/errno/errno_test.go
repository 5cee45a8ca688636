package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	assert.Equal(t, Success, ConvertErr(nil))

	wrapped := errors.Wrap(ForbiddenErr.WithMessage("Can not delete tweet not created by you"), "tweet service")
	got := ConvertErr(wrapped)
	assert.Equal(t, int64(ForbiddenErrCode), got.ErrCode)
	assert.Equal(t, "Can not delete tweet not created by you", got.ErrMsg)

	plain := ConvertErr(errors.New("connection refused"))
	assert.Equal(t, int64(ServiceErrCode), plain.ErrCode)
	assert.Equal(t, "connection refused", plain.ErrMsg)
}

func TestErrNoIsMatchesCode(t *testing.T) {
	err := errors.WithMessage(NotFoundErr.WithMessagef("Comment with id=%d not found", 7), "comment")
	assert.True(t, errors.Is(err, NotFoundErr))
	assert.False(t, errors.Is(err, ConflictErr))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[ErrNo]int{
		Success:                200,
		ParamErr:               400,
		NotFoundErr:            400,
		ForbiddenErr:           400,
		ConflictErr:            400,
		UpstreamErr:            400,
		PageOutOfRangeErr:      400,
		VideoNotFoundErr:       404,
		AuthorizationFailedErr: 401,
		ServiceErr:             500,
	}
	for e, status := range cases {
		assert.Equal(t, status, e.HTTPStatus(), e.ErrMsg)
	}
}
