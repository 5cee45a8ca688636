package service

import (
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize(7, 7, "nope"))

	err := Authorize(7, 8, "Can not delete tweet not created by you")
	assert.True(t, errors.Is(err, errno.ForbiddenErr))
	assert.Equal(t, "Can not delete tweet not created by you", errno.ConvertErr(err).ErrMsg)
	assert.Equal(t, 400, errno.ConvertErr(err).HTTPStatus())
}
