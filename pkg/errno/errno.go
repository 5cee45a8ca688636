package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	NotFoundErrCode            = 10003
	ForbiddenErrCode           = 10004
	ConflictErrCode            = 10005
	UpstreamErrCode            = 10006
	PageOutOfRangeErrCode      = 10007
	VideoNotFoundErrCode       = 10008
	AuthorizationFailedErrCode = 10009
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{
		ErrCode: code,
		ErrMsg:  msg,
	}
}

// WithMessage keeps the code and replaces the message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

func (e ErrNo) WithMessagef(format string, args ...interface{}) ErrNo {
	e.ErrMsg = fmt.Sprintf(format, args...)
	return e
}

// Is matches on the code only, so errors.Is(err, errno.NotFoundErr) holds
// for every not-found message.
func (e ErrNo) Is(target error) bool {
	var t ErrNo
	if !errors.As(target, &t) {
		return false
	}
	return e.ErrCode == t.ErrCode
}

// HTTPStatus maps the code onto the status written in the response envelope.
// Every client error is a 400 except video lookups, which answer 404.
func (e ErrNo) HTTPStatus() int {
	switch e.ErrCode {
	case SuccessCode:
		return consts.StatusOK
	case VideoNotFoundErrCode:
		return consts.StatusNotFound
	case AuthorizationFailedErrCode:
		return consts.StatusUnauthorized
	case ServiceErrCode:
		return consts.StatusInternalServerError
	default:
		return consts.StatusBadRequest
	}
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	NotFoundErr            = NewErrNo(NotFoundErrCode, "Resource not found")
	ForbiddenErr           = NewErrNo(ForbiddenErrCode, "Resource is not owned by you")
	ConflictErr            = NewErrNo(ConflictErrCode, "Resource already exists")
	UpstreamErr            = NewErrNo(UpstreamErrCode, "Upstream storage returned no result")
	PageOutOfRangeErr      = NewErrNo(PageOutOfRangeErrCode, "Page number exceeds the total pages")
	VideoNotFoundErr       = NewErrNo(VideoNotFoundErrCode, "Video not found")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Authorization failed")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
