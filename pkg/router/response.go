package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loyalx/backend/pkg/errorx"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// StatusResponse lets a response override the default 200 status, e.g. 201
// for creations.
type StatusResponse interface {
	HTTPStatus() int
}

func writeResponse(gctx *gin.Context, data any, err error) {
	if err != nil {
		errx := errorx.Unknown
		if !errors.As(err, &errx) {
			errx = errorx.Unknown
		}

		gctx.JSON(httpStatus(errx.Code), response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		})
		return
	}

	status := http.StatusOK
	if sr, ok := data.(StatusResponse); ok {
		status = sr.HTTPStatus()
	}

	gctx.JSON(status, response{Code: 0, Data: data})
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists, errorx.Unavailable:
		return http.StatusConflict
	case errorx.NotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

type errKey struct{}

func withError(ctx context.Context, err error) context.Context {
	if err == nil {
		return ctx
	}

	return context.WithValue(ctx, errKey{}, err)
}

// Error returns the handler error of this request, for closers.
func Error(ctx context.Context) error {
	err, ok := ctx.Value(errKey{}).(error)
	if !ok {
		return nil
	}

	return err
}
