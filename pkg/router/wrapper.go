package router

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		ctx := router.newRequestContext(gctx)

		var req Request
		var err error
		switch method {
		case "GET":
			err = gctx.ShouldBindQuery(&req)
		case "POST":
			err = gctx.ShouldBindJSON(&req)
			if errors.Is(err, io.EOF) {
				err = nil
			}
		default:
			err = errors.New("unsupported method")
		}

		if err == nil && len(gctx.Params) > 0 {
			err = gctx.ShouldBindUri(&req)
		}

		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			err = errorx.New(errorx.BadRequest, "Cannot bind the request")
			writeResponse(gctx, nil, err)
			router.close(withError(ctx, err))
			return
		}

		for _, middleware := range router.befores {
			newCtx, err := middleware(ctx)
			if err != nil {
				writeResponse(gctx, nil, err)
				router.close(withError(ctx, err))
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		resp, err := handler(ctx, &req)
		writeResponse(gctx, resp, err)
		router.close(withError(ctx, err))
	}
}

func (r *Router) newRequestContext(gctx *gin.Context) context.Context {
	ctx := gctx.Request.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithTokenEngine(ctx, r.accessTokenEngine)
	ctx = xcontext.WithHTTPRequest(ctx, gctx.Request)

	if userID := r.requestUserID(gctx); userID != "" {
		ctx = xcontext.WithRequestUserID(ctx, userID)
	}

	return ctx
}

func (r *Router) requestUserID(gctx *gin.Context) string {
	token := ""
	authorization := gctx.GetHeader("Authorization")
	if auth, t, found := strings.Cut(authorization, " "); found && auth == "Bearer" {
		token = t
	} else if cookie, err := gctx.Cookie(r.cfg.Auth.AccessToken.Name); err == nil {
		token = cookie
	}

	if token == "" {
		return ""
	}

	info, err := r.accessTokenEngine.Verify(token)
	if err != nil {
		return ""
	}

	return info.ID
}

func (r *Router) close(ctx context.Context) {
	for _, closer := range r.closers {
		closer(ctx)
	}
}
