package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loyalx/backend/config"
	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/pkg/authenticator"
	"github.com/loyalx/backend/pkg/logger"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can derive a new context; a nil
// returned context keeps the current one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, for logging and metrics.
type CloserFunc func(ctx context.Context)

type Router struct {
	inner  gin.IRouter
	engine *gin.Engine

	cfg    config.Configs
	db     *gorm.DB
	logger logger.Logger

	accessTokenEngine authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	return &Router{
		inner:             engine,
		engine:            engine,
		cfg:               cfg,
		db:                db,
		logger:            logger,
		accessTokenEngine: authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken),
	}
}

// Branch returns a router sharing the same routing tree but with an
// independent middleware chain.
func (r *Router) Branch() *Router {
	branch := *r
	branch.befores = append([]MiddlewareFunc{}, r.befores...)
	branch.closers = append([]CloserFunc{}, r.closers...)
	return &branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return r.engine
}
