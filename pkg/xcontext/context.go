package xcontext

import (
	"context"
	"net/http"

	"github.com/loyalx/backend/config"
	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/pkg/authenticator"
	"github.com/loyalx/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey          struct{}
	txKey          struct{}
	loggerKey      struct{}
	configsKey     struct{}
	userIDKey      struct{}
	tokenEngineKey struct{}
	httpRequestKey struct{}
	httpClientKey  struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current transaction if one was opened by WithDBTransaction,
// otherwise the root gorm.DB.
func DB(ctx context.Context) *gorm.DB {
	if tx := dbTransaction(ctx); tx != nil && !tx.done {
		return tx.db
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

type transaction struct {
	db   *gorm.DB
	done bool
}

func dbTransaction(ctx context.Context) *transaction {
	tx, ok := ctx.Value(txKey{}).(*transaction)
	if !ok {
		return nil
	}

	return tx
}

func WithDBTransaction(ctx context.Context) context.Context {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return context.WithValue(ctx, txKey{}, &transaction{db: db.Begin()})
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	if tx := dbTransaction(ctx); tx != nil && !tx.done {
		tx.db.Commit()
		tx.done = true
	}

	return ctx
}

// WithRollbackDBTransaction is a no-op if the transaction was committed
// before, so it is safe to defer it right after WithDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if tx := dbTransaction(ctx); tx != nil && !tx.done {
		tx.db.Rollback()
		tx.done = true
	}

	return ctx
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger(logger.SILENCE)
	}

	return l
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Configs{}
	}

	return cfg
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns the authenticated identity of this request, or an
// empty string for anonymous requests.
func RequestUserID(ctx context.Context) string {
	id, ok := ctx.Value(userIDKey{}).(string)
	if !ok {
		return ""
	}

	return id
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine[model.AccessToken]) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	engine, ok := ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine[model.AccessToken])
	if !ok {
		panic("no token engine in context")
	}

	return engine
}

func WithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	return context.WithValue(ctx, httpClientKey{}, client)
}

func HTTPClient(ctx context.Context) *http.Client {
	client, ok := ctx.Value(httpClientKey{}).(*http.Client)
	if !ok {
		return http.DefaultClient
	}

	return client
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, ok := ctx.Value(httpRequestKey{}).(*http.Request)
	if !ok {
		return nil
	}

	return r
}
