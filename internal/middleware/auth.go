package middleware

import (
	"context"

	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/xcontext"
)

func Authenticate(ctx context.Context) (context.Context, error) {
	if xcontext.RequestUserID(ctx) == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	return ctx, nil
}
