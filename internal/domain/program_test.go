package domain

import (
	"testing"

	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/internal/repository"
	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestProgramDomain() *programDomain {
	return NewProgramDomain(repository.NewProgramRepository(), repository.NewPassRepository())
}

func Test_programDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID("creator2")
	testutil.CreateFixtureDb(ctx)
	domain := newTestProgramDomain()

	t.Run("happy path", func(t *testing.T) {
		resp, err := domain.Create(ctx, &model.CreateProgramRequest{
			PublicKey: "new-program-address",
			Network:   "devnet",
			Tiers:     []string{"Basic", "Plus"},
		})
		require.NoError(t, err)
		require.Equal(t, "creator2", resp.Program.Creator)
		require.Equal(t, []string{"Basic", "Plus"}, resp.Program.Tiers)
	})

	t.Run("duplicated program", func(t *testing.T) {
		_, err := domain.Create(ctx, &model.CreateProgramRequest{
			PublicKey: testutil.Program1.PublicKey,
			Tiers:     []string{"Basic"},
		})
		require.Error(t, err)

		errx, ok := err.(errorx.Error)
		require.True(t, ok)
		require.Equal(t, errorx.AlreadyExists, errx.Code)
	})

	t.Run("duplicated tier name", func(t *testing.T) {
		_, err := domain.Create(ctx, &model.CreateProgramRequest{
			PublicKey: "another-address",
			Tiers:     []string{"Basic", "Basic"},
		})
		require.Error(t, err)
	})

	t.Run("empty tier list", func(t *testing.T) {
		_, err := domain.Create(ctx, &model.CreateProgramRequest{PublicKey: "another-address"})
		require.Error(t, err)
	})
}

func Test_programDomain_CreatePass(t *testing.T) {
	ctx := testutil.MockContextWithUserID("creator1")
	testutil.CreateFixtureDb(ctx)
	domain := newTestProgramDomain()

	t.Run("happy path", func(t *testing.T) {
		resp, err := domain.CreatePass(ctx, &model.CreatePassRequest{
			PublicKey:  "pass4-pubkey",
			Recipient:  "carol",
			Collection: testutil.Program1.PublicKey,
			Name:       "Pass #4",
			Tier:       "Silver",
		})
		require.NoError(t, err)
		require.Equal(t, "carol", resp.Pass.Recipient)

		// Network defaults to the program's network.
		require.Equal(t, testutil.Program1.Network, resp.Pass.Network)
	})

	t.Run("unknown program", func(t *testing.T) {
		_, err := domain.CreatePass(ctx, &model.CreatePassRequest{
			PublicKey:  "pass5-pubkey",
			Recipient:  "carol",
			Collection: "missing-address",
		})
		require.Error(t, err)
		require.Equal(t, "Not found program", err.Error())
	})

	t.Run("tier outside of program", func(t *testing.T) {
		_, err := domain.CreatePass(ctx, &model.CreatePassRequest{
			PublicKey:  "pass5-pubkey",
			Recipient:  "carol",
			Collection: testutil.Program1.PublicKey,
			Tier:       "Diamond",
		})
		require.Error(t, err)
	})

	t.Run("duplicated pass", func(t *testing.T) {
		_, err := domain.CreatePass(ctx, &model.CreatePassRequest{
			PublicKey:  testutil.Pass1.PublicKey,
			Recipient:  "alice",
			Collection: testutil.Program1.PublicKey,
		})
		require.Error(t, err)
	})
}
