package raffle

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/loyalx/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func makePasses(n int) []entity.LoyaltyPass {
	passes := make([]entity.LoyaltyPass, n)
	for i := range passes {
		passes[i] = entity.LoyaltyPass{PublicKey: fmt.Sprintf("pass-%d", i)}
	}

	return passes
}

func Test_Drawer_Pick(t *testing.T) {
	t.Run("picks distinct entries", func(t *testing.T) {
		drawer := NewDrawer(rand.New(rand.NewSource(1)))
		picked, partial := drawer.Pick(makePasses(10), 3)
		require.Len(t, picked, 3)
		require.False(t, partial)

		seen := map[string]bool{}
		for _, pass := range picked {
			require.False(t, seen[pass.PublicKey])
			seen[pass.PublicKey] = true
		}
	})

	t.Run("truncates when eligible set is too small", func(t *testing.T) {
		drawer := NewDrawer(rand.New(rand.NewSource(1)))
		picked, partial := drawer.Pick(makePasses(2), 5)
		require.Len(t, picked, 2)
		require.True(t, partial)
	})

	t.Run("same source gives the same winners", func(t *testing.T) {
		first, _ := NewDrawer(rand.New(rand.NewSource(42))).Pick(makePasses(20), 5)
		second, _ := NewDrawer(rand.New(rand.NewSource(42))).Pick(makePasses(20), 5)
		require.Equal(t, first, second)
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		passes := makePasses(10)
		NewDrawer(rand.New(rand.NewSource(7))).Pick(passes, 10)
		for i, pass := range passes {
			require.Equal(t, fmt.Sprintf("pass-%d", i), pass.PublicKey)
		}
	})

	t.Run("no eligible entries", func(t *testing.T) {
		picked, partial := NewDrawer(nil).Pick(nil, 3)
		require.Empty(t, picked)
		require.True(t, partial)
	})

	t.Run("every entry can win", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(99))
		drawer := NewDrawer(rnd)
		winners := map[string]bool{}
		for i := 0; i < 200; i++ {
			picked, _ := drawer.Pick(makePasses(5), 1)
			winners[picked[0].PublicKey] = true
		}
		require.Len(t, winners, 5)
	})
}

func Test_Drawer_Lock(t *testing.T) {
	drawer := NewDrawer(nil)

	unlock := drawer.Lock("raffle-1")
	locked := make(chan struct{})
	go func() {
		defer drawer.Lock("raffle-1")()
		close(locked)
	}()

	select {
	case <-locked:
		t.Fatal("second lock acquired while the first is held")
	default:
	}

	unlock()
	<-locked
}
