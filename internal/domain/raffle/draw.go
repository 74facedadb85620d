package raffle

import (
	"sync"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/pkg/crypto"
	"github.com/pkg/math"
	"github.com/puzpuzpuz/xsync"
)

// Rand is the random source behind a draw. Production uses a crypto-backed
// source; tests inject a seeded one.
type Rand interface {
	Intn(n int) int
}

type cryptoRand struct{}

func (cryptoRand) Intn(n int) int {
	return crypto.RandIntn(n)
}

// Drawer picks winners and serializes draws per raffle. A raffle must never
// end up with two persisted winner sets, so the caller holds the raffle's
// lock across the already-drawn check and the winner insert.
type Drawer struct {
	rnd   Rand
	locks *xsync.MapOf[string, *sync.Mutex]
}

func NewDrawer(rnd Rand) *Drawer {
	if rnd == nil {
		rnd = cryptoRand{}
	}

	return &Drawer{rnd: rnd, locks: xsync.NewMapOf[*sync.Mutex]()}
}

// Lock takes the per-raffle draw lock and returns its release func.
func (d *Drawer) Lock(raffleID string) func() {
	mutex, _ := d.locks.LoadOrStore(raffleID, &sync.Mutex{})
	mutex.Lock()
	return mutex.Unlock
}

// Pick selects k = min(numWinners, len(entries)) distinct entries with a
// partial Fisher-Yates shuffle over the first k positions. Every subset of
// size k is equally likely and selection order determines positions. The
// second result reports truncation: fewer eligible entries than requested
// winners still draws, with the smaller set.
func (d *Drawer) Pick(entries []entity.LoyaltyPass, numWinners int) ([]entity.LoyaltyPass, bool) {
	pool := make([]entity.LoyaltyPass, len(entries))
	copy(pool, entries)

	k := math.MinInt(numWinners, len(pool))
	for i := 0; i < k; i++ {
		j := i + d.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k], k < numWinners
}
