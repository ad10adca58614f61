package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_FirstSightIsMiss(t *testing.T) {
	c := New(Config{})
	out := c.Lookup("x") // single-char string: gain = 1 + 1 - 1 = 1 > 0, still admitted
	assert.False(t, out.Hit)
	assert.Empty(t, out.Promotions)
}

func TestLookup_PromotesAfterReconsiderWindow(t *testing.T) {
	c := New(Config{ReconsiderEvery: 2, MaxCache: 4, MaxFutureCache: 4})

	out := c.Lookup("repeated-string")
	assert.False(t, out.Hit)
	assert.Empty(t, out.Promotions)

	// Second lookup crosses the reconsider window and should promote the
	// only future-cache candidate (its rank is positive: seen twice).
	out = c.Lookup("repeated-string")
	assert.False(t, out.Hit)
	require.Len(t, out.Promotions, 1)
	assert.Equal(t, "repeated-string", out.Promotions[0])

	// From here on, the string resolves as an active alias hit.
	out = c.Lookup("repeated-string")
	assert.True(t, out.Hit)
	assert.Equal(t, uint64(0), out.AliasID)
}

func TestLookup_PromotionOrderByGainTimesUse(t *testing.T) {
	c := New(Config{ReconsiderEvery: 6, MaxCache: 1, MaxFutureCache: 4})

	// "short" seen 5 times (rank = max_gain * nb_use = max_gain * 4) beats
	// "a-much-longer-string..." seen once (rank = max_gain * 0 = 0), even
	// though the latter has a larger per-use byte gain. With MaxCache=1
	// only one candidate can be promoted this round.
	for i := 0; i < 5; i++ {
		c.Lookup("short")
	}
	out := c.Lookup("a-much-longer-string-with-more-bytes")

	require.Len(t, out.Promotions, 1)
	assert.Equal(t, "short", out.Promotions[0])
}

func TestForget_RemovesActiveEntry(t *testing.T) {
	c := New(Config{ReconsiderEvery: 2, MaxCache: 4, MaxFutureCache: 4})

	c.Lookup("alpha")                  // miss, admitted to future cache with nb_use=0
	out := c.Lookup("alpha")           // future hit (nb_use=1), crosses the reconsider window
	require.Len(t, out.Promotions, 1)  // positive rank now that nb_use > 0
	id := uint64(0)

	ok := c.Forget(id)
	assert.True(t, ok)

	out = c.Lookup("alpha")
	assert.False(t, out.Hit, "forgotten entry must not resolve as a hit")

	ok = c.Forget(id)
	assert.False(t, ok, "forgetting an already-forgotten id reports false")
}

func TestReconsider_RespectsRemainingActiveCapacity(t *testing.T) {
	c := New(Config{ReconsiderEvery: 3, MaxCache: 1, MaxFutureCache: 4})

	c.Lookup("first-candidate-string")
	c.Lookup("second-candidate-string")
	out := c.Lookup("second-candidate-string")

	// Active cache capacity is 1: at most one of the two candidates may
	// be promoted in a single reconsideration pass.
	assert.LessOrEqual(t, len(out.Promotions), 1)
}

func TestEstimateGain_ShortStringsStillPositive(t *testing.T) {
	assert.Greater(t, estimateGain("a"), 0)
	assert.Greater(t, estimateGain("a-somewhat-longer-repeated-token"), 0)
}
