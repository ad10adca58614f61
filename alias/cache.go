// Package alias implements the two-tier streaming alias cache (spec §4.6):
// an encode-side Cache that decides when a repeated string is worth
// replacing with a short Alias record, and a decode-side Table that tracks
// the identifiers a stream's Define/Forget records have announced.
//
// The encode-side tiers are backed by github.com/hashicorp/golang-lru, the
// same non-generic Cache type krd's ssh_agent.go uses for its bounded
// session-callback table. In the future tier, capacity overflow evicts the
// least-recently-used entry instead of refusing new admissions, so a
// string that stops recurring ages out of the future cache before ever
// costing an active-cache slot. The active tier is never overfilled:
// promotion stops once it is full.
package alias

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
)

// Default tier sizes and reconsideration cadence (spec §9 open item,
// resolved in SPEC_FULL.md §4.6: promotion is reconsidered every
// ReconsiderEvery calls to Lookup rather than on every call).
const (
	DefaultMaxCache        = 256
	DefaultMaxFutureCache  = 1024
	DefaultReconsiderEvery = 32

	// minLoss is the minimum cost of an Alias record: one header byte with
	// an inline id (spec §4.6).
	minLoss = 1
)

// futureEntry and activeEntry retain the original string alongside the
// fingerprint-keyed LRU slot, so a (vanishingly unlikely) 64-bit hash
// collision between two different strings is caught rather than silently
// conflated, mirroring internal/collision's verify-on-hash-hit pattern.
type futureEntry struct {
	key     string
	maxGain int
	nbUse   int
}

type activeEntry struct {
	key     string
	id      uint64
	maxGain int
	nbUse   int
}

// Config configures a Cache's tier capacities and promotion cadence. The
// zero Config is replaced with the package defaults.
type Config struct {
	MaxCache        int
	MaxFutureCache  int
	ReconsiderEvery int
}

func (c Config) withDefaults() Config {
	if c.MaxCache <= 0 {
		c.MaxCache = DefaultMaxCache
	}
	if c.MaxFutureCache <= 0 {
		c.MaxFutureCache = DefaultMaxFutureCache
	}
	if c.ReconsiderEvery <= 0 {
		c.ReconsiderEvery = DefaultReconsiderEvery
	}
	return c
}

// Outcome is the result of a Lookup: whether the string hit the active
// cache (and if so, under what id), plus any future-cache entries promoted
// to active as a side effect of this call. A caller translating Outcome
// into wire records must emit Special::Define(String(s)) for each
// Promotions entry, in order, before emitting the record for the looked-up
// string itself (spec §4.6: "encoder and decoder MUST agree on this
// ordering").
type Outcome struct {
	Hit        bool
	AliasID    uint64
	Promotions []string
}

// Cache is the encode-side alias cache. It is not safe for concurrent use;
// the spec assumes single-writer ownership per stream (spec §5).
type Cache struct {
	active *lru.Cache
	future *lru.Cache

	maxActive       int
	nextID          uint64
	idToKey         map[uint64]string
	reconsiderEvery int
	sinceReconsider int
}

// New creates a Cache with the given tier capacities and promotion
// cadence.
func New(cfg Config) *Cache {
	cfg = cfg.withDefaults()

	active, err := lru.New(cfg.MaxCache)
	if err != nil {
		panic(err) // only returns an error for non-positive size, excluded by withDefaults
	}
	future, err := lru.New(cfg.MaxFutureCache)
	if err != nil {
		panic(err)
	}

	return &Cache{
		active:          active,
		future:          future,
		maxActive:       cfg.MaxCache,
		idToKey:         make(map[uint64]string),
		reconsiderEvery: cfg.ReconsiderEvery,
	}
}

// Lookup applies the encode-side lookup protocol of spec §4.6 for string s:
// an active-cache hit increments its use counter and reports its alias id;
// a future-cache hit increments its use counter only; a miss is admitted
// into the future cache if its estimated gain is positive. Every
// ReconsiderEvery calls, the future cache is re-ranked and its best
// candidates are promoted into the active cache.
func (c *Cache) Lookup(s string) Outcome {
	c.sinceReconsider++
	fp := xxhash.Sum64String(s)

	var out Outcome
	if v, ok := c.active.Get(fp); ok && v.(*activeEntry).key == s {
		entry := v.(*activeEntry)
		entry.nbUse++
		out.Hit = true
		out.AliasID = entry.id
	} else if v, ok := c.future.Get(fp); ok && v.(*futureEntry).key == s {
		v.(*futureEntry).nbUse++
	} else if !ok {
		if gain := estimateGain(s); gain > 0 {
			c.future.Add(fp, &futureEntry{key: s, maxGain: gain})
		}
	}

	if c.sinceReconsider >= c.reconsiderEvery {
		out.Promotions = c.reconsider()
	}
	return out
}

// Forget evicts id from the active cache; subsequent Alias(id) lookups
// will no longer resolve. It reports whether id was present.
func (c *Cache) Forget(id uint64) bool {
	key, ok := c.idToKey[id]
	if !ok {
		return false
	}
	delete(c.idToKey, id)
	c.active.Remove(xxhash.Sum64String(key))
	return true
}

// estimateGain computes the Header_savings + len(s) - 1 formula of spec
// §4.6: the number of bytes a literal String record's overflow length
// field would cost, plus the string's payload length, minus the 1-byte
// floor cost of the Alias record it would be replaced with.
func estimateGain(s string) int {
	n := len(s)
	widthBytes := 1
	shifted := n >> 4 // matches header.inlineMax's 4-bit inline shift
	for shifted > 0 {
		widthBytes++
		shifted >>= 7
	}
	return widthBytes + n - minLoss
}

// reconsider ranks every future-cache entry by max_gain * nb_use
// (descending) and promotes the best-fitting prefix into the active
// cache, in ranking order, mirroring the "rank, then take the
// best-fitting prefix" shape of the teacher's fsst symbol-frequency
// ranking (axiomhq-fsst's counters.go) applied to our gain metric.
func (c *Cache) reconsider() []string {
	c.sinceReconsider = 0

	type candidate struct {
		fp    uint64
		rank  int
		entry *futureEntry
	}

	fps := c.future.Keys()
	candidates := make([]candidate, 0, len(fps))
	for _, k := range fps {
		fp := k.(uint64)
		v, ok := c.future.Peek(fp)
		if !ok {
			continue
		}
		entry := v.(*futureEntry)
		candidates = append(candidates, candidate{fp: fp, rank: entry.maxGain * entry.nbUse, entry: entry})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].rank > candidates[j].rank })

	remaining := c.maxActive - c.active.Len()
	if remaining <= 0 {
		return nil
	}

	promoted := make([]string, 0, remaining)
	for _, cand := range candidates {
		if cand.rank <= 0 {
			continue
		}
		if len(promoted) >= remaining {
			break
		}

		c.future.Remove(cand.fp)

		id := c.nextID
		c.nextID++
		c.idToKey[id] = cand.entry.key
		c.active.Add(cand.fp, &activeEntry{key: cand.entry.key, id: id, maxGain: cand.entry.maxGain, nbUse: cand.entry.nbUse})

		promoted = append(promoted, cand.entry.key)
	}

	return promoted
}
