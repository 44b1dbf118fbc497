package reactor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExactlyOnceEffectDispatch exercises spec.md §8's "an effect dirtied
// by N separate upstream changes during a single flush runs exactly once,
// not N times."
func TestExactlyOnceEffectDispatch(t *testing.T) {
	g := NewGraph()
	a := NewSource(g, 1)
	b := NewSource(g, 1)
	runs := 0

	NewEffect(g, func() {
		a.Read()
		b.Read()
		runs++
	})
	assert.Equal(t, 1, runs)

	g.Batch(func() {
		a.Write(2)
		b.Write(2)
	})
	assert.Equal(t, 2, runs, "both writes in one flush must dispatch the effect once")
}

// TestStructEquality exercises equality gating for comparable struct types,
// not just primitives.
func TestStructEquality(t *testing.T) {
	type point struct{ x, y int }

	g := NewGraph()
	p := NewSource(g, point{1, 2})
	runs := 0
	NewEffect(g, func() { p.Read(); runs++ })

	p.Write(point{1, 2}) // equal value, no-op
	assert.Equal(t, 1, runs)

	p.Write(point{1, 3})
	assert.Equal(t, 2, runs)
}

// TestEffectsHaveNoSubscribers documents that effects are leaves: nothing
// can depend on an effect, so reading one never records a tracked edge
// (spec.md §3).
func TestEffectsHaveNoSubscribers(t *testing.T) {
	g := NewGraph()
	count := NewSource(g, 0)
	eff := NewEffect(g, func() { count.Read() })

	assert.Equal(t, 1, count.SubscriberCount(), "count has exactly one subscriber: the effect")
	assert.Equal(t, "*reactor.Effect", fmt.Sprintf("%T", eff))
}

// TestDisposeDuringOwnFlush documents that an effect may dispose itself
// mid-run without corrupting the queues; the dispose takes effect for the
// next write, not the one that triggered it.
func TestDisposeDuringOwnFlush(t *testing.T) {
	g := NewGraph()
	count := NewSource(g, 0)
	var self *Effect

	runs := 0
	self = NewEffect(g, func() {
		runs++
		if count.Read() >= 2 {
			self.Dispose()
		}
	})

	count.Write(1)
	count.Write(2) // self disposes itself during this run
	count.Write(3) // self is gone; must not rerun

	assert.Equal(t, 3, runs, "the creation run plus the runs for writes 1 and 2")
	assert.True(t, self.IsDisposed())
}

// TestExceptionRecoveryByDirectRead mirrors spec.md §8 scenario 6 exactly:
// a Computed that panics stays dirty, and a direct Read after the
// triggering condition clears recovers it.
func TestExceptionRecoveryByDirectRead(t *testing.T) {
	g := NewGraph()
	trigger := NewSource(g, false)
	c := NewComputed(g, func() int {
		if trigger.Read() {
			panic("raise")
		}
		return 42
	})

	assert.Equal(t, 42, c.Read())

	trigger.Write(true)
	assert.Panics(t, func() { c.Read() })
	assert.True(t, c.IsDirty())

	trigger.Write(false)
	assert.Equal(t, 42, c.Read())
	assert.False(t, c.IsDirty())
}

// TestCrashedRecomputeDropsSubscription documents a consequence of
// recordEdge running only after a successful recompute (spec.md §4.3 "no
// stale edges"): a consumer that crashes while reading a dependency never
// re-subscribes to it, so a write to that dependency alone will not
// re-dispatch the consumer. A write reaching the consumer through a
// dependency that was read (and survived) before the crash point does.
func TestCrashedRecomputeDropsSubscription(t *testing.T) {
	g := NewGraph()
	stable := NewSource(g, 1)
	trigger := NewSource(g, false)
	unstable := NewComputed(g, func() int {
		if trigger.Read() {
			panic("boom")
		}
		return 1
	})

	runs := 0
	NewEffect(g, func() {
		stable.Read()
		unstable.Read()
		runs++
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, unstable.SubscriberCount())

	func() {
		defer func() { recover() }()
		trigger.Write(true)
	}()
	assert.Equal(t, 1, runs, "the crashed flush must not dispatch the effect")
	assert.Equal(t, 0, unstable.SubscriberCount(), "the effect's subscription to unstable was never restored")

	// trigger no longer has anything reading it that the effect is
	// subscribed to; this only marks unstable dirty, it doesn't recompute it
	// or reach the effect.
	trigger.Write(false)
	assert.Equal(t, 1, runs)

	// stable is still a live edge to the effect: this redispatches it, and
	// this time unstable's recompute succeeds (trigger is false), so the
	// effect's read of it repairs the subscription.
	stable.Write(2)
	assert.Equal(t, 2, runs, "stable's surviving edge redispatches the effect, which re-reads unstable and repairs it")
	assert.Equal(t, 1, unstable.SubscriberCount())
}
