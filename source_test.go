package reactor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		g := NewGraph()
		count := NewSource(g, 0)
		assert.Equal(t, 0, count.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
	})

	t.Run("equal writes are a no-op", func(t *testing.T) {
		g := NewGraph()
		count := NewSource(g, 5)
		log := []string{}

		NewEffect(g, func() {
			log = append(log, fmt.Sprintf("ran %d", count.Read()))
		})

		count.Write(5) // same value, must not re-run the effect
		count.Write(5)

		assert.Equal(t, []string{"ran 5"}, log)
	})

	t.Run("update reads without tracking", func(t *testing.T) {
		g := NewGraph()
		count := NewSource(g, 1)
		log := []string{}

		NewEffect(g, func() {
			log = append(log, "effect ran")
			count.Update(func(v int) int { return v + 1 })
		})

		assert.Equal(t, 2, count.Read())
		// Update read count inside the effect without subscribing it, so its
		// own write did not enqueue the effect again
		assert.Equal(t, []string{"effect ran"}, log)
		assert.Equal(t, 0, count.SubscriberCount())
	})

	t.Run("peek does not record a dependency", func(t *testing.T) {
		g := NewGraph()
		count := NewSource(g, 0)
		log := []string{}

		NewEffect(g, func() {
			log = append(log, fmt.Sprintf("peek %d", count.Peek()))
		})

		count.Write(1)
		count.Write(2)

		assert.Equal(t, []string{"peek 0"}, log)
	})

	t.Run("zero values", func(t *testing.T) {
		g := NewGraph()
		s := NewSource[error](g, nil)
		assert.Nil(t, s.Read())

		s.Write(fmt.Errorf("oops"))
		assert.EqualError(t, s.Read(), "oops")
	})

	t.Run("subscriber count tracks live edges", func(t *testing.T) {
		g := NewGraph()
		count := NewSource(g, 0)
		assert.Equal(t, 0, count.SubscriberCount())

		NewEffect(g, func() { count.Read() })
		assert.Equal(t, 1, count.SubscriberCount())
	})
}
