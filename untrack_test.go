package reactor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntrack(t *testing.T) {
	t.Run("does not track reads inside the body", func(t *testing.T) {
		log := []string{}
		g := NewGraph()
		count := NewSource(g, 0)

		NewEffect(g, func() {
			var c int
			g.Untrack(func() { c = count.Read() })
			log = append(log, fmt.Sprintf("effect %d", c))
		})

		count.Write(10)

		assert.Equal(t, []string{"effect 0"}, log)
		assert.Equal(t, 0, count.SubscriberCount())
	})

	t.Run("is reentrant", func(t *testing.T) {
		g := NewGraph()
		a := NewSource(g, 1)
		b := NewSource(g, 2)
		log := []string{}

		NewEffect(g, func() {
			g.Untrack(func() {
				log = append(log, fmt.Sprintf("a=%d", a.Read()))
				g.Untrack(func() {
					log = append(log, fmt.Sprintf("b=%d", b.Read()))
				})
				// tracking must be restored to "off" here, not left "on"
				// by the inner Untrack's own restore.
			})
		})

		a.Write(9)
		b.Write(9)

		assert.Equal(t, []string{"a=1", "b=2"}, log)
	})

	t.Run("tracking resumes after the body returns", func(t *testing.T) {
		log := []string{}
		g := NewGraph()
		tracked := NewSource(g, 0)
		untracked := NewSource(g, 0)

		NewEffect(g, func() {
			g.Untrack(func() { untracked.Read() })
			log = append(log, fmt.Sprintf("ran %d", tracked.Read()))
		})

		untracked.Write(1)
		tracked.Write(1)

		assert.Equal(t, []string{"ran 0", "ran 1"}, log)
	})
}
