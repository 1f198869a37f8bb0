package mock_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kodewerk/smartchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand_IntN(t *testing.T) {
	t.Parallel()
	t.Run("delegates to IntNFn", func(t *testing.T) {
		t.Parallel()
		r := mock.Rand{IntNFn: func(n int) int { return n - 1 }}
		assert.Equal(t, 6, r.IntN(7))
	})

	t.Run("panics when IntNFn not set", func(t *testing.T) {
		t.Parallel()
		r := mock.Rand{}
		assert.Panics(t, func() { _ = r.IntN(7) })
	})
}

func TestClipboard_WriteAll(t *testing.T) {
	t.Parallel()
	t.Run("delegates to WriteAllFn", func(t *testing.T) {
		t.Parallel()
		var got string
		c := mock.Clipboard{WriteAllFn: func(text string) error {
			got = text
			return nil
		}}
		require.NoError(t, c.WriteAll("letter"))
		assert.Equal(t, "letter", got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("no display")
		c := mock.Clipboard{WriteAllFn: func(string) error { return wantErr }}
		assert.ErrorIs(t, c.WriteAll("letter"), wantErr)
	})
}

func TestScheduler(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("runs callbacks in due order", func(t *testing.T) {
		t.Parallel()
		s := mock.NewScheduler(start)
		var order []string
		s.Schedule(20*time.Millisecond, func() { order = append(order, "b") })
		s.Schedule(10*time.Millisecond, func() { order = append(order, "a") })
		s.Schedule(20*time.Millisecond, func() { order = append(order, "c") })

		s.Advance(15 * time.Millisecond)
		assert.Equal(t, []string{"a"}, order)
		assert.Equal(t, start.Add(15*time.Millisecond), s.Now())

		s.Advance(5 * time.Millisecond)
		assert.Equal(t, []string{"a", "b", "c"}, order)
		assert.Equal(t, 0, s.Pending())
	})

	t.Run("cancelled callbacks never run", func(t *testing.T) {
		t.Parallel()
		s := mock.NewScheduler(start)
		ran := false
		cancel := s.Schedule(time.Millisecond, func() { ran = true })
		cancel()
		cancel()
		s.Advance(time.Second)
		assert.False(t, ran)
		assert.Equal(t, 0, s.Pending())
	})

	t.Run("callbacks may schedule further callbacks", func(t *testing.T) {
		t.Parallel()
		s := mock.NewScheduler(start)
		count := 0
		var tick func()
		tick = func() {
			count++
			if count < 5 {
				s.Schedule(10*time.Millisecond, tick)
			}
		}
		s.Schedule(0, tick)

		s.Advance(25 * time.Millisecond)
		assert.Equal(t, 3, count)

		n := s.RunUntilIdle()
		assert.Equal(t, 2, n)
		assert.Equal(t, 5, count)
		assert.Equal(t, start.Add(40*time.Millisecond), s.Now())
	})
}
