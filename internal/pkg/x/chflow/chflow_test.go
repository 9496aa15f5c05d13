package chflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("receives a buffered value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		value, ok := Receive(t.Context(), ch)

		assert.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("returns false when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		value, ok := Receive(ctx, make(chan int))

		assert.False(t, ok)
		assert.Zero(t, value)
	})

	t.Run("returns false when the channel is closed", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		_, ok := Receive(t.Context(), ch)

		assert.False(t, ok)
	})
}

func TestSend(t *testing.T) {
	t.Run("sends to a buffered channel", func(t *testing.T) {
		ch := make(chan int, 1)

		assert.True(t, Send(t.Context(), ch, 7))
		assert.Equal(t, 7, <-ch)
	})

	t.Run("returns false when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		assert.False(t, Send(ctx, make(chan int), 7))
	})
}

func TestSleep(t *testing.T) {
	t.Run("waits for the full duration", func(t *testing.T) {
		start := time.Now()

		assert.True(t, Sleep(t.Context(), 10*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("returns early when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 5*time.Millisecond)
		defer cancel()

		start := time.Now()

		assert.False(t, Sleep(ctx, time.Minute))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("returns immediately for non-positive durations", func(t *testing.T) {
		assert.True(t, Sleep(t.Context(), 0))
	})
}
