package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsNestedTurnsInOrder(t *testing.T) {
	l := NewLoop(nil)
	var order []int
	l.Post(func() {
		order = append(order, 1)
		l.Post(func() { order = append(order, 3) })
	})
	l.Post(func() { order = append(order, 2) })

	assert.Equal(t, 3, l.RunPending())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, l.RunPending())
}

func TestLoopRecoversPanics(t *testing.T) {
	l := NewLoop(nil)
	ran := false
	l.Post(func() { panic("boom") })
	l.Post(func() { ran = true })

	assert.Equal(t, 2, l.RunPending())
	assert.True(t, ran)
}

func TestLoopRunUntilWaitsForPosts(t *testing.T) {
	l := NewLoop(nil)
	done := false
	go func() {
		time.Sleep(10 * time.Millisecond)
		l.Post(func() { done = true })
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.RunUntil(ctx, func() bool { return done }))
}

func TestLoopRunStopsWithContext(t *testing.T) {
	l := NewLoop(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Run(ctx), context.DeadlineExceeded)
}
