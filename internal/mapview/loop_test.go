package mapview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		require.True(t, l.Post(func() { order = append(order, i) }))
	}
	require.NoError(t, l.Do(context.Background(), func() { order = append(order, 5) }))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, order)
}

func TestLoopClosed(t *testing.T) {
	l := NewLoop()
	l.Close()
	l.Close()

	assert.False(t, l.Post(func() {}))
	assert.ErrorIs(t, l.Do(context.Background(), func() {}), ErrClosed)
}

func TestLoopDoHonoursContext(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	block := make(chan struct{})
	require.True(t, l.Post(func() { <-block }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ran := false
	err := l.Do(ctx, func() { ran = true })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(block)

	require.NoError(t, l.Do(context.Background(), func() {}))
	assert.False(t, ran)
}

func TestLoopDoWaitsForQueuedTask(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})
	ran := false

	errc := make(chan error, 1)
	go func() {
		errc <- l.Do(ctx, func() {
			close(started)
			<-release
			ran = true
		})
	}()

	<-started
	cancel()
	close(release)

	assert.NoError(t, <-errc)
	assert.True(t, ran)
}
