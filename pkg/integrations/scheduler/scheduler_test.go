package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestScheduler_InvalidConfig(t *testing.T) {
	_, err := New(
		WithContext(context.Background()),
		WithLogger(discardLogger),
		WithInterval(time.Second),
	)
	require.ErrorIs(t, err, ErrInvalidSchedulerConfig)

	_, err = New(
		WithContext(context.Background()),
		WithLogger(discardLogger),
		WithHandler(func() error { return nil }),
	)
	require.ErrorIs(t, err, ErrInvalidSchedulerConfig)
}

func TestScheduler_TicksMultipleTimes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var count atomic.Int32
	s, err := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithInterval(10*time.Millisecond),
		WithHandler(func() error {
			count.Add(1)
			return nil
		}),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	time.Sleep(55 * time.Millisecond)
	assert.GreaterOrEqual(t, count.Load(), int32(3))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var count atomic.Int32
	s, err := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithInterval(10*time.Millisecond),
		WithHandler(func() error {
			count.Add(1)
			return nil
		}),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, count.Load())
}
