package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestSchedulerStartStopDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := New(time.UTC, zap.NewNop())
	require.NoError(t, s.Add("0 20 * * *", "noop", func(ctx context.Context) error { return nil }))
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestSchedulerRunsJobsAndCancelsOnStop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := New(time.UTC, zap.NewNop())
	ran := make(chan struct{}, 1)
	var jobCtx context.Context
	require.NoError(t, s.Add("@every 1s", "ping", func(ctx context.Context) error {
		jobCtx = ctx
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}))
	s.Start()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("la tarea no se ejecutó")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.Stop(ctx)
	assert.Error(t, jobCtx.Err())
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := New(nil, nil)
	assert.Error(t, s.Add("cada día", "x", func(ctx context.Context) error { return nil }))
}
