package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/worker"
)

type blockingWorker struct {
	*worker.BaseWorker
	started atomic.Bool
	ignore  bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	if w.ignore {
		time.Sleep(time.Second)
		return nil
	}
	select {
	case <-w.StopChan():
	case <-ctx.Done():
	}
	return nil
}

func TestWorkerManager_StartWithoutWorkers(t *testing.T) {
	m := worker.NewWorkerManager(0, zap.NewNop())
	assert.ErrorIs(t, m.Start(context.Background()), worker.ErrNoWorkers)
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(time.Second, zap.NewNop())
	w := &blockingWorker{BaseWorker: worker.NewBaseWorker("test", "group", zap.NewNop())}
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)

	assert.NoError(t, m.Stop())
	assert.True(t, w.IsStopped())
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := worker.NewWorkerManager(50*time.Millisecond, zap.NewNop())
	w := &blockingWorker{BaseWorker: worker.NewBaseWorker("stuck", "group", zap.NewNop()), ignore: true}
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
