package dataset_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/worker/dataset"
)

type fakeStream struct {
	mu      sync.Mutex
	ch      chan domain.StreamMessage
	groups  []string
	acked   []string
	groupEr error
}

func newFakeStream() *fakeStream {
	return &fakeStream{ch: make(chan domain.StreamMessage, 16)}
}

func (f *fakeStream) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	return f.ch, nil
}

func (f *fakeStream) AckMessage(ctx context.Context, stream, group, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, messageID)
	return nil
}

func (f *fakeStream) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups = append(f.groups, stream+"/"+group)
	return f.groupEr
}

func (f *fakeStream) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return nil
}

func (f *fakeStream) ackedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.acked...)
}

type countingRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
	done  chan struct{}
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func (r *countingRefresher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func eventMessage(t *testing.T, id, placeID string) domain.StreamMessage {
	data, err := json.Marshal(domain.NewCatalogChangedEvent(placeID, domain.CatalogChangeUpdated))
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func runWorker(t *testing.T, w *dataset.RefreshWorker) (context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()
	return cancel, errCh
}

func TestRefreshWorker_CoalescesBurst(t *testing.T) {
	stream := newFakeStream()
	refresher := &countingRefresher{done: make(chan struct{}, 4)}

	// queued before start so the first receive drains the whole burst
	stream.ch <- eventMessage(t, "1-0", "P1")
	stream.ch <- eventMessage(t, "2-0", "P2")
	stream.ch <- domain.StreamMessage{ID: "3-0", Data: "{broken"}

	w := dataset.NewRefreshWorker(stream, refresher, "dataset-refresh-workers", zap.NewNop())
	cancel, errCh := runWorker(t, w)
	defer cancel()

	select {
	case <-refresher.done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was not triggered")
	}

	assert.Eventually(t, func() bool { return len(stream.ackedIDs()) == 3 }, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"1-0", "2-0", "3-0"}, stream.ackedIDs())
	assert.Equal(t, 1, refresher.count())
	assert.Equal(t, []string{domain.StreamCatalogChanged + "/dataset-refresh-workers"}, stream.groups)

	require.NoError(t, w.Stop())
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestRefreshWorker_AcksOnRefreshFailure(t *testing.T) {
	stream := newFakeStream()
	refresher := &countingRefresher{err: errors.New("peer down"), done: make(chan struct{}, 4)}

	w := dataset.NewRefreshWorker(stream, refresher, "g", zap.NewNop())
	cancel, errCh := runWorker(t, w)

	stream.ch <- eventMessage(t, "10-0", "P1")

	select {
	case <-refresher.done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was not triggered")
	}
	assert.Eventually(t, func() bool { return len(stream.ackedIDs()) == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit on cancel")
	}
	assert.Equal(t, 1, refresher.count())
}

func TestRefreshWorker_ConsumerGroupError(t *testing.T) {
	stream := newFakeStream()
	stream.groupEr = errors.New("redis unavailable")

	w := dataset.NewRefreshWorker(stream, &countingRefresher{done: make(chan struct{}, 1)}, "g", zap.NewNop())
	err := w.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumer group")
}

func TestRefreshWorker_Name(t *testing.T) {
	w := dataset.NewRefreshWorker(newFakeStream(), &countingRefresher{}, "g", zap.NewNop())
	assert.Equal(t, "dataset-refresh", w.Name())
	assert.Contains(t, w.ConsumerName(), "dataset-refresh-")
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}
