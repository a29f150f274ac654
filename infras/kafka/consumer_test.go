package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queueReader struct {
	mu        sync.Mutex
	pending   []kafkaGo.Message
	committed []int64
}

func (r *queueReader) FetchMessage(ctx context.Context) (kafkaGo.Message, error) {
	r.mu.Lock()

	if len(r.pending) > 0 {
		msg := r.pending[0]
		r.pending = r.pending[1:]
		r.mu.Unlock()

		return msg, nil
	}

	r.mu.Unlock()
	<-ctx.Done()

	return kafkaGo.Message{}, ctx.Err()
}

func (r *queueReader) CommitMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}

	return nil
}

func (r *queueReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.committed...)
}

func runConsumer(t *testing.T, reader *queueReader, handler Handler, d time.Duration) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c := consumer{reader: reader, topic: "hotel-events", handler: handler, retryMin: time.Millisecond, retryMax: 4 * time.Millisecond}

	go func() {
		defer close(done)

		c.run(ctx)
	}()

	time.Sleep(d)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "consumer did not stop after cancellation")
	}
}

func TestConsumer_CommitsAfterHandlerSucceeds(t *testing.T) {
	reader := &queueReader{pending: []kafkaGo.Message{{Offset: 1}, {Offset: 2}}}

	var handled []int64

	runConsumer(t, reader, func(_ context.Context, msg kafkaGo.Message) error {
		handled = append(handled, msg.Offset)

		return nil
	}, 50*time.Millisecond)

	assert.Equal(t, []int64{1, 2}, handled)
	assert.Equal(t, []int64{1, 2}, reader.commits())
}

func TestConsumer_RetriesUntilStoreRecovers(t *testing.T) {
	reader := &queueReader{pending: []kafkaGo.Message{{Offset: 7}}}

	attempts := 0

	runConsumer(t, reader, func(_ context.Context, _ kafkaGo.Message) error {
		attempts++
		if attempts < 3 {
			return errors.New("db down")
		}

		return nil
	}, 100*time.Millisecond)

	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int64{7}, reader.commits())
}

func TestConsumer_DoesNotCommitWhileFailing(t *testing.T) {
	reader := &queueReader{pending: []kafkaGo.Message{{Offset: 3}}}

	runConsumer(t, reader, func(_ context.Context, _ kafkaGo.Message) error {
		return errors.New("db down")
	}, 30*time.Millisecond)

	assert.Empty(t, reader.commits())
}

func TestConsumer_SkipsPermanentFailures(t *testing.T) {
	reader := &queueReader{pending: []kafkaGo.Message{{Offset: 4}, {Offset: 5}}}

	runConsumer(t, reader, func(_ context.Context, msg kafkaGo.Message) error {
		if msg.Offset == 4 {
			return Permanent(errors.New("not json"))
		}

		return nil
	}, 50*time.Millisecond)

	assert.Equal(t, []int64{4, 5}, reader.commits())
}

func TestPermanent(t *testing.T) {
	cause := errors.New("not json")

	assert.NoError(t, Permanent(nil))
	assert.True(t, IsPermanent(Permanent(cause)))
	assert.ErrorIs(t, Permanent(cause), cause)
	assert.False(t, IsPermanent(cause))
}
