package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/infra"
	"github.com/tnqbao/gau-design-service/infra/produce"
)

type fakeRemover struct {
	removeErr error
	removed   []string
}

func (f *fakeRemover) RemoveObject(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, key)
	return nil
}

type fakeAcknowledger struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func newTestConsumer(storage objectRemover) *CleanupConsumer {
	return &CleanupConsumer{
		storage: storage,
		logger:  infra.InitLoggerClient(&config.EnvConfig{}),
	}
}

func cleanupDelivery(t *testing.T, filePath string, redelivered bool, ack *fakeAcknowledger) amqp.Delivery {
	t.Helper()
	body, err := json.Marshal(produce.AssetCleanupMessage{
		FilePath: filePath,
		Reason:   "metadata write failed after storage write",
	})
	require.NoError(t, err)
	return amqp.Delivery{
		Acknowledger: ack,
		Body:         body,
		Redelivered:  redelivered,
	}
}

func TestHandleCleanupRemovesObject(t *testing.T) {
	storage := &fakeRemover{}
	consumer := newTestConsumer(storage)
	ack := &fakeAcknowledger{}

	consumer.handleCleanup(context.Background(), cleanupDelivery(t, "user_uploads/2026/09/01/abc", false, ack))

	assert.Equal(t, []string{"user_uploads/2026/09/01/abc"}, storage.removed)
	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestHandleCleanupMalformedMessage(t *testing.T) {
	storage := &fakeRemover{}
	consumer := newTestConsumer(storage)
	ack := &fakeAcknowledger{}

	consumer.handleCleanup(context.Background(), amqp.Delivery{
		Acknowledger: ack,
		Body:         []byte("not json"),
	})

	assert.Empty(t, storage.removed)
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeued, "malformed messages are dropped, not requeued")
}

func TestHandleCleanupEmptyFilePath(t *testing.T) {
	storage := &fakeRemover{}
	consumer := newTestConsumer(storage)
	ack := &fakeAcknowledger{}

	consumer.handleCleanup(context.Background(), cleanupDelivery(t, "", false, ack))

	assert.Empty(t, storage.removed)
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeued)
}

func TestHandleCleanupFailureRequeuesOnce(t *testing.T) {
	storage := &fakeRemover{removeErr: errors.New("storage unavailable")}
	consumer := newTestConsumer(storage)

	firstTry := &fakeAcknowledger{}
	consumer.handleCleanup(context.Background(), cleanupDelivery(t, "user_uploads/2026/09/01/abc", false, firstTry))
	assert.True(t, firstTry.nacked)
	assert.True(t, firstTry.requeued, "first failure requeues for one more attempt")

	// The redelivered copy fails again; it is dropped instead of
	// requeued so an unremovable object cannot spin the queue.
	secondTry := &fakeAcknowledger{}
	consumer.handleCleanup(context.Background(), cleanupDelivery(t, "user_uploads/2026/09/01/abc", true, secondTry))
	assert.True(t, secondTry.nacked)
	assert.False(t, secondTry.requeued)
}
