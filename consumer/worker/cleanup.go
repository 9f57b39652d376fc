package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tnqbao/gau-design-service/infra"
	"github.com/tnqbao/gau-design-service/infra/produce"
)

// objectRemover is the storage surface the cleanup worker needs.
type objectRemover interface {
	RemoveObject(ctx context.Context, key string) error
}

// CleanupConsumer drains asset.cleanup messages and deletes orphaned
// objects from the asset bucket. Orphans happen when the metadata write
// fails after the storage write succeeded; the upload pipeline publishes
// a cleanup request instead of rolling back synchronously.
type CleanupConsumer struct {
	channel *amqp.Channel
	storage objectRemover
	logger  *infra.LoggerClient
}

func NewCleanupConsumer(channel *amqp.Channel, infra *infra.Infra) *CleanupConsumer {
	return &CleanupConsumer{
		channel: channel,
		storage: infra.Minio,
		logger:  infra.Logger,
	}
}

func (c *CleanupConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.AssetCleanupQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register cleanup consumer: %w", err)
	}

	c.logger.InfoWithContextf(ctx, "[Cleanup Consumer] Started listening on queue: %s", produce.AssetCleanupQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.InfoWithContextf(ctx, "[Cleanup Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.WarningWithContextf(ctx, "[Cleanup Consumer] Channel closed")
					return
				}
				c.handleCleanup(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *CleanupConsumer) handleCleanup(ctx context.Context, msg amqp.Delivery) {
	var payload produce.AssetCleanupMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to unmarshal cleanup message")
		_ = msg.Nack(false, false)
		return
	}

	if payload.FilePath == "" {
		c.logger.WarningWithContextf(ctx, "[Cleanup Consumer] Cleanup message with empty file path")
		_ = msg.Nack(false, false)
		return
	}

	if err := c.storage.RemoveObject(ctx, payload.FilePath); err != nil {
		if msg.Redelivered {
			// Second failure for the same delivery; drop it rather than
			// spin the queue hot on an unremovable object.
			c.logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Giving up on orphaned object %s after redelivery", payload.FilePath)
			_ = msg.Nack(false, false)
			return
		}
		c.logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to remove orphaned object %s, requeueing once", payload.FilePath)
		_ = msg.Nack(false, true)
		return
	}

	c.logger.InfoWithContextf(ctx, "[Cleanup Consumer] Removed orphaned object %s (reason: %s)", payload.FilePath, payload.Reason)
	_ = msg.Ack(false)
}
