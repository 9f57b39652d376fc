package produce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// AssetCleanupQueue receives deletion requests for objects that were
	// written to storage but never got a metadata record (orphans).
	AssetCleanupQueue      = "asset.cleanup"
	AssetCleanupRoutingKey = "asset.cleanup"

	// AssetUploadedQueue receives a notification after an asset upload
	// fully completed (object stored and metadata persisted).
	AssetUploadedQueue      = "asset.uploaded"
	AssetUploadedRoutingKey = "asset.uploaded"
)

// AssetCleanupMessage asks the consumer to delete a single orphaned object.
type AssetCleanupMessage struct {
	FilePath   string `json:"file_path"`   // object key in the asset bucket
	DesignKey  string `json:"design_key"`  // design the upload was bound to
	DesignerID string `json:"designer_id"` // uploader
	Reason     string `json:"reason"`      // why the object is orphaned
	Timestamp  int64  `json:"timestamp"`
}

// AssetUploadedMessage announces a completed upload.
type AssetUploadedMessage struct {
	AssetID    string `json:"asset_id"`
	DesignKey  string `json:"design_key"`
	DesignerID string `json:"designer_id"`
	FileName   string `json:"file_name"`
	MimeType   string `json:"mime_type"`
	Size       int64  `json:"size"`
	Timestamp  int64  `json:"timestamp"`
}

// AssetProduceService publishes asset lifecycle messages.
type AssetProduceService struct {
	channel *amqp.Channel
}

func InitAssetProduceService(channel *amqp.Channel) *AssetProduceService {
	service := &AssetProduceService{channel: channel}
	if err := service.declareQueues(); err != nil {
		panic(fmt.Sprintf("Failed to declare asset queues: %v", err))
	}
	return service
}

func (s *AssetProduceService) declareQueues() error {
	for _, queue := range []string{AssetCleanupQueue, AssetUploadedQueue} {
		_, err := s.channel.QueueDeclare(
			queue,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}
	return nil
}

// PublishAssetCleanup enqueues an orphaned-object deletion request.
func (s *AssetProduceService) PublishAssetCleanup(ctx context.Context, msg AssetCleanupMessage) error {
	msg.Timestamp = time.Now().Unix()
	return s.publish(ctx, AssetCleanupRoutingKey, msg)
}

// PublishAssetUploaded enqueues a completed-upload event.
func (s *AssetProduceService) PublishAssetUploaded(ctx context.Context, msg AssetUploadedMessage) error {
	msg.Timestamp = time.Now().Unix()
	return s.publish(ctx, AssetUploadedRoutingKey, msg)
}

func (s *AssetProduceService) publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	err = s.channel.PublishWithContext(ctx,
		"", // default exchange
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", routingKey, err)
	}
	return nil
}
