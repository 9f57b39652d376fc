package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/entity"
	"github.com/tnqbao/gau-design-service/infra/produce"
	"github.com/tnqbao/gau-design-service/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AllowedExtensions is the upload allow-list. The sniffed MIME type is
// recorded but not cross-checked against the extension; the extension is
// the sole gate.
var AllowedExtensions = map[string]struct{}{
	"stl":  {},
	"obj":  {},
	"3mf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
	"tiff": {},
}

// AssetStore is the subset of the asset repository the upload service
// depends on.
type AssetStore interface {
	Create(asset *entity.DesignAsset) error
}

// ObjectStorage is the object-store surface the upload service depends on.
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, data io.Reader, size int64, contentType, filename string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// AssetPublisher enqueues asset lifecycle messages.
type AssetPublisher interface {
	PublishAssetCleanup(ctx context.Context, msg produce.AssetCleanupMessage) error
	PublishAssetUploaded(ctx context.Context, msg produce.AssetUploadedMessage) error
}

type UploadResult struct {
	Asset *entity.DesignAsset
	URL   string
}

type UploadService struct {
	designs   DesignStore
	assets    AssetStore
	storage   ObjectStorage
	publisher AssetPublisher
	cfg       *config.EnvConfig

	uploadCounter metric.Int64Counter
}

func NewUploadService(designs DesignStore, assets AssetStore, storage ObjectStorage, publisher AssetPublisher, cfg *config.EnvConfig) *UploadService {
	meter := otel.Meter("gau-design-service/upload")
	counter, _ := meter.Int64Counter("assets.uploaded")
	return &UploadService{
		designs:   designs,
		assets:    assets,
		storage:   storage,
		publisher: publisher,
		cfg:       cfg,

		uploadCounter: counter,
	}
}

// Upload validates one binary payload bound to a design owned by the
// designer, persists it to object storage under an unguessable key and
// records its metadata. Gates run in order; the first failure
// short-circuits with no storage call.
func (s *UploadService) Upload(ctx context.Context, designer *entity.Designer, designKey string, content []byte, filename string) (*UploadResult, error) {
	if len(content) == 0 {
		return nil, NewValidationError("no file provided")
	}

	design, err := s.designs.GetByKeyAndDesigner(designKey, designer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A design owned by someone else resolves exactly like a
			// nonexistent one.
			return nil, ErrNotFound
		}
		return nil, err
	}

	mimeType := mimetype.Detect(content).String()

	ext, ok := allowedExtension(filename)
	if !ok {
		return nil, NewValidationError("file type not allowed")
	}

	if int64(len(content)) > s.cfg.Upload.MaxFileSize {
		return nil, NewValidationError("file exceeds maximum size of 50MB")
	}

	filePath, err := utils.GenerateStoragePath(s.cfg.Upload.KeyPrefix, time.Now())
	if err != nil {
		return nil, err
	}

	cleanName := path.Base(filename)
	if err := s.storage.PutObject(ctx, filePath, bytes.NewReader(content), int64(len(content)), mimeType, cleanName); err != nil {
		return nil, &StorageError{Op: "put", Err: err}
	}

	metadata, _ := json.Marshal(map[string]interface{}{
		"size":      len(content),
		"extension": ext,
	})

	asset := &entity.DesignAsset{
		DesignID:   design.ID,
		DesignerID: designer.ID,
		FileName:   cleanName,
		FilePath:   filePath,
		MimeType:   mimeType,
		Metadata:   datatypes.JSON(metadata),
	}
	if err := s.assets.Create(asset); err != nil {
		// The object is already stored with no metadata record. There
		// is no synchronous rollback; the cleanup consumer removes the
		// orphan.
		_ = s.publisher.PublishAssetCleanup(ctx, produce.AssetCleanupMessage{
			FilePath:   filePath,
			DesignKey:  designKey,
			DesignerID: designer.ID.String(),
			Reason:     "metadata write failed after storage write",
		})
		return nil, &StorageError{Op: "record", Err: err}
	}

	url, err := s.storage.PresignGet(ctx, filePath, time.Duration(s.cfg.Minio.PresignExpire)*time.Second)
	if err != nil {
		// The asset metadata is already persisted; only the link
		// issuance failed.
		return nil, &StorageError{Op: "presign", Err: err}
	}

	s.uploadCounter.Add(ctx, 1)
	_ = s.publisher.PublishAssetUploaded(ctx, produce.AssetUploadedMessage{
		AssetID:    asset.ID.String(),
		DesignKey:  designKey,
		DesignerID: designer.ID.String(),
		FileName:   cleanName,
		MimeType:   mimeType,
		Size:       int64(len(content)),
	})

	return &UploadResult{
		Asset: asset,
		URL:   url,
	}, nil
}

// allowedExtension reports whether the filename carries an allow-listed
// extension, returning the lowercase extension without its dot.
func allowedExtension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	_, ok := AllowedExtensions[ext]
	return ext, ok
}
