package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"bayaaz-server/internal/common"
	"bayaaz-server/internal/config"
	"bayaaz-server/internal/model"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	MediaKindImage    = "image"
	MediaKindAudio    = "audio"
	MediaKindDocument = "document"
)

var mediaLimits = map[string]int64{
	MediaKindImage:    10 << 20,
	MediaKindAudio:    50 << 20,
	MediaKindDocument: 20 << 20,
}

var mediaMimeTypes = map[string]map[string]bool{
	MediaKindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
	MediaKindAudio: {
		"audio/mpeg": true,
		"audio/mp4":  true,
		"audio/wav":  true,
		"audio/ogg":  true,
		"audio/webm": true,
	},
	MediaKindDocument: {
		"application/pdf":    true,
		"text/plain":         true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	},
}

// MediaService stores uploaded binaries in an S3-compatible object store and
// hands back descriptors. Lyrics only ever persist the descriptor.
type MediaService struct {
	client *minio.Client
	bucket string
	public string
}

// NewMediaService connects to the object store and makes sure the bucket
// exists.
func NewMediaService() (*MediaService, error) {
	cfg := config.Get().Media
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect media store: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check media bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create media bucket: %w", err)
		}
	}

	public := strings.TrimRight(cfg.PublicURL, "/")
	if public == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		public = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &MediaService{client: client, bucket: cfg.Bucket, public: public}, nil
}

// Upload validates kind, mime type and size, stores the object under a
// per-user random key and returns the attachment descriptor.
func (s *MediaService) Upload(ctx context.Context, userID uint, kind, fileName, mimeType string, size int64, reader io.Reader) (*model.Attachment, error) {
	allowed, ok := mediaMimeTypes[kind]
	if !ok {
		return nil, common.NewValidationError("unknown media kind")
	}
	if !allowed[mimeType] {
		return nil, common.NewValidationError(fmt.Sprintf("unsupported %s type: %s", kind, mimeType))
	}
	if size <= 0 || size > mediaLimits[kind] {
		return nil, common.NewValidationError(fmt.Sprintf("%s size exceeds the limit", kind))
	}

	publicID := fmt.Sprintf("%d/%s/%s%s", userID, kind, uuid.NewString(), path.Ext(fileName))
	_, err := s.client.PutObject(ctx, s.bucket, publicID, reader, size, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, common.NewInternalError("failed to store file")
	}

	return &model.Attachment{
		Type:       kind,
		URL:        s.public + "/" + publicID,
		PublicID:   publicID,
		FileName:   fileName,
		FileSize:   size,
		MimeType:   mimeType,
		UploadedAt: time.Now(),
	}, nil
}

// Delete removes a stored object by its public id. Callers must ensure the
// id belongs to the requesting user; keys are prefixed with the owner's id,
// so the check is a prefix comparison.
func (s *MediaService) Delete(ctx context.Context, userID uint, publicID string) error {
	if !strings.HasPrefix(publicID, fmt.Sprintf("%d/", userID)) {
		return common.NewForbiddenError("cannot delete another user's file")
	}
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return common.NewInternalError("failed to delete file")
	}
	return nil
}

// FileInfo describes a stored object without fetching its body.
type FileInfo struct {
	PublicID     string    `json:"public_id"`
	URL          string    `json:"url"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	LastModified time.Time `json:"last_modified"`
}

func (s *MediaService) Stat(ctx context.Context, userID uint, publicID string) (*FileInfo, error) {
	if !strings.HasPrefix(publicID, fmt.Sprintf("%d/", userID)) {
		return nil, common.NewForbiddenError("cannot inspect another user's file")
	}
	info, err := s.client.StatObject(ctx, s.bucket, publicID, minio.StatObjectOptions{})
	if err != nil {
		return nil, common.NewNotFoundError("file not found")
	}
	return &FileInfo{
		PublicID:     publicID,
		URL:          s.public + "/" + publicID,
		FileSize:     info.Size,
		MimeType:     info.ContentType,
		LastModified: info.LastModified,
	}, nil
}

// PresignUpload hands the client a short-lived direct-upload URL.
func (s *MediaService) PresignUpload(ctx context.Context, userID uint, kind, fileName string) (string, string, error) {
	if _, ok := mediaMimeTypes[kind]; !ok {
		return "", "", common.NewValidationError("unknown media kind")
	}
	publicID := fmt.Sprintf("%d/%s/%s%s", userID, kind, uuid.NewString(), path.Ext(fileName))
	url, err := s.client.PresignedPutObject(ctx, s.bucket, publicID, 15*time.Minute)
	if err != nil {
		return "", "", common.NewInternalError("failed to sign upload")
	}
	return publicID, url.String(), nil
}
