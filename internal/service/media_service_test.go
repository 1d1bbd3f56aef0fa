package service

import (
	"context"
	"testing"

	"bayaaz-server/internal/common"
)

// The checks below all reject before any object-store call, so a zero-value
// service is enough.

func TestUploadRejectsBadInput(t *testing.T) {
	media := &MediaService{}
	ctx := context.Background()

	_, err := media.Upload(ctx, 1, "video", "clip.mp4", "video/mp4", 100, nil)
	assertServiceError(t, err, common.ErrorCodeValidation)

	_, err = media.Upload(ctx, 1, MediaKindImage, "tool.exe", "application/octet-stream", 100, nil)
	assertServiceError(t, err, common.ErrorCodeValidation)

	_, err = media.Upload(ctx, 1, MediaKindImage, "big.png", "image/png", 11<<20, nil)
	assertServiceError(t, err, common.ErrorCodeValidation)

	_, err = media.Upload(ctx, 1, MediaKindImage, "empty.png", "image/png", 0, nil)
	assertServiceError(t, err, common.ErrorCodeValidation)
}

func TestMediaOwnershipPrefix(t *testing.T) {
	media := &MediaService{}
	ctx := context.Background()

	err := media.Delete(ctx, 1, "2/image/abc.png")
	assertServiceError(t, err, common.ErrorCodeForbidden)

	_, err = media.Stat(ctx, 1, "2/image/abc.png")
	assertServiceError(t, err, common.ErrorCodeForbidden)
}
