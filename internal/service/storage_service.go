package service

import (
	"context"
	"fmt"
	"strings"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const maxNameLength = 60

// uploadFolder is the fixed storage namespace; every public ID starts with
// "summaries/".
const uploadFolder = "summaries"

// CloudinaryStorage implements domain.Uploader on the Cloudinary upload API.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates an uploader bound to one Cloudinary account.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryStorage{
		client: client,
	}, nil
}

// Upload transmits the rendered document as a raw (non-image) asset and
// returns its permanent public URL. Without a name hint each call creates a
// distinct object; callers wanting a stable identifier pass a hint.
func (s *CloudinaryStorage) Upload(ctx context.Context, doc *domain.RenderedDocument, nameHint string) (*domain.UploadResult, error) {
	publicID := derivePublicID(nameHint)

	resp, err := s.client.Upload.Upload(ctx, doc.Path, uploader.UploadParams{
		PublicID: publicID,
		// Raw keeps the provider from attempting image transformations.
		ResourceType: "raw",
	})
	if err != nil {
		return nil, errors.NewUpstreamError(errors.BackendStorage, "upload failed", err)
	}
	if resp.Error.Message != "" {
		return nil, errors.NewUpstreamError(errors.BackendStorage, "upload rejected: "+resp.Error.Message, nil)
	}

	return &domain.UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Format:   "pdf",
		Bytes:    int64(resp.Bytes),
	}, nil
}

// derivePublicID builds the logical identifier for an upload. A non-empty
// name hint yields a stable identifier; otherwise a fresh token is generated
// so repeated uploads never collide.
func derivePublicID(nameHint string) string {
	name := sanitizeName(nameHint)
	if name == "" {
		name = uuid.New().String()
	}
	return uploadFolder + "/summary_" + name
}

// sanitizeName reduces a free-text hint to a safe path segment.
func sanitizeName(hint string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(hint) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('_')
		}
	}
	name := strings.Trim(sb.String(), "_")
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	return name
}
