package service

import (
	"context"
	"os"
	"strings"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"
)

// SummaryService sequences the request pipeline: summarize, render, upload,
// cleanup. It holds no state between requests.
type SummaryService struct {
	summarizer domain.Summarizer
	renderer   domain.Renderer
	uploader   domain.Uploader
	logger     domain.Logger
}

// NewSummaryService creates a new summary pipeline service
func NewSummaryService(
	summarizer domain.Summarizer,
	renderer domain.Renderer,
	uploader domain.Uploader,
	logger domain.Logger,
) *SummaryService {
	return &SummaryService{
		summarizer: summarizer,
		renderer:   renderer,
		uploader:   uploader,
		logger:     logger,
	}
}

// Summarize runs one request through the pipeline. The transient PDF created
// by the renderer is removed exactly once on every exit path; a cleanup
// failure is logged but never changes the outcome already determined.
func (s *SummaryService) Summarize(ctx context.Context, req *domain.SummarizeRequest) (*domain.SummaryReport, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return nil, errors.NewValidationError("content is required and must not be empty")
	}

	summary, err := s.summarizer.Summarize(ctx, req.Content, req.Metadata)
	if err != nil {
		s.logger.Error("Summarization failed", err)
		return nil, err
	}

	doc, err := s.renderer.Render(ctx, summary, req.Metadata)
	if err != nil {
		s.logger.Error("Rendering failed", err)
		return nil, err
	}
	defer func() {
		if removeErr := os.Remove(doc.Path); removeErr != nil {
			s.logger.Warn("Failed to remove transient file", "path", doc.Path, "error", removeErr)
		}
	}()

	// No stable name hint: every request stores a distinct object.
	result, err := s.uploader.Upload(ctx, doc, "")
	if err != nil {
		s.logger.Error("Upload failed", err, "path", doc.Path)
		return nil, err
	}

	s.logger.Info("Summary uploaded",
		"public_id", result.PublicID,
		"bytes", result.Bytes,
	)

	return &domain.SummaryReport{
		Success:       true,
		CloudinaryURL: result.URL,
		PublicID:      result.PublicID,
		Format:        result.Format,
		Bytes:         result.Bytes,
		Message:       "Summary generated and uploaded successfully",
	}, nil
}
