package domain

import "context"

// Summarizer condenses raw text into a summary using a generative-language
// backend. Metadata may be interpolated into the prompt but is never required.
type Summarizer interface {
	Summarize(ctx context.Context, content string, metadata *DocumentMetadata) (string, error)
}

// Renderer converts a summary plus metadata into a PDF on transient local
// storage. Implementations must not leave a partial file behind on failure.
type Renderer interface {
	Render(ctx context.Context, summary string, metadata *DocumentMetadata) (*RenderedDocument, error)
}

// Uploader pushes a rendered document to the storage/CDN backend. The name
// hint, when non-empty, derives a stable public ID; otherwise each call
// creates a distinct object.
type Uploader interface {
	Upload(ctx context.Context, doc *RenderedDocument, nameHint string) (*UploadResult, error)
}

// SummaryService runs the full request pipeline: summarize, render, upload,
// cleanup.
type SummaryService interface {
	Summarize(ctx context.Context, req *SummarizeRequest) (*SummaryReport, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetCloudinaryCloudName() string
	GetCloudinaryAPIKey() string
	GetCloudinaryAPISecret() string
	GetRequestTimeoutSeconds() int
	Validate() error
}
