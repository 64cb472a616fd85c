package config

import (
	"context"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/internal/service"
	"summary-pdf-service/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	Summarizer     domain.Summarizer
	Renderer       domain.Renderer
	Uploader       domain.Uploader
	SummaryService domain.SummaryService
}

// NewContainer creates a new dependency injection container. It fails when a
// required credential is missing or an external client cannot be constructed.
func NewContainer(ctx context.Context) (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	if err := config.Validate(); err != nil {
		return nil, err
	}

	summarizer, err := service.NewGeminiSummarizer(ctx, config.GetGeminiAPIKey(), config.GetGeminiModel())
	if err != nil {
		return nil, err
	}

	uploader, err := service.NewCloudinaryStorage(
		config.GetCloudinaryCloudName(),
		config.GetCloudinaryAPIKey(),
		config.GetCloudinaryAPISecret(),
	)
	if err != nil {
		return nil, err
	}

	renderer := service.NewPDFRenderer()

	summaryService := service.NewSummaryService(summarizer, renderer, uploader, appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		Summarizer:     summarizer,
		Renderer:       renderer,
		Uploader:       uploader,
		SummaryService: summaryService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSummaryService returns the summary pipeline service
func (c *Container) GetSummaryService() domain.SummaryService {
	return c.SummaryService
}
