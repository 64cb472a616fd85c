package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// maxChunkChars bounds a single prompt; inputs above it are split and the
// chunk summaries joined. Tuned for the Gemini context window.
const maxChunkChars = 35000

// GeminiSummarizer implements domain.Summarizer on the Gemini API.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSummarizer creates a Gemini-backed summarizer.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiSummarizer{
		client: client,
		model:  model,
	}, nil
}

// Summarize condenses content into a plain-text summary. Long inputs are
// chunked and each chunk summarized separately.
func (s *GeminiSummarizer) Summarize(ctx context.Context, content string, metadata *domain.DocumentMetadata) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", errors.NewValidationError("content must not be empty")
	}

	chunks := chunkText(content, maxChunkChars)
	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		summary, err := s.generate(ctx, chunk, metadata)
		if err != nil {
			return "", err
		}
		summaries = append(summaries, strings.TrimSpace(summary))
	}
	return strings.Join(summaries, "\n\n"), nil
}

func (s *GeminiSummarizer) generate(ctx context.Context, text string, metadata *domain.DocumentMetadata) (string, error) {
	model := s.client.GenerativeModel(s.model)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(text, metadata)))
	if err != nil {
		return "", errors.NewUpstreamError(errors.BackendSummarizer, "summarization call failed", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewUpstreamError(errors.BackendSummarizer, "empty response from model", nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.NewUpstreamError(errors.BackendSummarizer, "model returned no text parts", nil)
	}
	return sb.String(), nil
}

// buildPrompt interpolates optional metadata ahead of the summarization
// instruction so the model can reference the document's origin.
func buildPrompt(text string, metadata *domain.DocumentMetadata) string {
	var sb strings.Builder
	if metadata != nil {
		if metadata.Title != "" {
			sb.WriteString("Title: " + metadata.Title + "\n")
		}
		if metadata.Author != "" {
			sb.WriteString("Author: " + metadata.Author + "\n")
		}
		if metadata.Source != "" {
			sb.WriteString("Source: " + metadata.Source + "\n")
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("Summarize this text clearly and concisely:\n\n")
	sb.WriteString(text)
	return sb.String()
}

// chunkText splits text into pieces of at most maxChars, preferring to break
// at the last newline or sentence end past the halfway point of a chunk.
func chunkText(text string, maxChars int) []string {
	if len(text) <= maxChars {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + maxChars
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		chunk := text[start:end]
		lastBreak := strings.LastIndexByte(chunk, '\n')
		if dot := strings.LastIndexByte(chunk, '.'); dot > lastBreak {
			lastBreak = dot
		}
		if lastBreak > maxChars/2 {
			chunks = append(chunks, text[start:start+lastBreak+1])
			start += lastBreak + 1
		} else {
			// Hard split: back off to a rune boundary so a multi-byte
			// character is never cut in half.
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
			if end == start {
				_, size := utf8.DecodeRuneInString(text[start:])
				end = start + size
			}
			chunks = append(chunks, text[start:end])
			start = end
		}
	}
	return chunks
}
