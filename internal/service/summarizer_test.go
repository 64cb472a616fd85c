package service

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"
)

func TestGeminiSummarizer_EmptyContent(t *testing.T) {
	// Blank input is rejected before any backend call, so no client is needed.
	s := &GeminiSummarizer{model: "gemini-2.0-flash"}

	for _, content := range []string{"", "   \n"} {
		_, err := s.Summarize(context.Background(), content, nil)
		if !errors.IsType(err, errors.ErrorTypeValidation) {
			t.Fatalf("expected validation error for content %q, got %v", content, err)
		}
	}
}

func TestBuildPrompt_WithMetadata(t *testing.T) {
	prompt := buildPrompt("body text", &domain.DocumentMetadata{
		Title:  "My Title",
		Author: "An Author",
		Source: "notes.txt",
	})

	for _, want := range []string{"Title: My Title", "Author: An Author", "Source: notes.txt", "body text"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q, got %q", want, prompt)
		}
	}
}

func TestBuildPrompt_WithoutMetadata(t *testing.T) {
	prompt := buildPrompt("body text", nil)

	if strings.Contains(prompt, "Title:") {
		t.Errorf("expected no metadata lines, got %q", prompt)
	}
	if !strings.HasPrefix(prompt, "Summarize this text") {
		t.Errorf("expected prompt to start with the instruction, got %q", prompt)
	}
}

func TestChunkText_Short(t *testing.T) {
	chunks := chunkText("short text", 100)
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Fatalf("expected single unchanged chunk, got %v", chunks)
	}
}

func TestChunkText_BreaksAtSentence(t *testing.T) {
	text := strings.Repeat("word ", 15) + ". " + strings.Repeat("more ", 15)
	chunks := chunkText(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("expected text to be split, got %d chunk(s)", len(chunks))
	}
	if !strings.HasSuffix(chunks[0], ".") {
		t.Errorf("expected first chunk to break at sentence end, got %q", chunks[0])
	}
}

func TestChunkText_PreservesContent(t *testing.T) {
	text := strings.Repeat("alpha beta gamma. ", 50)
	chunks := chunkText(text, 100)

	var sb strings.Builder
	for _, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk exceeds limit: %d chars", len(c))
		}
		sb.WriteString(c)
	}
	if sb.String() != text {
		t.Error("expected concatenated chunks to equal the original text")
	}
}

func TestChunkText_MultiByteInput(t *testing.T) {
	// No newline or '.' anywhere, so every split takes the hard-split path.
	text := strings.Repeat("日本語の要約テキスト", 30)
	chunks := chunkText(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("expected text to be split, got %d chunk(s)", len(chunks))
	}

	var sb strings.Builder
	for i, c := range chunks {
		if !utf8.ValidString(c) {
			t.Errorf("chunk %d is not valid UTF-8: %q", i, c)
		}
		if len(c) > 100 {
			t.Errorf("chunk %d exceeds limit: %d bytes", i, len(c))
		}
		sb.WriteString(c)
	}
	if sb.String() != text {
		t.Error("expected concatenated chunks to equal the original text")
	}
}
