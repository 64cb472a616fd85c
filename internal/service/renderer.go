package service

import (
	"context"
	"os"
	"strings"
	"time"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"

	"github.com/go-pdf/fpdf"
)

const pageMargin = 20 // mm

// PDFRenderer implements domain.Renderer using fpdf. Rendering is purely
// local work; the only failure modes are encoding and filesystem errors.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer instance
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes the summary report to a uniquely named transient file and
// returns its path and byte size. The caller owns the file. No partial file
// survives a failed render.
func (r *PDFRenderer) Render(ctx context.Context, summary string, metadata *domain.DocumentMetadata) (*domain.RenderedDocument, error) {
	tmp, err := os.CreateTemp("", "summary-*.pdf")
	if err != nil {
		return nil, errors.NewRenderError("failed to create transient file", err)
	}
	path := tmp.Name()
	// fpdf writes the file itself; we only needed the unique name.
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return nil, errors.NewRenderError("failed to close transient file", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	// Header: report title left, generation timestamp right.
	title := "Summary Report"
	if metadata != nil && metadata.Title != "" {
		title = metadata.Title
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentWidth-45, 8, tr(title), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(45, 8, time.Now().UTC().Format("2006-01-02 15:04 UTC"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Metadata block, only for fields the caller supplied.
	if metadata != nil && (metadata.Author != "" || metadata.Source != "") {
		pdf.SetFont("Helvetica", "I", 10)
		if metadata.Author != "" {
			pdf.CellFormat(contentWidth, 6, tr("Author: "+metadata.Author), "", 1, "L", false, 0, "")
		}
		if metadata.Source != "" {
			pdf.CellFormat(contentWidth, 6, tr("Source: "+metadata.Source), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(pageMargin, pdf.GetY(), pageWidth-pageMargin, pdf.GetY())
	pdf.Ln(4)

	// Body: wrapped paragraphs, blank line between them.
	pdf.SetFont("Helvetica", "", 10)
	for _, paragraph := range strings.Split(summary, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		pdf.MultiCell(contentWidth, 5, tr(paragraph), "", "L", false)
		pdf.Ln(3)
	}

	if pdf.Err() {
		os.Remove(path)
		return nil, errors.NewRenderError("failed to compose document", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return nil, errors.NewRenderError("failed to serialize document", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		os.Remove(path)
		return nil, errors.NewRenderError("failed to stat rendered document", err)
	}

	return &domain.RenderedDocument{
		Path: path,
		Size: info.Size(),
	}, nil
}
