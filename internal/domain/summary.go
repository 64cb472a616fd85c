package domain

// DocumentMetadata carries optional descriptive fields supplied by the
// caller. All fields are free text and may be empty.
type DocumentMetadata struct {
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
	Source string `json:"source,omitempty"`
}

// SummarizeRequest is the payload of POST /summarize.
type SummarizeRequest struct {
	Content  string            `json:"content"`
	Metadata *DocumentMetadata `json:"metadata,omitempty"`
}

// RenderedDocument is a PDF written to a transient local file. The caller
// owns the file and is responsible for removing it.
type RenderedDocument struct {
	Path string
	Size int64
}

// UploadResult describes an asset stored at the CDN backend.
type UploadResult struct {
	URL      string
	PublicID string
	Format   string
	Bytes    int64
}

// SummaryReport is the success response of POST /summarize.
type SummaryReport struct {
	Success       bool   `json:"success"`
	CloudinaryURL string `json:"cloudinary_url"`
	PublicID      string `json:"public_id"`
	Format        string `json:"format"`
	Bytes         int64  `json:"bytes"`
	Message       string `json:"message"`
}
