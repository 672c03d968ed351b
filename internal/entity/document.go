package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/adityo-p/threeway-matcher/constants"
)

// Document is one side of the three-way match. Text is set exactly once by
// the extraction stage and is immutable afterwards.
type Document struct {
	ID       uuid.UUID              `json:"id"`
	Role     constants.DocumentRole `json:"role"`
	Filename string                 `json:"filename"`
	Format   string                 `json:"format"`
	Content  []byte                 `json:"-"`
	Text     string                 `json:"text,omitempty"`

	Extraction ExtractionMeta `json:"extraction"`
}

// ExtractionMeta records how the text was obtained.
type ExtractionMeta struct {
	Method     string        `json:"method,omitempty"` // "pdf-text" | "pdf-ocr" | "image-ocr" | "docx" | "plain"
	Pages      int           `json:"pages,omitempty"`
	Language   string        `json:"language,omitempty"`
	Confidence float32       `json:"confidence,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Warnings   []string      `json:"warnings,omitempty"`
	OCRUsed    bool          `json:"ocr_used"`
}

// NewDocument builds a document for one role of the match.
func NewDocument(role constants.DocumentRole, filename, format string, content []byte) *Document {
	return &Document{
		ID:       uuid.New(),
		Role:     role,
		Filename: filename,
		Format:   format,
		Content:  content,
	}
}
