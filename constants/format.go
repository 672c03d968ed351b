package constants

import "strings"

// Document formats accepted at the extraction boundary.
const (
	PDF   = "PDF"
	DOCX  = "DOCX"
	IMAGE = "IMAGE"
	TXT   = "TXT"
)

// FileFormats holds the allowed values for a document's declared format.
var FileFormats = []string{PDF, DOCX, IMAGE, TXT}

var imageExts = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tif":  {},
	"tiff": {},
	"bmp":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to a document format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	ext = NormalizeExt(ext)
	switch {
	case ext == "pdf":
		return PDF
	case ext == "docx" || ext == "doc":
		return DOCX
	case ext == "txt":
		return TXT
	default:
		if _, ok := imageExts[ext]; ok {
			return IMAGE
		}
		return ""
	}
}
