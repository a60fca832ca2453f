package rules

import (
	"fmt"
	"strings"

	"whatsapp-template-linter/internal/schema"
)

// mediaExtensions maps each media header format to its accepted file
// suffixes, matched case-insensitively. LOCATION headers carry
// coordinates at send time and need no URL at all.
var mediaExtensions = map[schema.HeaderFormat][]string{
	schema.FormatImage:    {".jpg", ".jpeg", ".png"},
	schema.FormatVideo:    {".mp4"},
	schema.FormatDocument: {".pdf"},
}

// checkMedia enforces the example URL requirement of media headers and
// the format-specific file extension.
func checkMedia(t *schema.Template) []Diagnostic {
	header := t.Header()
	if header == nil || !header.Format.IsMedia() {
		return nil
	}

	url := ""
	if header.Example != nil {
		url = header.Example.HeaderURL
	}
	if url == "" {
		return []Diagnostic{errorf("header.example.header_url",
			fmt.Sprintf("a %s header requires an example media URL", header.Format))}
	}

	exts := mediaExtensions[header.Format]
	lower := strings.ToLower(url)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return []Diagnostic{errorf("header.example.header_url",
		fmt.Sprintf("%s headers require a URL ending in %s", header.Format, strings.Join(exts, ", ")))}
}
