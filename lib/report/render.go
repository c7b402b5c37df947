package report

import (
	"gitlab.com/tech-pubs/simplified-english/lib"
)

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(report *Report) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "json", "csv".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text":
		return &textRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "csv":
		return &csvRenderer{}, nil
	default:
		return nil, lib.NewConfigError("unknown report format %q: supported formats are text, json, csv", format)
	}
}
