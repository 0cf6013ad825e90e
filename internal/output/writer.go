package output

import (
	"io"

	"github.com/lgbarn/matesearch-go/internal/config"
)

// ReportWriter is the interface for writing search reports.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(rep Report) error
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report in text format.
func (tw *TextWriter) WriteReport(rep Report) error {
	return WriteText(tw.w, rep, tw.cfg)
}

// JSONWriter writes reports in JSON format.
type JSONWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteReport writes a report in JSON format.
func (jw *JSONWriter) WriteReport(rep Report) error {
	return WriteJSON(jw.w, rep, jw.cfg)
}

// NewWriter returns the writer selected by the configuration.
func NewWriter(cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(cfg.OutputFile, cfg.Output)
	}
	return NewTextWriter(cfg.OutputFile, cfg.Output)
}
