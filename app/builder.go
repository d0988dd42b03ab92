package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"vinoteka/domain/catalog"
	"vinoteka/internal"
	"vinoteka/internal/config"
	"vinoteka/internal/errors"
	"vinoteka/ui"
)

// RowSource supplies raw catalog rows to the pipeline.
type RowSource interface {
	ReadRows() ([]catalog.Row, error)
}

// Builder runs the full generation pipeline: load, find cheapest, group,
// export, render. Every run recomputes from scratch and overwrites the
// output files whole.
type Builder struct {
	source RowSource
	logger *internal.Logger
}

// NewBuilder creates a builder over the given row source
func NewBuilder(source RowSource) *Builder {
	return &Builder{
		source: source,
		logger: internal.DefaultLogger,
	}
}

// BuildResult summarizes one generation run
type BuildResult struct {
	Rows       int
	Wines      int
	Categories int
	Age        int
	HTMLPath   string
	JSONPath   string
}

// Build executes the pipeline. Any stage error is fatal; the returned
// error carries the failed stage in its message and the stage code for
// the top-level handler.
func (b *Builder) Build(cfg *config.Config) (*BuildResult, error) {
	age := time.Now().Year() - cfg.FoundationYear

	rows, err := b.source.ReadRows()
	if err != nil {
		return nil, errors.Wrap(err, "loading catalog rows failed")
	}
	b.logger.Info("Loaded %d rows from %s", len(rows), cfg.ExcelFile)

	cheapest := catalog.FindCheapest(rows)
	if cheapest == nil {
		b.logger.Warn("No row has a positive price, nothing will be flagged as a promotion")
	}

	grouped := catalog.GroupByCategory(rows, cheapest)
	b.logger.Info("Grouped %d wines into %d categories", grouped.WineCount(), len(grouped.Groups()))

	result := &BuildResult{
		Rows:       len(rows),
		Wines:      grouped.WineCount(),
		Categories: len(grouped.Groups()),
		Age:        age,
		HTMLPath:   cfg.HTMLOutput,
	}

	if cfg.SaveJSON {
		if err := writeJSON(grouped, cfg.JSONOutput); err != nil {
			return nil, errors.Wrap(err, "JSON export failed")
		}
		result.JSONPath = cfg.JSONOutput
		b.logger.Info("JSON written to %s", cfg.JSONOutput)
	}

	if err := ui.RenderPage(cfg.Template, cfg.HTMLOutput, age, grouped.Groups()); err != nil {
		return nil, errors.Wrap(err, "page rendering failed")
	}
	b.logger.Info("HTML written to %s", cfg.HTMLOutput)

	return result, nil
}

// writeJSON overwrites path with the catalog as 2-space-indented UTF-8
// JSON, keys in insertion order and non-ASCII characters kept literal.
func writeJSON(grouped *catalog.Catalog, path string) error {
	// Marshal directly so encoding/json does not re-escape the output of
	// the catalog's own marshaler.
	raw, err := grouped.MarshalJSON()
	if err != nil {
		return errors.WithCode(errors.CodeWriteFailed, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return errors.WithCode(errors.CodeWriteFailed, err)
	}
	out.WriteByte('\n')

	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return errors.WriteFailed(fmt.Sprintf("cannot write %s: %v", path, err))
	}
	return nil
}
