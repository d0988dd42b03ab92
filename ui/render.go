package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"vinoteka/domain/catalog"
	"vinoteka/internal/errors"
)

// PageData is what the page template sees.
type PageData struct {
	Age   int
	Wines []catalog.Group
}

// RenderPage executes the page template with the grouped catalog and the
// winery age and writes the result to outPath. The page is rendered into a
// buffer first so template errors surface before the output file is
// touched. The template can call year_word to pluralize the age.
func RenderPage(templatePath, outPath string, age int, groups []catalog.Group) error {
	funcMap := template.FuncMap{
		"year_word": catalog.YearWord,
	}

	tmpl, err := template.New(filepath.Base(templatePath)).Funcs(funcMap).ParseFiles(templatePath)
	if err != nil {
		return errors.RenderFailed(fmt.Sprintf("cannot load template %s: %v", templatePath, err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, PageData{Age: age, Wines: groups}); err != nil {
		return errors.RenderFailed(fmt.Sprintf("template %s execution failed: %v", templatePath, err))
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return errors.WriteFailed(fmt.Sprintf("cannot write %s: %v", outPath, err))
	}
	return nil
}
