package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vinoteka/domain/catalog"
	"vinoteka/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV catalog files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadRows reads the catalog rows keyed by column header. A file with only
// a header row yields zero rows, which is valid input.
func (r *DataReader) ReadRows() ([]catalog.Row, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.InputNotFound(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVRows()
	default:
		return r.readExcelRows()
	}
}

// readExcelRows reads catalog rows from Sheet1
func (r *DataReader) readExcelRows() ([]catalog.Row, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInputMalformed, errors.Wrap(err, "failed to open Excel file"))
	}
	defer f.Close()
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.WithCode(errors.CodeInputMalformed, errors.Wrap(err, "failed to read Sheet1"))
	}

	if len(rows) < 1 {
		return nil, errors.InputMalformed("Excel file must have a header row")
	}

	return r.processRows(rows), nil
}

// readCSVRows reads catalog rows from a CSV file
func (r *DataReader) readCSVRows() ([]catalog.Row, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInputMalformed, errors.Wrap(err, "failed to open CSV file"))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // spreadsheet exports often leave trailing cells off
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithCode(errors.CodeInputMalformed, errors.Wrap(err, "failed to read CSV file"))
	}

	if len(rows) < 1 {
		return nil, errors.InputMalformed("CSV file must have a header row")
	}

	return r.processRows(rows), nil
}

// processRows converts raw string rows into header-keyed catalog rows
func (r *DataReader) processRows(rows [][]string) []catalog.Row {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []catalog.Row
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(catalog.Row)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return dataRows
}
