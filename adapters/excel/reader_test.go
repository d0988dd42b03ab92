package excel

import (
	"os"
	"path/filepath"
	"testing"

	"vinoteka/domain/catalog"
	"vinoteka/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDataReader_ReadsCSVRows(t *testing.T) {
	path := writeTempCSV(t,
		"Название,Сорт,Цена,Картинка,Категория\n"+
			"Изабелла,Изабелла,150,izabella.png,Красное вино\n"+
			"Рислинг,, ,riesling.png,Белое вино\n")

	rows, err := NewDataReader(path).ReadRows()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Изабелла", rows[0][catalog.ColName])
	assert.Equal(t, "Красное вино", rows[0][catalog.ColCategory])

	price, ok := rows[0].PriceValue()
	assert.True(t, ok)
	assert.Equal(t, 150.0, price)

	// Blank cells are trimmed to empty strings and yield no price.
	assert.Equal(t, "", rows[1][catalog.ColGrape])
	_, ok = rows[1].PriceValue()
	assert.False(t, ok)
}

func TestDataReader_HeaderOnlyFileIsEmptyCatalog(t *testing.T) {
	path := writeTempCSV(t, "Название,Сорт,Цена,Картинка,Категория\n")

	rows, err := NewDataReader(path).ReadRows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDataReader_ShortRowsTolerated(t *testing.T) {
	path := writeTempCSV(t,
		"Название,Сорт,Цена,Картинка,Категория\n"+
			"Саперави,Саперави\n")

	rows, err := NewDataReader(path).ReadRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0][catalog.ColCategory])
}

func TestDataReader_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.xlsx")).ReadRows()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInputNotFound, errors.GetCode(err))
}

func TestDataReader_CorruptExcelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	_, err := NewDataReader(path).ReadRows()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInputMalformed, errors.GetCode(err))
}

func TestNewDataReader_DetectsFileType(t *testing.T) {
	assert.Equal(t, "csv", NewDataReader("wines.CSV").fileType)
	assert.Equal(t, "xlsx", NewDataReader("wines.xlsx").fileType)
	assert.Equal(t, "xlsx", NewDataReader("wines").fileType)
}
