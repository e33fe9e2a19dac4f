package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTable_AppendPadsAndGrows(t *testing.T) {
	tbl := New("title", "description")
	tbl.Append("only title")
	tbl.Append("a", "b", "extra")

	assert.Equal(t, []string{"title", "description", "column_3"}, tbl.Header)
	assert.Equal(t, []string{"only title", "", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"a", "b", "extra"}, tbl.Rows[1])
}

func TestTable_SetColumn(t *testing.T) {
	tbl := New("title", "sentiment")
	tbl.Append("a", "stale")
	tbl.Append("b", "stale")

	require.NoError(t, tbl.SetColumn("sentiment", []string{"Positive", "Negative"}))
	require.NoError(t, tbl.SetColumn("full_text", []string{"a ", "b "}))

	assert.Equal(t, []string{"title", "sentiment", "full_text"}, tbl.Header)
	assert.Equal(t, "Negative", tbl.Value(1, "sentiment"))
	assert.Equal(t, "a ", tbl.Value(0, "full_text"))

	err := tbl.SetColumn("x", []string{"only one"})
	assert.Error(t, err)
}

func TestTable_ValueMissingColumn(t *testing.T) {
	tbl := New("title")
	tbl.Append("hello")

	assert.Equal(t, "", tbl.Value(0, "description"))
	assert.Equal(t, "", tbl.Value(5, "title"))
	assert.Equal(t, -1, tbl.ColumnIndex("description"))
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := New("title")
	tbl.Append("hello")

	c := tbl.Clone()
	c.Rows[0][0] = "changed"

	assert.Equal(t, "hello", tbl.Rows[0][0])
}

func TestReadCSV(t *testing.T) {
	input := "\ufefftitle,description\n\"Hello, world\",great\nshort\n"

	tbl, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "description"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Hello, world", tbl.Value(0, "title"))
	assert.Equal(t, "", tbl.Value(1, "description"))
}

func TestReadCSV_Empty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Header)
	assert.Equal(t, 0, tbl.Len())
}

func TestReadFile_SelectsReaderByExtension(t *testing.T) {
	dir := t.TempDir()

	tbl := New("title", "selftext")
	tbl.Append("First post", "body text")

	csvPath := filepath.Join(dir, "posts.csv")
	xlsxPath := filepath.Join(dir, "posts.xlsx")
	require.NoError(t, WriteCSV(csvPath, tbl))
	require.NoError(t, WriteXLSX(xlsxPath, tbl))

	for _, path := range []string{csvPath, xlsxPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tbl.Header, got.Header)
			assert.Equal(t, tbl.Rows, got.Rows)
		})
	}

	// An xlsx extension must go through the spreadsheet reader, so csv
	// bytes behind that name fail to parse.
	bogus := filepath.Join(dir, "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("title\nx\n"), 0o644))
	_, err := ReadFile(bogus)
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadXLSX_PadsTrimmedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"title", "description", "url"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Launch day"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadXLSX(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"Launch day", "", ""}, tbl.Rows[0])
}

func TestEncodeXLSX_TruncatesOversizedCells(t *testing.T) {
	tbl := New("content")
	tbl.Append(strings.Repeat("a", excelize.TotalCellChars+10))

	buf, err := EncodeXLSX(tbl)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(DEFAULT_SHEET, "A2")
	require.NoError(t, err)
	assert.Len(t, v, excelize.TotalCellChars)
}
