package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParserParse(t *testing.T) {
	input := "Date,Description,Amount\n" +
		"01/06/2024,Netflix,9.99\n" +
		"02/06/2024,Tesco Store,45.10\n"

	parser := NewCSVParser()
	rows, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "01/06/2024", rows[0]["Date"])
	assert.Equal(t, "Netflix", rows[0]["Description"])
	assert.Equal(t, "9.99", rows[0]["Amount"])
	assert.Equal(t, "Tesco Store", rows[1]["Description"])
}

func TestCSVParserRaggedRows(t *testing.T) {
	// A short row still maps its known cells; missing trailing cells become
	// empty strings rather than failing the file.
	input := "Date,Description,Amount\n" +
		"01/06/2024,Coffee\n" +
		"02/06/2024,Lunch,12.50,extra\n"

	parser := NewCSVParser()
	rows, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Coffee", rows[0]["Description"])
	assert.Equal(t, "", rows[0]["Amount"])
	assert.Equal(t, "12.50", rows[1]["Amount"])
}

func TestCSVParserSkipsBlankLines(t *testing.T) {
	input := "Date,Description,Amount\n" +
		"\n" +
		",,\n" +
		"01/06/2024,Groceries,20.00\n"

	parser := NewCSVParser()
	rows, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Groceries", rows[0]["Description"])
}

func TestCSVParserHeaderOnly(t *testing.T) {
	parser := NewCSVParser()

	rows, err := parser.Parse(strings.NewReader("Date,Description,Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVParserEmptyFile(t *testing.T) {
	parser := NewCSVParser()

	rows, err := parser.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVParserTrimsHeaderAndCells(t *testing.T) {
	input := " Date , Description ,Amount\n" +
		" 01/06/2024 ,  Netflix  , 9.99 \n"

	parser := NewCSVParser()
	rows, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Netflix", rows[0]["Description"])
	assert.Equal(t, "9.99", rows[0]["Amount"])
}
