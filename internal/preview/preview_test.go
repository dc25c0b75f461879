package preview_test

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ginjaninja78/xmltable/internal/preview"
	"github.com/ginjaninja78/xmltable/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printRows(t *testing.T, width int, rows []table.Row, columns []string) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, preview.NewPrinter(&buf, width).Print(rows, columns))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestPrintLayout(t *testing.T) {
	rows := []table.Row{
		table.RowFromPairs("a", "1", "b", "hello\r\nworld"),
		table.RowFromPairs("a", "22"),
	}

	lines := printRows(t, 0, rows, []string{"a", "B"})

	require.Len(t, lines, 4)
	assert.Equal(t, "| a  | B"+strings.Repeat(" ", 11)+" |", lines[0])
	assert.Equal(t, "|----|"+strings.Repeat("-", 14)+"|", lines[1])
	assert.Equal(t, "| 1  | hello  world |", lines[2])
	assert.Equal(t, "| 22 |"+strings.Repeat(" ", 14)+"|", lines[3])
}

func TestPrintTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 40)
	header := strings.Repeat("h", 35)
	rows := []table.Row{table.RowFromPairs(header, long)}

	lines := printRows(t, 30, rows, []string{header})

	assert.Equal(t, "| "+header+" |", lines[0])
	assert.Equal(t, "|-"+strings.Repeat("-", 30)+"-|", lines[1])
	assert.Equal(t, "| "+strings.Repeat("x", 30)+" |", lines[2])
}

func TestPrintWideRunes(t *testing.T) {
	rows := []table.Row{table.RowFromPairs("c", "日本語"), table.RowFromPairs("c", "ab")}

	lines := printRows(t, 4, rows, []string{"c"})

	assert.Equal(t, "| c    |", lines[0])
	assert.Equal(t, "| 日本 |", lines[2])
	assert.Equal(t, "| ab   |", lines[3])
}

func TestPrintNoRows(t *testing.T) {
	lines := printRows(t, 0, nil, []string{"a"})

	assert.Equal(t, []string{preview.EmptyMessage}, lines)
}

func TestPager(t *testing.T) {
	tests := []struct {
		total int
		pages int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.total), func(t *testing.T) {
			p := preview.NewPager(10, tt.total)
			assert.Equal(t, tt.pages, p.TotalPages())
			assert.Equal(t, tt.pages > 1, p.HasMoreThanOnePage())
		})
	}
}

func TestPagerClamps(t *testing.T) {
	p := preview.NewPager(10, 25)

	p.Previous()
	assert.Equal(t, 0, p.PageIndex)

	p.Next()
	p.Next()
	p.Next()
	assert.Equal(t, 2, p.PageIndex)
	assert.Equal(t, 20, p.Offset())
	start, end := p.Bounds()
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	p.Previous()
	assert.Equal(t, 1, p.PageIndex)
}

func TestPagerBounds(t *testing.T) {
	p := preview.NewPager(10, 30)
	start, end := p.Bounds()
	assert.Equal(t, [2]int{0, 10}, [2]int{start, end})

	empty := preview.NewPager(10, 0)
	start, end = empty.Bounds()
	assert.Equal(t, [2]int{0, 0}, [2]int{start, end})
}

func TestPagerDefaultSize(t *testing.T) {
	assert.Equal(t, preview.DefaultPageSize, preview.NewPager(0, 5).PageSize)
}

func numberedTable(n int) *table.Table {
	rows := make([]table.Row, n)
	for i := range rows {
		rows[i] = table.RowFromPairs("n", fmt.Sprint(i))
	}
	return table.New(rows)
}

func pagesShown(out string) []string {
	var pages []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Preview page ") {
			pages = append(pages, strings.TrimPrefix(line, "Preview page "))
		}
	}
	return pages
}

func TestBrowse(t *testing.T) {
	var out bytes.Buffer
	keys := preview.NewLineKeyReader(bufio.NewReader(strings.NewReader("n\nN\nn\nx\np\nq\nn\n")))

	err := preview.Browse(&out, preview.NewPrinter(&out, 0), numberedTable(25), []string{"n"}, 10, keys)

	require.NoError(t, err)
	assert.Equal(t, []string{"1/3", "2/3", "3/3", "3/3", "3/3", "2/3"}, pagesShown(out.String()))
}

func TestBrowseSinglePageDoesNotReadKeys(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("q\n"))

	err := preview.Browse(&out, preview.NewPrinter(&out, 0), numberedTable(3), []string{"n"}, 10, preview.NewLineKeyReader(in))

	require.NoError(t, err)
	assert.Equal(t, []string{"1/1"}, pagesShown(out.String()))

	k, err := preview.NewLineKeyReader(in).ReadKey()
	require.NoError(t, err)
	assert.Equal(t, 'q', k)
}

func TestBrowseStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	keys := preview.NewLineKeyReader(bufio.NewReader(strings.NewReader("n")))

	err := preview.Browse(&out, preview.NewPrinter(&out, 0), numberedTable(25), []string{"n"}, 10, keys)

	require.NoError(t, err)
	assert.Equal(t, []string{"1/3", "2/3"}, pagesShown(out.String()))
}

func TestLineKeyReader(t *testing.T) {
	keys := preview.NewLineKeyReader(bufio.NewReader(strings.NewReader("  next\n\né")))

	k, err := keys.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, 'n', k)

	k, err = keys.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, '\n', k)

	k, err = keys.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, 'é', k)

	_, err = keys.ReadKey()
	assert.Error(t, err)
}
