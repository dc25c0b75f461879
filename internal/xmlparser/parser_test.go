package xmlparser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/xmltable/internal/table"
	"github.com/ginjaninja78/xmltable/internal/xmlparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, doc string) *table.Table {
	t.Helper()
	tbl, err := xmlparser.LoadReader(strings.NewReader(doc))
	require.NoError(t, err)
	return tbl
}

func TestKeyPath(t *testing.T) {
	assert.Equal(t, "name", xmlparser.KeyPath("", "name"))
	assert.Equal(t, "address.city", xmlparser.KeyPath("address", "city"))
	assert.Equal(t, "@id", xmlparser.AttrKey("", "id"))
	assert.Equal(t, "address.@type", xmlparser.AttrKey("address", "type"))
	assert.Equal(t, "a.b.@c", xmlparser.AttrKey(xmlparser.KeyPath("a", "b"), "c"))
}

func TestLoadBasicDocument(t *testing.T) {
	tbl := load(t, `<root><item id="1"><name>Bea</name></item><item id="2"><name>Ann</name></item></root>`)

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"@id", "name"}, tbl.Columns().Names())
	assert.Equal(t, map[string]string{"@id": "1", "name": "Bea"}, tbl.Row(0).Map())
	assert.Equal(t, map[string]string{"@id": "2", "name": "Ann"}, tbl.Row(1).Map())

	sorted := tbl.Sort("name", false)
	assert.Equal(t, map[string]string{"@id": "2", "name": "Ann"}, sorted.Row(0).Map())
	assert.Equal(t, map[string]string{"@id": "1", "name": "Bea"}, sorted.Row(1).Map())
}

func TestRepeatedSiblingsAreMerged(t *testing.T) {
	tbl := load(t, `<root><item><tag>x</tag><tag>  </tag><tag>y</tag></item></root>`)

	v, ok := tbl.Row(0).Get("tag")
	require.True(t, ok)
	assert.Equal(t, "x | y", v)
}

func TestNestedElementsAndAttributes(t *testing.T) {
	tbl := load(t, `
<people>
  <person id="7">
    <address type="home" primary="yes">
      <city>Lyon</city>
      <zip>69000</zip>
      <geo><lat>45.7</lat><lon>4.8</lon></geo>
    </address>
  </person>
</people>`)

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{
		"@id",
		"address.@type",
		"address.@primary",
		"address.city",
		"address.zip",
		"address.geo.lat",
		"address.geo.lon",
	}, tbl.Columns().Names())
}

func TestChildrenWinOverMixedText(t *testing.T) {
	tbl := load(t, `<root><item><p>hello <b>bold</b> world</p></item></root>`)

	row := tbl.Row(0)
	assert.False(t, row.Has("p"))
	v, _ := row.Get("p.b")
	assert.Equal(t, "bold", v)
}

func TestItemOwnText(t *testing.T) {
	tbl := load(t, `<root><entry id="1">first <a>b</a> second</entry><entry>   </entry></root>`)

	v, ok := tbl.Row(0).Get("entry")
	require.True(t, ok)
	assert.Equal(t, "first  second", v)
	assert.Equal(t, 0, tbl.Row(1).Len())
}

func TestCDataAndEntities(t *testing.T) {
	tbl := load(t, `<root><item><code><![CDATA[a<b]]></code><txt>x &amp; y</txt></item></root>`)

	code, _ := tbl.Row(0).Get("code")
	txt, _ := tbl.Row(0).Get("txt")
	assert.Equal(t, "a<b", code)
	assert.Equal(t, "x & y", txt)
}

func TestNamespacesUseLocalNames(t *testing.T) {
	tbl := load(t, `<n:root xmlns:n="urn:x" xmlns="urn:y"><n:item n:id="1" xmlns:m="urn:m"><m:name>A</m:name></n:item></n:root>`)

	assert.Equal(t, []string{"@id", "name"}, tbl.Columns().Names())
}

func TestCaseInsensitiveColumns(t *testing.T) {
	tbl := load(t, `<root><item><Name>a</Name><NAME>b</NAME></item><item><name>c</name></item></root>`)

	assert.Equal(t, []string{"Name"}, tbl.Columns().Names())
	v, _ := tbl.Row(0).Get("name")
	assert.Equal(t, "a | b", v)
}

func TestRowCountEqualsItemCount(t *testing.T) {
	tbl := load(t, `<root><a/><b x="1"/><c>text</c><!-- comment --><d><e/></d></root>`)

	assert.Equal(t, 4, tbl.Len())
}

func TestFlatteningIsDeterministic(t *testing.T) {
	doc := `<root><item id="1"><x>1</x><y a="2">3</y></item><item><z>4</z></item></root>`

	first := load(t, doc)
	second := load(t, doc)

	assert.Equal(t, first.Columns().Names(), second.Columns().Names())
	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, first.Row(i).Map(), second.Row(i).Map())
		assert.Equal(t, first.Row(i).Keys(), second.Row(i).Keys())
	}
}

func TestEmptyRootYieldsEmptyTable(t *testing.T) {
	tbl := load(t, `<root>  </root>`)

	assert.True(t, tbl.Empty())
	assert.Equal(t, 0, tbl.Columns().Len())
}

func TestDeepNesting(t *testing.T) {
	const depth = 5000
	var b strings.Builder
	b.WriteString("<root><item>")
	for i := 0; i < depth; i++ {
		b.WriteString("<n>")
	}
	b.WriteString("leaf")
	for i := 0; i < depth; i++ {
		b.WriteString("</n>")
	}
	b.WriteString("</item></root>")

	tbl := load(t, b.String())

	keys := tbl.Row(0).Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, depth, strings.Count(keys[0], "n"))
}

func TestMalformedDocuments(t *testing.T) {
	docs := map[string]string{
		"empty":         ``,
		"prolog":        `<?xml version="1.0"?>`,
		"unclosed":      `<root><item></root>`,
		"not xml":       `just text`,
		"two roots":     `<a><x>1</x></a><b><y>2</y></b>`,
		"trailing text": `<a><x>1</x></a>tail`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := xmlparser.LoadReader(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, xmlparser.IsMalformed(err), "got %v", err)
		})
	}
}

func TestMultipleRootsReportReason(t *testing.T) {
	_, err := xmlparser.LoadReader(strings.NewReader(`<a><x>1</x></a><b><y>2</y></b>`))

	var malformed *xmlparser.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "multiple root elements", malformed.Reason)
}

func TestSingleRootWithProlog(t *testing.T) {
	doc := "<?xml version=\"1.0\"?>\n<!-- header -->\n<a><x>1</x></a>\n<!-- trailer -->\n"

	tbl, err := xmlparser.LoadReader(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestBlankAttributesAreAbsent(t *testing.T) {
	tbl, err := xmlparser.LoadReader(strings.NewReader(`<root><item a="   " b="" k=" v "><c d=" "/></item></root>`))
	require.NoError(t, err)

	assert.Equal(t, []string{"@k"}, tbl.Columns().Names())
	assert.Equal(t, map[string]string{"@k": " v "}, tbl.Row(0).Map())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<books><book isbn="1"><title>Go</title></book></books>`), 0o644))

	tbl, err := xmlparser.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{"@isbn", "title"}, tbl.Columns().Names())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := xmlparser.Load(filepath.Join(t.TempDir(), "missing.xml"))

	require.ErrorIs(t, err, xmlparser.ErrFileNotFound)
}

func TestLoadDirectory(t *testing.T) {
	_, err := xmlparser.Load(t.TempDir())

	require.ErrorIs(t, err, xmlparser.ErrFileNotFound)
}

func TestLoadMalformedFileKeepsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<root><a></root>`), 0o644))

	_, err := xmlparser.Load(path)

	var malformed *xmlparser.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, path, malformed.Path)
	assert.Contains(t, err.Error(), path)
}
