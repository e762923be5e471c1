package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<html><head><title>  Product Catalog  </title></head><body>
<ul>
	<li class="item"><span class="name">Alpha</span><a href="/a">more</a></li>
	<li class="item"><span class="name">Beta</span></li>
	<li class="item"><span class="name">  </span><img src="c.png"></li>
</ul>
<div class="footer">fin</div>
</body></html>`

func mustParse(t *testing.T, raw string) *Document {
	t.Helper()
	doc, err := Parse(raw)
	require.NoError(t, err)
	return doc
}

func TestParse_MalformedDegrades(t *testing.T) {
	doc, err := Parse("<<<not really html")
	require.NoError(t, err)
	assert.Empty(t, doc.MatchAll("li.item"))

	doc, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.MatchAll("*[class]"))
}

func TestMatchAll_DocumentOrder(t *testing.T) {
	doc := mustParse(t, sampleHTML)

	items := doc.MatchAll("li.item")
	require.Len(t, items, 3)

	names := make([]string, 0, 3)
	for _, it := range items {
		names = append(names, it.Find("span.name").Text())
	}
	assert.Equal(t, "Alpha", names[0])
	assert.Equal(t, "Beta", names[1])
}

func TestMatchAll_InvalidSelectorFailsSoft(t *testing.T) {
	doc := mustParse(t, sampleHTML)

	assert.NotPanics(t, func() {
		assert.Empty(t, doc.MatchAll("li..item"))
		assert.Empty(t, doc.MatchAll("[[["))
		assert.Empty(t, doc.MatchAll(""))
	})
}

func TestMatchFirst_ScopedToElement(t *testing.T) {
	doc := mustParse(t, sampleHTML)
	items := doc.MatchAll("li.item")
	require.Len(t, items, 3)

	// span.name exists under each item but .footer only exists outside them
	_, ok := MatchFirst(items[0], "span.name")
	assert.True(t, ok)
	_, ok = MatchFirst(items[0], ".footer")
	assert.False(t, ok)
	_, ok = MatchFirst(items[0], ":::bogus")
	assert.False(t, ok)
}

func TestReadField(t *testing.T) {
	doc := mustParse(t, sampleHTML)
	items := doc.MatchAll("li.item")
	require.Len(t, items, 3)

	tests := []struct {
		name      string
		item      int
		selector  string
		attribute string
		want      *string
	}{
		{"text content trimmed", 0, "span.name", "", strptr("Alpha")},
		{"attribute value", 0, "a", "href", strptr("/a")},
		{"attribute absent", 0, "a", "data-missing", nil},
		{"selector no match", 1, "a", "href", nil},
		{"whitespace-only text is null", 2, "span.name", "", nil},
		{"invalid selector", 0, "span..name", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadField(items[tt.item], tt.selector, tt.attribute)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestTitle(t *testing.T) {
	doc := mustParse(t, sampleHTML)
	assert.Equal(t, "Product Catalog", doc.Title())

	doc = mustParse(t, "<html><body>no title</body></html>")
	assert.Equal(t, "", doc.Title())
}

func strptr(s string) *string { return &s }
