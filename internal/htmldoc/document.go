// Package htmldoc wraps a parsed HTML document behind the selector queries
// the validation and extraction layers need. Selectors arrive from an
// untrusted oracle, so syntactically invalid ones degrade to zero matches
// instead of panicking.
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Document is an immutable parsed HTML document. It is built once per
// fetched page and shared read-only by validation and extraction.
type Document struct {
	root *goquery.Document
}

// Parse builds a Document from raw HTML. Malformed or empty markup degrades
// to a near-empty document per HTML5 parsing rules; an error means the input
// could not be interpreted as a document at all.
func Parse(raw string) (*Document, error) {
	root, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// MatchAll returns every element matching selector, in document order.
// An invalid selector returns nil.
func (d *Document) MatchAll(selector string) []*goquery.Selection {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	sel := d.root.FindMatcher(m)
	out := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

// MatchFirst resolves selector against the descendants of scope and returns
// the first match. Reports false on no match or an invalid selector.
func MatchFirst(scope *goquery.Selection, selector string) (*goquery.Selection, bool) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, false
	}
	found := scope.FindMatcher(m).First()
	if found.Length() == 0 {
		return nil, false
	}
	return found, true
}

// ReadField resolves selector relative to scope and reads the named
// attribute, or trimmed text content when attribute is empty. Returns nil
// when the selector does not match, the attribute is absent, or the value
// trims to the empty string; a non-nil result is never empty.
func ReadField(scope *goquery.Selection, selector, attribute string) *string {
	el, ok := MatchFirst(scope, selector)
	if !ok {
		return nil
	}
	var value string
	if attribute != "" {
		v, present := el.Attr(attribute)
		if !present {
			return nil
		}
		value = v
	} else {
		value = el.Text()
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// Title returns the trimmed text of the document's <title>, or "" if absent.
func (d *Document) Title() string {
	return strings.TrimSpace(d.root.Find("title").First().Text())
}
