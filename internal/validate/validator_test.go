package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harvester/internal/htmldoc"
	"harvester/internal/port"
	"harvester/internal/validate"
)

const catalogHTML = `<html><body>
<ul>
	<li class="product"><h2 class="title">Widget</h2><span class="price">9.99</span><img src="w.png"></li>
	<li class="product"><h2 class="title">Gadget</h2><span class="price">19.99</span></li>
</ul>
<div class="review"><p class="author">Ana</p></div>
<div class="review"><p class="author">Bo</p></div>
</body></html>`

func parseDoc(t *testing.T) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.Parse(catalogHTML)
	require.NoError(t, err)
	return doc
}

func point(label, selector string) port.SuggestedDataPoint {
	return port.SuggestedDataPoint{Label: label, Selector: selector}
}

func TestValidate_KeepsOnlyResolvableSuggestions(t *testing.T) {
	doc := parseDoc(t)

	suggested := []port.SuggestedCollection{
		{
			CollectionName:           "Products",
			RepeatingElementSelector: "li.product",
			DataPoints: []port.SuggestedDataPoint{
				point("Title", "h2.title"),
				point("Invented", ".does-not-exist"),
				{Label: "Image", Selector: "img", Attribute: "src"},
			},
		},
	}

	set := validate.Validate(doc, suggested)
	require.Len(t, set, 1)

	coll := set[0]
	assert.Equal(t, "Products", coll.Name)
	require.Len(t, coll.DataPoints, 2)
	assert.Equal(t, "Title", coll.DataPoints[0].Label)
	assert.Equal(t, "Image", coll.DataPoints[1].Label)
	assert.Equal(t, "src", coll.DataPoints[1].Attribute)
}

func TestValidate_DropsCollectionWithUnmatchedRepeatingSelector(t *testing.T) {
	doc := parseDoc(t)

	suggested := []port.SuggestedCollection{
		{
			CollectionName:           "Phantom",
			RepeatingElementSelector: "section.missing",
			DataPoints:               []port.SuggestedDataPoint{point("X", "p")},
		},
	}

	assert.Empty(t, validate.Validate(doc, suggested))
}

func TestValidate_DropsCollectionWhenNoPointsSurvive(t *testing.T) {
	doc := parseDoc(t)

	suggested := []port.SuggestedCollection{
		{
			CollectionName:           "Products",
			RepeatingElementSelector: "li.product",
			DataPoints: []port.SuggestedDataPoint{
				point("Bogus", ".nope"),
				point("Broken", "h2..title"),
			},
		},
	}

	assert.Empty(t, validate.Validate(doc, suggested))
}

func TestValidate_PreservesProposalOrderAndAssignsStableIDs(t *testing.T) {
	doc := parseDoc(t)

	suggested := []port.SuggestedCollection{
		{
			CollectionName:           "Ghost",
			RepeatingElementSelector: ".missing",
			DataPoints:               []port.SuggestedDataPoint{point("X", "p")},
		},
		{
			CollectionName:           "Products",
			RepeatingElementSelector: "li.product",
			DataPoints: []port.SuggestedDataPoint{
				point("Title", "h2.title"),
				point("Price", "span.price"),
			},
		},
		{
			CollectionName:           "Reviews",
			RepeatingElementSelector: "div.review",
			DataPoints:               []port.SuggestedDataPoint{point("Author", "p.author")},
		},
	}

	set := validate.Validate(doc, suggested)
	require.Len(t, set, 2)

	// Survivors keep proposal order; ids stay scoped to the proposal index
	// so they never collide even when earlier collections are dropped.
	assert.Equal(t, "Products", set[0].Name)
	assert.Equal(t, "coll-1", set[0].ID)
	assert.Equal(t, "dp-1-0", set[0].DataPoints[0].ID)
	assert.Equal(t, "dp-1-1", set[0].DataPoints[1].ID)
	assert.Equal(t, "Reviews", set[1].Name)
	assert.Equal(t, "coll-2", set[1].ID)
	assert.Equal(t, "dp-2-0", set[1].DataPoints[0].ID)
}

func TestValidate_AnchorSampleOnly(t *testing.T) {
	// The second product has no price; the anchor (first product) does, so
	// the point survives. Missing values surface as nulls at extraction.
	doc := parseDoc(t)

	suggested := []port.SuggestedCollection{
		{
			CollectionName:           "Products",
			RepeatingElementSelector: "li.product",
			DataPoints:               []port.SuggestedDataPoint{point("Image", "img")},
		},
	}

	set := validate.Validate(doc, suggested)
	require.Len(t, set, 1)
	assert.Len(t, set[0].DataPoints, 1)
}

func TestValidate_AdversarialInputNeverSurvives(t *testing.T) {
	doc := parseDoc(t)

	suggested := []port.SuggestedCollection{
		{CollectionName: "", RepeatingElementSelector: "", DataPoints: []port.SuggestedDataPoint{point("", "")}},
		{CollectionName: "Bad", RepeatingElementSelector: "[[[", DataPoints: []port.SuggestedDataPoint{point("X", "p")}},
		{CollectionName: "Empty", RepeatingElementSelector: "li.product", DataPoints: nil},
	}

	assert.Empty(t, validate.Validate(doc, suggested))
}

func TestDefaultSelection(t *testing.T) {
	doc := parseDoc(t)

	set := validate.Validate(doc, []port.SuggestedCollection{
		{
			CollectionName:           "Products",
			RepeatingElementSelector: "li.product",
			DataPoints:               []port.SuggestedDataPoint{point("Title", "h2.title"), point("Price", "span.price")},
		},
		{
			CollectionName:           "Reviews",
			RepeatingElementSelector: "div.review",
			DataPoints:               []port.SuggestedDataPoint{point("Author", "p.author")},
		},
	})
	require.Len(t, set, 2)

	assert.Equal(t, []string{"dp-0-0", "dp-0-1"}, validate.DefaultSelection(set))
	assert.Nil(t, validate.DefaultSelection(nil))
}
