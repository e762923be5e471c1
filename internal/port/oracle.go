package port

import "context"

// SuggestedDataPoint is one unverified field proposal from the oracle.
type SuggestedDataPoint struct {
	Label     string `json:"label"`
	Selector  string `json:"selector"`
	Attribute string `json:"attribute,omitempty"`
}

// SuggestedCollection is one unverified repeating-item proposal. Nothing in
// it may be trusted until it has been validated against the live document.
type SuggestedCollection struct {
	CollectionName           string               `json:"collectionName"`
	RepeatingElementSelector string               `json:"repeatingElementSelector"`
	DataPoints               []SuggestedDataPoint `json:"dataPoints"`
}

// SuggestInput carries the data needed for a suggestion request. APIKey
// overrides the configured provider credential when non-empty.
type SuggestInput struct {
	DOMContent string
	APIKey     string
}

// SuggestOutput is the oracle's raw proposal list, in relevance order.
type SuggestOutput struct {
	Collections []SuggestedCollection
	ModelUsed   string
}

// SuggestionOracle abstracts the LLM that proposes collections and data
// points for a document. A failure is always an error, never an empty
// successful output.
type SuggestionOracle interface {
	Suggest(ctx context.Context, input SuggestInput) (*SuggestOutput, error)
}
