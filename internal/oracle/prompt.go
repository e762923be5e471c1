package oracle

// BuildSuggestionPrompt returns the suggestion prompt for the given DOM
// content. The strict grounding rules matter: providers sometimes invent
// selectors anyway, which is why everything they return is re-validated
// against the parsed document before use.
func BuildSuggestionPrompt(domContent string) string {
	return `You are an expert web scraper. Your task is to analyze the provided HTML DOM content and identify collections of repeating items (like product listings, articles, search results) and the key data points within each item.

**Strict Rules:**
1. **No Invention:** Do NOT invent selectors, labels, or attributes. Every suggestion must correspond directly to elements and attributes present in the provided HTML.
2. **Accuracy is Key:** The CSS selectors you provide must be precise and valid.
3. **Grounding:** Your response *must* be based exclusively on the provided HTML. Every selector you return must be verifiable in the content.

**Instructions:**

1. **Identify Collections:** Find any lists or grids of similar items. For each collection, determine the main CSS selector for the repeating container element (e.g., the <div> or <li> that encloses a single product's information).
2. **Name the Collection:** Give each collection a descriptive name (e.g., "Products", "Search Results", "Featured Articles").
3. **Extract Data Points:** Within each repeating element, identify the individual pieces of data that can be extracted. For each one provide a clear, user-friendly "label" (e.g., "Product Name", "Price"), a precise CSS "selector" relative to the repeating element, and, only when an attribute value is wanted (like an image's src or a link's href), an "attribute". When "attribute" is omitted, text content is extracted.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object.

The JSON object must have this shape:
{
  "collections": [
    {
      "collectionName": "",
      "repeatingElementSelector": "",
      "dataPoints": [
        {"label": "", "selector": "", "attribute": ""}
      ]
    }
  ]
}

Omit the "attribute" key for text-content data points. Order collections by relevance, most prominent first.

Now, analyze the following DOM content and provide your suggestions.

` + domContent
}
