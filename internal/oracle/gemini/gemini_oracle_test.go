package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harvester/internal/config"
	"harvester/internal/oracle"
	"harvester/internal/oracle/gemini"
	"harvester/internal/port"
)

func newTestOracle(serverURL string) *gemini.Oracle {
	cfg := &config.OracleProviderConfig{
		Provider:     "gemini",
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-1.5-flash",
		TimeoutSecs:  30,
	}
	return gemini.NewOracleWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestSuggest_Success(t *testing.T) {
	llmJSON := `{"collections":[{"collectionName":"Products","repeatingElementSelector":"li.item","dataPoints":[{"label":"Name","selector":"span.name"},{"label":"Image","selector":"img","attribute":"src"}]}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 1)
		textPart := parts[0].(map[string]interface{})
		assert.Contains(t, textPart["text"], "expert web scraper")
		assert.Contains(t, textPart["text"], "<li class=\"item\">")

		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse(llmJSON))
	}))
	defer server.Close()

	o := newTestOracle(server.URL)
	out, err := o.Suggest(context.Background(), port.SuggestInput{
		DOMContent: `<ul><li class="item"><span class="name">A</span></li></ul>`,
	})
	require.NoError(t, err)

	require.Len(t, out.Collections, 1)
	coll := out.Collections[0]
	assert.Equal(t, "Products", coll.CollectionName)
	assert.Equal(t, "li.item", coll.RepeatingElementSelector)
	require.Len(t, coll.DataPoints, 2)
	assert.Equal(t, "Name", coll.DataPoints[0].Label)
	assert.Equal(t, "", coll.DataPoints[0].Attribute)
	assert.Equal(t, "src", coll.DataPoints[1].Attribute)
	assert.Equal(t, "gemini-1.5-flash", out.ModelUsed)
}

func TestSuggest_PerRequestKeyOverridesConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caller-key", r.Header.Get("x-goog-api-key"))
		_ = json.NewEncoder(w).Encode(successResponse(`{"collections":[]}`))
	}))
	defer server.Close()

	o := newTestOracle(server.URL)
	out, err := o.Suggest(context.Background(), port.SuggestInput{DOMContent: "<p/>", APIKey: "caller-key"})
	require.NoError(t, err)
	assert.Empty(t, out.Collections)
}

func TestSuggest_MissingKey(t *testing.T) {
	cfg := &config.OracleProviderConfig{Provider: "gemini"}
	o := gemini.NewOracleWithEndpoint(cfg, "http://localhost:1")

	_, err := o.Suggest(context.Background(), port.SuggestInput{DOMContent: "<p/>"})
	var credErr *oracle.CredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "gemini", credErr.Provider)
}

func TestSuggest_InvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"status":"INVALID_ARGUMENT","message":"API key not valid. Please pass a valid API key.","reason":"API_KEY_INVALID"}}`))
	}))
	defer server.Close()

	o := newTestOracle(server.URL)
	_, err := o.Suggest(context.Background(), port.SuggestInput{DOMContent: "<p/>"})

	var credErr *oracle.CredentialError
	require.ErrorAs(t, err, &credErr)
}

func TestSuggest_QuotaExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED","message":"You exceeded your current quota."}}`))
	}))
	defer server.Close()

	o := newTestOracle(server.URL)
	_, err := o.Suggest(context.Background(), port.SuggestInput{DOMContent: "<p/>"})

	var quotaErr *oracle.QuotaError
	require.ErrorAs(t, err, &quotaErr)
}

func TestSuggest_MalformedLLMOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(successResponse("here are your collections: ..."))
	}))
	defer server.Close()

	o := newTestOracle(server.URL)
	_, err := o.Suggest(context.Background(), port.SuggestInput{DOMContent: "<p/>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing LLM JSON output")

	var credErr *oracle.CredentialError
	assert.False(t, errors.As(err, &credErr))
}

func TestSuggest_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	o := newTestOracle(server.URL)
	_, err := o.Suggest(context.Background(), port.SuggestInput{DOMContent: "<p/>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
