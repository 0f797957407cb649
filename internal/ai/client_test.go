package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

// fakeCompletionServer отвечает content в формате chat/completions и запоминает последний запрос.
type fakeCompletionServer struct {
	*httptest.Server
	calls    atomic.Int32
	lastBody atomic.Value
}

func newFakeCompletionServer(t *testing.T, status int, content string) *fakeCompletionServer {
	t.Helper()

	fake := &fakeCompletionServer{}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.calls.Add(1)

		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		fake.lastBody.Store(body)

		if r.URL.Path != "/chat/completions" || r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(fake.Close)
	return fake
}

func (f *fakeCompletionServer) body() map[string]any {
	body, _ := f.lastBody.Load().(map[string]any)
	return body
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:         baseURL,
		APIKey:          "test-key",
		Model:           "gpt-4o",
		Timeout:         2 * time.Second,
		BreakerFailures: 2,
		BreakerCooldown: time.Minute,
	})
}

func testPortfolios() []models.Portfolio {
	return []models.Portfolio{
		{ID: 1, Title: "Artisan Sourdough Journey", Category: "Baking", SkillLevel: "Intermediate", Techniques: []string{"Fermentation"}},
		{ID: 2, Title: "Nonna's Pasta Secrets", Category: "Italian", Cuisine: models.StringPtr("Italian"), SkillLevel: "Beginner"},
	}
}

func TestGenerateRecommendations_ParsesAndTruncates(t *testing.T) {
	content := `{"recommendations":[
		{"portfolioId":2,"title":"Pasta","description":"d","matchScore":91.6,"reasoning":"r"},
		{"portfolioId":"1","title":"Bread","description":"d","matchScore":"140","reasoning":"r"},
		{"portfolioId":3,"title":"Wok","description":"d","matchScore":-5,"reasoning":"r"},
		{"portfolioId":4,"title":"Extra","description":"d","matchScore":50,"reasoning":"r"}
	]}`
	server := newFakeCompletionServer(t, http.StatusOK, content)
	client := newTestClient(server.URL)

	result := client.GenerateRecommendations(context.Background(), models.DefaultPreferences(), testPortfolios())

	recs, ok := result.Value()
	require.True(t, ok)
	require.Len(t, recs, 3)
	assert.Equal(t, int64(2), recs[0].PortfolioID)
	assert.Equal(t, 92, recs[0].MatchScore)
	assert.Equal(t, int64(1), recs[1].PortfolioID)
	assert.Equal(t, 100, recs[1].MatchScore)
	assert.Equal(t, 0, recs[2].MatchScore)

	body := server.body()
	assert.Equal(t, "gpt-4o", body["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])

	messages, _ := body["messages"].([]any)
	require.Len(t, messages, 2)
	userMsg, _ := messages[1].(map[string]any)
	prompt, _ := userMsg["content"].(string)
	assert.Contains(t, prompt, "Preferred Cuisines: Italian, Asian")
	assert.Contains(t, prompt, "Dietary Restrictions: None")
	assert.Contains(t, prompt, "Favorite Ingredients: None specified")
	assert.Contains(t, prompt, "ID: 2")
	assert.Contains(t, prompt, "Techniques: Fermentation")
	assert.Contains(t, prompt, "---")
}

func TestGenerateRecommendations_OutOfRangeNumbers(t *testing.T) {
	content := `{"recommendations":[
		{"portfolioId":1,"title":"Huge score","description":"d","matchScore":1e30,"reasoning":"r"},
		{"portfolioId":1e30,"title":"Huge id","description":"d","matchScore":90,"reasoning":"r"},
		{"portfolioId":1.7,"title":"Fractional id","description":"d","matchScore":90,"reasoning":"r"},
		{"portfolioId":0,"title":"Zero id","description":"d","matchScore":90,"reasoning":"r"},
		{"portfolioId":"2","title":"Tiny score","description":"d","matchScore":-1e30,"reasoning":"r"}
	]}`
	server := newFakeCompletionServer(t, http.StatusOK, content)
	client := newTestClient(server.URL)

	recs, ok := client.GenerateRecommendations(context.Background(), models.DefaultPreferences(), testPortfolios()).Value()

	require.True(t, ok)
	require.Len(t, recs, 2)
	assert.Equal(t, int64(1), recs[0].PortfolioID)
	assert.Equal(t, 100, recs[0].MatchScore)
	assert.Equal(t, int64(2), recs[1].PortfolioID)
	assert.Equal(t, 0, recs[1].MatchScore)
}

func TestGenerateRecommendations_InvalidContentFallsBack(t *testing.T) {
	for name, content := range map[string]string{
		"not json":     "I recommend the pasta portfolio!",
		"wrong shape":  `{"items":[]}`,
		"wrong type":   `{"recommendations":"none"}`,
		"empty string": "",
	} {
		t.Run(name, func(t *testing.T) {
			server := newFakeCompletionServer(t, http.StatusOK, content)
			client := newTestClient(server.URL)

			result := client.GenerateRecommendations(context.Background(), models.DefaultPreferences(), testPortfolios())

			recs, ok := result.Value()
			assert.False(t, ok)
			assert.True(t, result.IsFallback())
			assert.Error(t, result.Cause())
			assert.NotNil(t, recs)
			assert.Empty(t, recs)
		})
	}
}

func TestGenerateRecommendations_FencedJSON(t *testing.T) {
	content := "Here you go:\n```json\n{\"recommendations\":[{\"portfolioId\":1,\"title\":\"t\",\"description\":\"d\",\"matchScore\":80,\"reasoning\":\"r\"}]}\n```"
	server := newFakeCompletionServer(t, http.StatusOK, content)
	client := newTestClient(server.URL)

	recs, ok := client.GenerateRecommendations(context.Background(), models.DefaultPreferences(), nil).Value()

	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, 80, recs[0].MatchScore)
}

func TestGenerateRecommendations_UnreachableServiceFallsBack(t *testing.T) {
	gone := httptest.NewServer(http.NotFoundHandler())
	url := gone.URL
	gone.Close()

	client := newTestClient(url)
	result := client.GenerateRecommendations(context.Background(), models.DefaultPreferences(), testPortfolios())

	assert.True(t, result.IsFallback())
	assert.Empty(t, result.Payload())
}

func TestGenerateRecommendations_TimeoutFallsBack(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer slow.Close()

	client := NewClient(Config{BaseURL: slow.URL, APIKey: "test-key", Timeout: 100 * time.Millisecond})

	start := time.Now()
	result := client.GenerateRecommendations(context.Background(), models.DefaultPreferences(), testPortfolios())

	assert.True(t, result.IsFallback())
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestClient_MissingAPIKeySkipsNetwork(t *testing.T) {
	server := newFakeCompletionServer(t, http.StatusOK, "{}")
	client := NewClient(Config{BaseURL: server.URL})

	result := client.AnalyzeRecipe(context.Background(), "toast bread")

	assert.True(t, result.IsFallback())
	assert.ErrorIs(t, result.Cause(), ErrNotConfigured)
	assert.Equal(t, int32(0), server.calls.Load())
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	server := newFakeCompletionServer(t, http.StatusInternalServerError, "")
	client := newTestClient(server.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		assert.True(t, client.GenerateInsights(ctx, testPortfolios()[0]).IsFallback())
	}
	assert.Equal(t, "open", client.BreakerState())

	// открытый breaker не пропускает запросы к сервису
	result := client.GenerateInsights(ctx, testPortfolios()[0])
	assert.True(t, result.IsFallback())
	assert.Equal(t, int32(2), server.calls.Load())
}

func TestClient_CanceledRequestsKeepBreakerClosed(t *testing.T) {
	server := newFakeCompletionServer(t, http.StatusOK, "Keep going")
	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 3; i++ {
		result := client.GenerateInsights(ctx, testPortfolios()[0])
		assert.True(t, result.IsFallback())
		assert.ErrorIs(t, result.Cause(), context.Canceled)
	}
	assert.Equal(t, "closed", client.BreakerState())

	insights, ok := client.GenerateInsights(context.Background(), testPortfolios()[0]).Value()
	require.True(t, ok)
	assert.Equal(t, "Keep going", insights)
}

func TestGenerateInsights(t *testing.T) {
	server := newFakeCompletionServer(t, http.StatusOK, "1. Keep your starter warm.")
	client := newTestClient(server.URL)

	insights, ok := client.GenerateInsights(context.Background(), testPortfolios()[0]).Value()

	require.True(t, ok)
	assert.Equal(t, "1. Keep your starter warm.", insights)

	body := server.body()
	_, hasFormat := body["response_format"]
	assert.False(t, hasFormat)
	messages, _ := body["messages"].([]any)
	userMsg, _ := messages[1].(map[string]any)
	assert.True(t, strings.Contains(userMsg["content"].(string), "Title: Artisan Sourdough Journey"))
}

func TestGenerateInsights_EmptyContentFallsBack(t *testing.T) {
	server := newFakeCompletionServer(t, http.StatusOK, "   ")
	client := newTestClient(server.URL)

	result := client.GenerateInsights(context.Background(), testPortfolios()[0])

	assert.True(t, result.IsFallback())
	assert.Equal(t, InsightsFallback, result.Payload())
}

func TestAnalyzeRecipe_DefaultsMissingFields(t *testing.T) {
	server := newFakeCompletionServer(t, http.StatusOK, `{"difficulty":"Advanced","keyTechniques":["Braising"]}`)
	client := newTestClient(server.URL)

	analysis, ok := client.AnalyzeRecipe(context.Background(), "Braise short ribs for 4 hours").Value()

	require.True(t, ok)
	assert.Equal(t, "Advanced", analysis.Difficulty)
	assert.Equal(t, UnknownValue, analysis.EstimatedTime)
	assert.Equal(t, []string{"Braising"}, analysis.KeyTechniques)
	assert.NotNil(t, analysis.Suggestions)
	assert.Empty(t, analysis.Suggestions)
}

func TestAnalyzeRecipe_InvalidContentFallsBack(t *testing.T) {
	server := newFakeCompletionServer(t, http.StatusOK, "this is not json")
	client := newTestClient(server.URL)

	result := client.AnalyzeRecipe(context.Background(), "Boil an egg")

	assert.True(t, result.IsFallback())
	assert.Equal(t, DefaultRecipeAnalysis(), result.Payload())
}
