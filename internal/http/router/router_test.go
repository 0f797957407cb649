package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/cookfolio-backend/internal/ai"
	"github.com/ignatzorin/cookfolio-backend/internal/config"
	"github.com/ignatzorin/cookfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/service"
)

type testEnv struct {
	engine *gin.Engine
	store  *repository.MemoryStore
}

// newTestEnv собирает роутер поверх засеянного MemoryStore и сервиса генерации по адресу aiURL.
func newTestEnv(t *testing.T, aiURL string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	_, err := service.NewSeedService(store, 7).Seed(context.Background())
	require.NoError(t, err)

	aiClient := ai.NewClient(ai.Config{
		BaseURL:         aiURL,
		APIKey:          "test-key",
		Model:           "gpt-4o",
		Timeout:         2 * time.Second,
		BreakerFailures: 5,
		BreakerCooldown: time.Minute,
	})

	cfg := &config.Config{
		Env:             config.EnvDevelopment,
		AllowedOrigins:  []string{"http://localhost:5173"},
		RateLimitLimit:  100,
		RateLimitPeriod: time.Minute,
		MetricsEnabled:  true,
	}

	engine := SetupRouter(
		cfg,
		handlers.NewPortfolioHandler(service.NewPortfolioService(store)),
		handlers.NewCaseStudyHandler(service.NewCaseStudyService(store)),
		handlers.NewPreferencesHandler(service.NewPreferencesService(store)),
		handlers.NewAIHandler(service.NewRecommendationService(store, aiClient)),
		handlers.NewUserHandler(service.NewUserService(store)),
		handlers.NewHealthHandler(store, aiClient),
	)
	return &testEnv{engine: engine, store: store}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// unreachableURL возвращает адрес, на котором никто не слушает.
func unreachableURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

// completionServer отдаёт фиксированный content и считает обращения.
func completionServer(t *testing.T, content string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestPortfolios_NotFound(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodGet, "/api/portfolios/999999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Portfolio not found"}`, w.Body.String())
}

func TestPortfolios_InvalidID(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodGet, "/api/portfolios/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid id"}`, w.Body.String())
}

func TestPortfolios_ViewIncrementsCount(t *testing.T) {
	env := newTestEnv(t, unreachableURL())
	before, err := env.store.GetPortfolio(context.Background(), 1)
	require.NoError(t, err)

	first := decode[models.Portfolio](t, env.do(http.MethodGet, "/api/portfolios/1", ""))
	second := decode[models.Portfolio](t, env.do(http.MethodGet, "/api/portfolios/1", ""))

	assert.Equal(t, before.Views+1, first.Views)
	assert.Equal(t, before.Views+2, second.Views)
}

func TestPortfolios_Filters(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	t.Run("skill level is exact", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/portfolios?skillLevel=Beginner", "")
		require.Equal(t, http.StatusOK, w.Code)

		items := decode[[]models.Portfolio](t, w)
		require.NotEmpty(t, items)
		for _, p := range items {
			assert.Equal(t, "Beginner", p.SkillLevel)
		}
	})

	t.Run("search matches any text field", func(t *testing.T) {
		items := decode[[]models.Portfolio](t, env.do(http.MethodGet, "/api/portfolios?search=pasta", ""))
		require.NotEmpty(t, items)
		for _, p := range items {
			haystack := strings.ToLower(p.Title + " " + p.Description + " " + strings.Join(p.Tags, " ") + " " + strings.Join(p.Techniques, " "))
			assert.Contains(t, haystack, "pasta")
		}
	})

	t.Run("sorted by views", func(t *testing.T) {
		items := decode[[]models.Portfolio](t, env.do(http.MethodGet, "/api/portfolios", ""))
		for i := 1; i < len(items); i++ {
			assert.GreaterOrEqual(t, items[i-1].Views, items[i].Views)
		}
	})

	t.Run("no match is an empty array", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/portfolios?category=nothing-like-this", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestPortfolios_Create(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodPost, "/api/portfolios", `{"title":"Ramen"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid portfolio data"}`, w.Body.String())

	body := `{"title":"Ramen","description":"Broth","category":"Asian","skillLevel":"Beginner",
		"cookName":"Mika","cookTitle":"Home Cook","cookAvatarUrl":"https://x/a.jpg","imageUrl":"https://x/r.jpg",
		"tags":["noodles"],"techniques":[],"ingredients":[],"views":900}`
	w = env.do(http.MethodPost, "/api/portfolios", body)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[map[string]any](t, w)
	assert.Equal(t, float64(0), created["views"])
	assert.Nil(t, created["cuisine"])
	assert.Contains(t, created, "story")
}

func TestCaseStudies(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	list := decode[[]models.CaseStudy](t, env.do(http.MethodGet, "/api/case-studies", ""))
	require.NotEmpty(t, list)
	assert.Equal(t, int64(1), list[0].ID)

	w := env.do(http.MethodGet, "/api/case-studies/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Case study not found"}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/case-studies", `{"title":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid case study data"}`, w.Body.String())
}

func TestPreferences_DefaultShape(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodGet, "/api/preferences/42", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"skillLevel":"Intermediate",
		"preferredCuisines":["Italian","Asian"],
		"cookingStyle":"Traditional",
		"timeAvailable":"30-60 min",
		"dietaryRestrictions":[],
		"favoriteIngredients":[]
	}`, w.Body.String())
}

func TestPreferences_Upsert(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodPost, "/api/preferences", `{"skillLevel":"Beginner"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid preferences data"}`, w.Body.String())

	first := decode[models.UserPreferences](t, env.do(http.MethodPost, "/api/preferences", `{"userId":3,"skillLevel":"Beginner","preferredCuisines":["Thai"]}`))
	second := decode[models.UserPreferences](t, env.do(http.MethodPost, "/api/preferences", `{"userId":3,"skillLevel":"Advanced"}`))
	assert.Equal(t, first.ID, second.ID)

	stored := decode[models.UserPreferences](t, env.do(http.MethodGet, "/api/preferences/3", ""))
	assert.Equal(t, "Advanced", *stored.SkillLevel)
}

func TestAnalyzeRecipe_RequiresText(t *testing.T) {
	srv, calls := completionServer(t, `{"difficulty":"Easy"}`)
	env := newTestEnv(t, srv.URL)

	for _, body := range []string{`{}`, `{"recipeText":""}`, `{"recipeText":"   "}`, `not json`} {
		w := env.do(http.MethodPost, "/api/analyze-recipe", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"message":"Recipe text is required"}`, w.Body.String(), body)
	}
	assert.Equal(t, int32(0), calls.Load())

	w := env.do(http.MethodPost, "/api/analyze-recipe", `{"recipeText":"Boil an egg for 7 minutes"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"difficulty":"Easy","estimatedTime":"Unknown","keyTechniques":[],"suggestions":[]}`, w.Body.String())
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecommendations_UnreachableServiceReturnsEmptyArray(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodGet, "/api/recommendations/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRecommendations_InvalidContentReturnsEmptyArray(t *testing.T) {
	srv, _ := completionServer(t, "Sorry, I can't help with that.")
	env := newTestEnv(t, srv.URL)

	w := env.do(http.MethodGet, "/api/recommendations/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRecommendations_PersistsAndEmbedsPortfolio(t *testing.T) {
	srv, _ := completionServer(t, `{"recommendations":[
		{"portfolioId":2,"title":"Pasta night","description":"Fresh pasta","matchScore":87,"reasoning":"Italian fan"},
		{"portfolioId":4040,"title":"Ghost","description":"Missing","matchScore":10,"reasoning":"n/a"}
	]}`)
	env := newTestEnv(t, srv.URL)

	w := env.do(http.MethodGet, "/api/recommendations/5", "")
	require.Equal(t, http.StatusOK, w.Code)

	recs := decode[[]map[string]any](t, w)
	require.Len(t, recs, 2)
	assert.Equal(t, "portfolio", recs[0]["type"])
	assert.Equal(t, float64(5), recs[0]["userId"])
	assert.Equal(t, float64(2), recs[0]["targetId"])
	assert.Equal(t, float64(87), recs[0]["matchScore"])
	portfolio, ok := recs[0]["portfolio"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), portfolio["id"])
	assert.NotContains(t, recs[1], "portfolio")

	history := decode[[]models.AiRecommendation](t, env.do(http.MethodGet, "/api/recommendations/5/history", ""))
	assert.Len(t, history, 2)
}

func TestInsights(t *testing.T) {
	srv, _ := completionServer(t, "1. Feed the starter daily.")
	env := newTestEnv(t, srv.URL)

	w := env.do(http.MethodGet, "/api/insights/999999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Portfolio not found"}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/insights/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"insights":"1. Feed the starter daily."}`, w.Body.String())
}

func TestInsights_FallbackText(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodGet, "/api/insights/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"insights":"Unable to generate insights at this time."}`, w.Body.String())
}

func TestUsers(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodPost, "/api/users", `{"username":"chef_ana","password":"pasta2024"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	user := decode[models.User](t, w)

	w = env.do(http.MethodPost, "/api/users", `{"username":"chef_ana","password":"risotto99"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/users", `{"username":"x","password":"pasta2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got := decode[models.User](t, env.do(http.MethodGet, "/api/users/"+jsonNumber(user.ID), ""))
	assert.Equal(t, "chef_ana", got.Username)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/users/99", "").Code)
}

func TestFindUserByUsername(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodPost, "/api/users", `{"username":"chef_ana","password":"pasta2024"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.User](t, w)

	w = env.do(http.MethodGet, "/api/users?username=chef_ana", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	found := decode[models.User](t, w)
	assert.Equal(t, created.ID, found.ID)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/users?username=nobody", "").Code)

	w = env.do(http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"username query parameter is required"}`, w.Body.String())
}

func TestUnknownRouteAndMethod(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, w.Body.String())

	w = env.do(http.MethodDelete, "/api/portfolios", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"message":"Method not allowed"}`, w.Body.String())
}

func TestPreflight(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	req, _ := http.NewRequest(http.MethodOptions, "/api/portfolios", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t, unreachableURL())

	w := env.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]any](t, w)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "closed", health["breaker"])

	env.do(http.MethodGet, "/api/portfolios", "")
	w = env.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cookfolio_http_requests_total")
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
