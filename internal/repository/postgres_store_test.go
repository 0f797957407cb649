package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/cookfolio-backend/internal/db"
	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/migrations"
)

// newTestPostgresStore подключается к TEST_DATABASE_URL и очищает таблицы.
func newTestPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан")
	}

	ctx := context.Background()
	conn, err := db.NewPostgres(ctx, dsn, 4)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(ctx, conn, migrations.FS))
	truncateAll(t, conn)

	t.Cleanup(func() { _ = conn.Close() })
	return NewPostgresStore(conn)
}

func truncateAll(t *testing.T, conn *sqlx.DB) {
	t.Helper()
	_, err := conn.Exec(`TRUNCATE users, portfolios, case_studies, user_preferences, ai_recommendations RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestPostgresStore_PortfolioViewsAndFilter(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	pasta := newPortfolioInput("Pasta Night")
	pasta.SkillLevel = "Intermediate"
	p, err := store.ImportPortfolio(ctx, pasta, 10)
	require.NoError(t, err)
	_, err = store.ImportPortfolio(ctx, newPortfolioInput("Bread"), 20)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.UpdatePortfolioViews(ctx, p.ID))
	}
	require.NoError(t, store.UpdatePortfolioViews(ctx, 999999))

	got, err := store.GetPortfolio(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(13), got.Views)
	assert.Nil(t, got.Tags)

	list, err := store.ListPortfolios(ctx, PortfolioFilter{Search: "pasta"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)

	_, err = store.GetPortfolio(ctx, 999999)
	assert.ErrorIs(t, err, ErrPortfolioNotFound)
}

func TestPostgresStore_PreferencesUpsert(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	first, err := store.UpdateUserPreferences(ctx, models.PreferencesInput{
		UserID:            models.Int64Ptr(5),
		PreferredCuisines: []string{"Thai"},
	})
	require.NoError(t, err)

	second, err := store.UpdateUserPreferences(ctx, models.PreferencesInput{
		UserID:            models.Int64Ptr(5),
		PreferredCuisines: []string{"French", "Greek"},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := store.GetUserPreferences(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"French", "Greek"}, got.PreferredCuisines)
}

func TestPostgresStore_UsersAndRecommendations(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "chef", "hash")
	require.NoError(t, err)
	_, err = store.CreateUser(ctx, "chef", "hash")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = store.CreateAiRecommendation(ctx, models.NewAiRecommendation{
		UserID:     &user.ID,
		Type:       models.RecommendationPortfolio,
		Title:      "Try sourdough",
		MatchScore: 90,
		TargetID:   models.Int64Ptr(1),
		TargetType: models.StringPtr(models.TargetPortfolio),
	})
	require.NoError(t, err)

	list, err := store.ListAiRecommendations(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 90, list[0].MatchScore)
}
