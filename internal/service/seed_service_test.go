package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/cookfolio-backend/internal/repository"
)

func TestSeed_FillsEmptyStore(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	result, err := NewSeedService(store, 1).Seed(ctx)

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, len(seedPortfolios), result.Portfolios)
	assert.Equal(t, len(seedCaseStudies), result.CaseStudies)

	portfolios, err := store.ListPortfolios(ctx, repository.PortfolioFilter{})
	require.NoError(t, err)
	require.Len(t, portfolios, len(seedPortfolios))
	for _, p := range portfolios {
		assert.GreaterOrEqual(t, p.Views, int64(seedViewsMin))
		assert.Less(t, p.Views, int64(seedViewsMin+seedViewsSpread))
	}
	for i := 1; i < len(portfolios); i++ {
		assert.GreaterOrEqual(t, portfolios[i-1].Views, portfolios[i].Views)
	}
}

func TestSeed_SameSeedSameViews(t *testing.T) {
	ctx := context.Background()
	a, b := repository.NewMemoryStore(), repository.NewMemoryStore()

	_, err := NewSeedService(a, 99).Seed(ctx)
	require.NoError(t, err)
	_, err = NewSeedService(b, 99).Seed(ctx)
	require.NoError(t, err)

	pa, _ := a.GetPortfolio(ctx, 1)
	pb, _ := b.GetPortfolio(ctx, 1)
	assert.Equal(t, pa.Views, pb.Views)
}

func TestSeed_SkipsWhenCatalogExists(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	_, err := store.CreatePortfolio(ctx, validNewPortfolio())
	require.NoError(t, err)

	result, err := NewSeedService(store, 1).Seed(ctx)

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	count, _ := store.CountPortfolios(ctx)
	assert.Equal(t, 1, count)
}
