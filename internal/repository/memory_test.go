package repository

import (
	"context"
	"testing"
	"time"

	model "smart-deals-server/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Product
func newProduct(id any, email, title, category string, createdAt time.Time) model.Product {
	return model.Product{
		ID:        id,
		Email:     email,
		Title:     title,
		Category:  category,
		PriceMin:  100,
		PriceMax:  200,
		CreatedAt: createdAt,
	}
}

func TestMemoryRepo_Users(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	found, err := repo.FindUserByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	require.Nil(t, found)

	res, err := repo.InsertUser(ctx, model.User{Email: "u@x.com", Name: "U"})
	require.NoError(t, err)
	require.True(t, res.Acknowledged)
	require.NotEmpty(t, res.InsertedID)

	found, err = repo.FindUserByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "U", found.Name)
}

func TestMemoryRepo_ListProducts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		email := "a@x.com"
		if i%2 == 1 {
			email = "b@x.com"
		}
		_, err := repo.InsertProduct(ctx, newProduct(nil, email, "p", "Cat", base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	all, err := repo.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 8)
	for i := 1; i < len(all); i++ {
		require.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "expected newest-first order")
	}

	owned, err := repo.ListProducts(ctx, ProductFilter{Email: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, owned, 4)

	capped, err := repo.ListProducts(ctx, ProductFilter{Limit: 6})
	require.NoError(t, err)
	require.Len(t, capped, 6)
}

func TestMemoryRepo_FindProductByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	_, err := repo.InsertProduct(ctx, newProduct("legacy-1", "a@x.com", "Legacy", "Cat", time.Now()))
	require.NoError(t, err)

	found, err := repo.FindProductByID(ctx, "legacy-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "Legacy", found.Title)

	missing, err := repo.FindProductByID(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestMemoryRepo_UpdateProductByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	product := newProduct("p1", "a@x.com", "Old title", "Cat", time.Now().UTC().Truncate(time.Second))
	product.Extra = map[string]any{"condition": "used"}
	_, err := repo.InsertProduct(ctx, product)
	require.NoError(t, err)

	res, err := repo.UpdateProductByID(ctx, "p1", map[string]any{"title": "New title", "warranty": "1y"})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.MatchedCount)
	require.Equal(t, int64(1), res.ModifiedCount)

	updated, err := repo.FindProductByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "New title", updated.Title)
	require.Equal(t, "used", updated.Extra["condition"], "untouched extra fields survive a partial update")
	require.Equal(t, "1y", updated.Extra["warranty"])

	// unmatched identifier: acknowledged, zero counts
	res, err = repo.UpdateProductByID(ctx, "missing", map[string]any{"title": "x"})
	require.NoError(t, err)
	require.Zero(t, res.MatchedCount)
	require.Zero(t, res.ModifiedCount)
}

func TestMemoryRepo_DeleteProductByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	_, err := repo.InsertProduct(ctx, newProduct("p1", "a@x.com", "T", "Cat", time.Now()))
	require.NoError(t, err)

	res, err := repo.DeleteProductByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, int64(1), res.DeletedCount)

	res, err = repo.DeleteProductByID(ctx, "p1")
	require.NoError(t, err)
	require.Zero(t, res.DeletedCount)
}

func TestMemoryRepo_DistinctCategories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now()

	for _, category := range []string{"Electronics", "Books", "Electronics", ""} {
		_, err := repo.InsertProduct(ctx, newProduct(nil, "a@x.com", "p", category, now))
		require.NoError(t, err)
	}

	categories, err := repo.DistinctCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Electronics", "Books", ""}, categories)
}

func TestMemoryRepo_Bids(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	bids := []model.Bid{
		{ID: "b1", BuyerEmail: "a@x.com", Product: "p1", BidPrice: 50},
		{ID: "b2", BuyerEmail: "b@x.com", Product: "p1", BidPrice: 150},
		{ID: "b3", BuyerEmail: "a@x.com", Product: "p2", BidPrice: 100},
	}
	for _, b := range bids {
		_, err := repo.InsertBid(ctx, b)
		require.NoError(t, err)
	}

	byBuyer, err := repo.ListBids(ctx, BidFilter{BuyerEmail: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, byBuyer, 2)

	byProduct, err := repo.ListBids(ctx, BidFilter{ProductID: "p1", ByPriceDesc: true})
	require.NoError(t, err)
	require.Len(t, byProduct, 2)
	require.Equal(t, 150.0, byProduct[0].BidPrice)
	require.Equal(t, 50.0, byProduct[1].BidPrice)

	found, err := repo.FindBidByID(ctx, "b3")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "p2", found.Product)

	res, err := repo.DeleteBidByID(ctx, "b3")
	require.NoError(t, err)
	require.Equal(t, int64(1), res.DeletedCount)

	gone, err := repo.FindBidByID(ctx, "b3")
	require.NoError(t, err)
	require.Nil(t, gone)
}
