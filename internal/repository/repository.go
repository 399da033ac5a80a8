package repository

import (
	"context"

	model "smart-deals-server/internal/models"
)

// ProductFilter narrows product listings. A zero filter matches everything.
type ProductFilter struct {
	Email string // owner email equality, applied when non-empty
	Limit int64  // result cap, applied when positive
}

// BidFilter narrows bid listings. A zero filter matches everything.
type BidFilter struct {
	BuyerEmail  string // buyer email equality, applied when non-empty
	ProductID   string // product reference equality, applied when non-empty
	ByPriceDesc bool   // sort by bid_price descending
}

// MarketDB defines the document storage interface for the marketplace.
// Single-document lookups return (nil, nil) when nothing matches.
type MarketDB interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	InsertUser(ctx context.Context, user model.User) (*InsertResult, error)

	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	FindProductByID(ctx context.Context, id string) (*model.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	InsertProduct(ctx context.Context, product model.Product) (*InsertResult, error)
	UpdateProductByID(ctx context.Context, id string, fields map[string]any) (*UpdateResult, error)
	DeleteProductByID(ctx context.Context, id string) (*DeleteResult, error)

	ListBids(ctx context.Context, filter BidFilter) ([]model.Bid, error)
	FindBidByID(ctx context.Context, id string) (*model.Bid, error)
	InsertBid(ctx context.Context, bid model.Bid) (*InsertResult, error)
	DeleteBidByID(ctx context.Context, id string) (*DeleteResult, error)
}

// Mutation summaries mirror the driver's acknowledged/count fields with the
// JSON keys clients already consume.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
