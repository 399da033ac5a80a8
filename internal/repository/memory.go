package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	model "smart-deals-server/internal/models"
	"smart-deals-server/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB.
// It backs the integration and perf tests; documents inserted without an
// identifier get a generated opaque-string one.
type MemoryRepo struct {
	mu       sync.RWMutex
	users    []model.User
	products []model.Product
	bids     []model.Bid
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// idKey normalizes a stored _id to its string lookup form.
func idKey(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *MemoryRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepo) InsertUser(ctx context.Context, user model.User) (*InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == nil {
		user.ID = utils.GenerateID()
	}
	r.users = append(r.users, user)
	return &InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (r *MemoryRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Email != "" && p.Email != filter.Email {
			continue
		}
		products = append(products, p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	if filter.Limit > 0 && int64(len(products)) > filter.Limit {
		products = products[:filter.Limit]
	}
	return products, nil
}

func (r *MemoryRepo) FindProductByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.productIndex(id); i >= 0 {
		product := r.products[i]
		return &product, nil
	}
	return nil, nil
}

func (r *MemoryRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range r.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

func (r *MemoryRepo) InsertProduct(ctx context.Context, product model.Product) (*InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == nil {
		product.ID = utils.GenerateID()
	}
	r.products = append(r.products, product)
	return &InsertResult{Acknowledged: true, InsertedID: product.ID}, nil
}

func (r *MemoryRepo) UpdateProductByID(ctx context.Context, id string, fields map[string]any) (*UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.productIndex(id)
	if i < 0 {
		return &UpdateResult{Acknowledged: true}, nil
	}

	before := r.products[i].Fields()
	merged, err := mergeProduct(r.products[i], fields)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	res := &UpdateResult{Acknowledged: true, MatchedCount: 1}
	if !reflect.DeepEqual(before, merged.Fields()) {
		r.products[i] = merged
		res.ModifiedCount = 1
	}
	return res, nil
}

func (r *MemoryRepo) DeleteProductByID(ctx context.Context, id string) (*DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.productIndex(id)
	if i < 0 {
		return &DeleteResult{Acknowledged: true}, nil
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return &DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (r *MemoryRepo) ListBids(ctx context.Context, filter BidFilter) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0, len(r.bids))
	for _, b := range r.bids {
		if filter.BuyerEmail != "" && b.BuyerEmail != filter.BuyerEmail {
			continue
		}
		if filter.ProductID != "" && b.Product != filter.ProductID {
			continue
		}
		bids = append(bids, b)
	}
	if filter.ByPriceDesc {
		sort.SliceStable(bids, func(i, j int) bool {
			return bids[i].BidPrice > bids[j].BidPrice
		})
	}
	return bids, nil
}

func (r *MemoryRepo) FindBidByID(ctx context.Context, id string) (*model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bids {
		if idKey(b.ID) == id {
			bid := b
			return &bid, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepo) InsertBid(ctx context.Context, bid model.Bid) (*InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.ID == nil {
		bid.ID = utils.GenerateID()
	}
	r.bids = append(r.bids, bid)
	return &InsertResult{Acknowledged: true, InsertedID: bid.ID}, nil
}

func (r *MemoryRepo) DeleteBidByID(ctx context.Context, id string) (*DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bids {
		if idKey(b.ID) == id {
			r.bids = append(r.bids[:i], r.bids[i+1:]...)
			return &DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{Acknowledged: true}, nil
}

// productIndex must be called with the lock held.
func (r *MemoryRepo) productIndex(id string) int {
	for i, p := range r.products {
		if idKey(p.ID) == id {
			return i
		}
	}
	return -1
}

// mergeProduct applies a partial-field replacement the way a $set does,
// routing unknown keys into the open part of the record.
func mergeProduct(p model.Product, fields map[string]any) (model.Product, error) {
	doc := p.Fields()
	for k, v := range fields {
		doc[k] = v
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return model.Product{}, err
	}
	var merged model.Product
	if err := json.Unmarshal(data, &merged); err != nil {
		return model.Product{}, err
	}
	return merged, nil
}
