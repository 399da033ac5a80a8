package repository

import (
	"context"
	"errors"
	"fmt"

	model "smart-deals-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names within the marketplace database.
const (
	usersCollection    = "users"
	productsCollection = "products"
	bidsCollection     = "bids"
)

// MongoRepo is the MongoDB-backed implementation of MarketDB.
type MongoRepo struct {
	users    *mongo.Collection
	products *mongo.Collection
	bids     *mongo.Collection
}

// NewMongoRepo creates a MongoRepo over the given database handle.
func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		users:    db.Collection(usersCollection),
		products: db.Collection(productsCollection),
		bids:     db.Collection(bidsCollection),
	}
}

// FindUserByEmail returns the user registered under email, or nil.
func (r *MongoRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return &user, nil
}

func (r *MongoRepo) InsertUser(ctx context.Context, user model.User) (*InsertResult, error) {
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user %s: %w", user.Email, err)
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// ListProducts returns products matching filter, newest first.
func (r *MongoRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	cursor, err := r.products.Find(ctx, productCriteria(filter), productFindOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// FindProductByID resolves both native and opaque-string identifiers.
func (r *MongoRepo) FindProductByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.products.FindOne(ctx, idCriteria(id)).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

// DistinctCategories returns the raw distinct category values; cleaning is
// the service layer's concern.
func (r *MongoRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.products.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MongoRepo) InsertProduct(ctx context.Context, product model.Product) (*InsertResult, error) {
	res, err := r.products.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// UpdateProductByID applies a partial-field replacement to one product.
func (r *MongoRepo) UpdateProductByID(ctx context.Context, id string, fields map[string]any) (*UpdateResult, error) {
	res, err := r.products.UpdateOne(ctx, idCriteria(id), bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (r *MongoRepo) DeleteProductByID(ctx context.Context, id string) (*DeleteResult, error) {
	res, err := r.products.DeleteOne(ctx, idCriteria(id))
	if err != nil {
		return nil, fmt.Errorf("delete product %s: %w", id, err)
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// ListBids returns bids matching filter, highest price first when requested.
func (r *MongoRepo) ListBids(ctx context.Context, filter BidFilter) ([]model.Bid, error) {
	cursor, err := r.bids.Find(ctx, bidCriteria(filter), bidFindOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	var bids []model.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("decode bids: %w", err)
	}
	return bids, nil
}

func (r *MongoRepo) FindBidByID(ctx context.Context, id string) (*model.Bid, error) {
	var bid model.Bid
	err := r.bids.FindOne(ctx, idCriteria(id)).Decode(&bid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find bid %s: %w", id, err)
	}
	return &bid, nil
}

func (r *MongoRepo) InsertBid(ctx context.Context, bid model.Bid) (*InsertResult, error) {
	res, err := r.bids.InsertOne(ctx, bid)
	if err != nil {
		return nil, fmt.Errorf("insert bid: %w", err)
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoRepo) DeleteBidByID(ctx context.Context, id string) (*DeleteResult, error) {
	res, err := r.bids.DeleteOne(ctx, idCriteria(id))
	if err != nil {
		return nil, fmt.Errorf("delete bid %s: %w", id, err)
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
