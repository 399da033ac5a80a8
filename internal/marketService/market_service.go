package market

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"smart-deals-server/internal/auth"
	"smart-deals-server/internal/marketerrors"
	"smart-deals-server/internal/models"
	"smart-deals-server/internal/repository"
)

// latestProductsLimit caps the "latest" listing.
const latestProductsLimit = 6

// MarketService defines the business logic for the deals marketplace.
type MarketService struct {
	repo repository.MarketDB
}

// NewMarketService creates a new MarketService instance.
func NewMarketService(repo repository.MarketDB) *MarketService {
	return &MarketService{
		repo: repo,
	}
}

// RegisterOutcome reports whether registration inserted a new user or
// found an existing one.
type RegisterOutcome struct {
	Existing bool
	Result   *repository.InsertResult
}

// RegisterUser inserts the user when the email is unseen, otherwise
// reports the existing registration. The existence check and the insert
// are independent operations; a race between two identical registrations
// can duplicate, which is accepted.
func (s *MarketService) RegisterUser(ctx context.Context, user models.User) (RegisterOutcome, error) {
	if user.Email == "" {
		return RegisterOutcome{}, fmt.Errorf("service: %w - missing email", marketerrors.ErrInvalidInput)
	}

	existing, err := s.repo.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return RegisterOutcome{}, fmt.Errorf("service: failed to check user %s: %w", user.Email, err)
	}
	if existing != nil {
		return RegisterOutcome{Existing: true}, nil
	}

	res, err := s.repo.InsertUser(ctx, user)
	if err != nil {
		return RegisterOutcome{}, fmt.Errorf("service: failed to register user %s: %w", user.Email, err)
	}
	return RegisterOutcome{Result: res}, nil
}

// ListProducts returns products newest first, optionally scoped to an owner email.
func (s *MarketService) ListProducts(ctx context.Context, email string) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, repository.ProductFilter{Email: email})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// LatestProducts returns the newest products, capped at 6.
func (s *MarketService) LatestProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, repository.ProductFilter{Limit: latestProductsLimit})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list latest products: %w", err)
	}
	return products, nil
}

// GetProduct fetches one product by identifier, nil when nothing matches.
func (s *MarketService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", marketerrors.ErrInvalidInput)
	}
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get product %s: %w", id, err)
	}
	return product, nil
}

// Categories returns the distinct product categories, cleaned: empties
// dropped, whitespace trimmed, first-seen de-duplication, byte-wise
// lexicographic order.
func (s *MarketService) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return cleanCategories(raw), nil
}

func cleanCategories(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	categories := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// CreateProduct stores a new product. A missing creation time is stamped
// here so the newest-first sort always has a value to order on.
func (s *MarketService) CreateProduct(ctx context.Context, product models.Product) (*repository.InsertResult, error) {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	res, err := s.repo.InsertProduct(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create product: %w", err)
	}
	return res, nil
}

// UpdateProduct applies a partial-field replacement by identifier.
func (s *MarketService) UpdateProduct(ctx context.Context, id string, fields map[string]any) (*repository.UpdateResult, error) {
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", marketerrors.ErrInvalidInput)
	}
	res, err := s.repo.UpdateProductByID(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update product %s: %w", id, err)
	}
	return res, nil
}

// DeleteProduct removes one product by identifier.
func (s *MarketService) DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error) {
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", marketerrors.ErrInvalidInput)
	}
	res, err := s.repo.DeleteProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to delete product %s: %w", id, err)
	}
	return res, nil
}

// ListBids returns bids, optionally scoped to a buyer email.
func (s *MarketService) ListBids(ctx context.Context, buyerEmail string) ([]models.Bid, error) {
	bids, err := s.repo.ListBids(ctx, repository.BidFilter{BuyerEmail: buyerEmail})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}
	return bids, nil
}

// GetBid fetches one bid by identifier, nil when nothing matches.
func (s *MarketService) GetBid(ctx context.Context, id string) (*models.Bid, error) {
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty bid ID", marketerrors.ErrInvalidInput)
	}
	bid, err := s.repo.FindBidByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bid %s: %w", id, err)
	}
	return bid, nil
}

// CreateBid stores a new bid. The route is open: no binding between the
// submitted buyer email and any verified identity is enforced.
func (s *MarketService) CreateBid(ctx context.Context, bid models.Bid) (*repository.InsertResult, error) {
	res, err := s.repo.InsertBid(ctx, bid)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create bid: %w", err)
	}
	return res, nil
}

// DeleteBid removes one bid by identifier.
func (s *MarketService) DeleteBid(ctx context.Context, id string) (*repository.DeleteResult, error) {
	if id == "" {
		return nil, fmt.Errorf("service: %w - empty bid ID", marketerrors.ErrInvalidInput)
	}
	res, err := s.repo.DeleteBidByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to delete bid %s: %w", id, err)
	}
	return res, nil
}

// MyBids returns the caller's bids enriched with product fields. The
// ownership guard runs first: a requested scope that is not the caller's
// own is rejected. Each bid's product is looked up independently; a bid
// whose reference no longer resolves is returned with null product fields.
func (s *MarketService) MyBids(ctx context.Context, requestedEmail string, caller auth.Identity) ([]models.EnrichedBid, error) {
	if err := auth.AuthorizeOwner(requestedEmail, caller); err != nil {
		return nil, err
	}

	bids, err := s.repo.ListBids(ctx, repository.BidFilter{BuyerEmail: requestedEmail})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for %s: %w", requestedEmail, err)
	}

	enriched := make([]models.EnrichedBid, 0, len(bids))
	for _, bid := range bids {
		var product *models.Product
		if bid.Product != "" {
			product, err = s.repo.FindProductByID(ctx, bid.Product)
			if err != nil {
				return nil, fmt.Errorf("service: failed to resolve product for bid: %w", err)
			}
		}
		enriched = append(enriched, models.Enrich(bid, product))
	}
	return enriched, nil
}

// BidsForProduct returns all bids on a product, highest price first,
// enriched with the product's fields. An unresolvable product yields
// bids with null product fields rather than an error.
func (s *MarketService) BidsForProduct(ctx context.Context, productID string) ([]models.EnrichedBid, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", marketerrors.ErrInvalidInput)
	}

	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve product %s: %w", productID, err)
	}

	bids, err := s.repo.ListBids(ctx, repository.BidFilter{ProductID: productID, ByPriceDesc: true})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for product %s: %w", productID, err)
	}

	enriched := make([]models.EnrichedBid, 0, len(bids))
	for _, bid := range bids {
		enriched = append(enriched, models.Enrich(bid, product))
	}
	return enriched, nil
}
