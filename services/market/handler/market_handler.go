package handler

import (
	"context"
	"net/http"

	"smart-deals-server/internal/auth"
	market "smart-deals-server/internal/marketService"
	model "smart-deals-server/internal/models"
	"smart-deals-server/internal/repository"
	"smart-deals-server/services/market/helpers"
	"smart-deals-server/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	RegisterUser(ctx context.Context, user model.User) (market.RegisterOutcome, error)
	ListProducts(ctx context.Context, email string) ([]model.Product, error)
	LatestProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, product model.Product) (*repository.InsertResult, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]any) (*repository.UpdateResult, error)
	DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error)
	ListBids(ctx context.Context, buyerEmail string) ([]model.Bid, error)
	GetBid(ctx context.Context, id string) (*model.Bid, error)
	CreateBid(ctx context.Context, bid model.Bid) (*repository.InsertResult, error)
	DeleteBid(ctx context.Context, id string) (*repository.DeleteResult, error)
	MyBids(ctx context.Context, requestedEmail string, caller auth.Identity) ([]model.EnrichedBid, error)
	BidsForProduct(ctx context.Context, productID string) ([]model.EnrichedBid, error)
}

// TokenIssuer mints self-issued tokens for POST /get-token.
type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

type MarketHandler struct {
	service MarketServiceInterface
	tokens  TokenIssuer
}

func NewMarketHandler(service MarketServiceInterface, tokens TokenIssuer) *MarketHandler {
	return &MarketHandler{service: service, tokens: tokens}
}

// callerIdentity reads the identity the auth middleware stored.
func callerIdentity(c *gin.Context) auth.Identity {
	return auth.Identity{Email: c.GetString(auth.IdentityContextKey)}
}

// HomeHandler handles GET /
func (h *MarketHandler) HomeHandler(c *gin.Context) {
	c.String(http.StatusOK, "Smart Deals Server is running.")
}

// GetTokenHandler handles POST /get-token
func (h *MarketHandler) GetTokenHandler(c *gin.Context) {
	var claims map[string]any
	if err := c.ShouldBindJSON(&claims); err != nil {
		helpers.HandleBindError(c, "GetTokenHandler", err)
		return
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		helpers.HandleServiceError(c, "GetTokenHandler", err, nil)
		return
	}

	c.JSON(http.StatusOK, helpers.TokenResponse{Token: token})
}

// RegisterUserHandler handles POST /users
func (h *MarketHandler) RegisterUserHandler(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	outcome, err := h.service.RegisterUser(c.Request.Context(), user)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterUserHandler", err, map[string]any{"email": user.Email})
		return
	}

	if outcome.Existing {
		utils.JSONMessage(c, http.StatusOK, helpers.MsgUserExists)
		return
	}

	c.JSON(http.StatusOK, outcome.Result)
	helpers.LogSuccess("RegisterUserHandler", "user registered", map[string]any{"email": user.Email})
}

// ListProductsHandler handles GET /products
func (h *MarketHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context(), c.Query("email"))
	if err != nil {
		helpers.HandleServiceError(c, "ListProductsHandler", err, nil)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// LatestProductsHandler handles GET /latest-products
func (h *MarketHandler) LatestProductsHandler(c *gin.Context) {
	products, err := h.service.LatestProducts(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "LatestProductsHandler", err, nil)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetProductHandler handles GET /products/:id
func (h *MarketHandler) GetProductHandler(c *gin.Context) {
	product, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.HandleServiceError(c, "GetProductHandler", err, map[string]any{"id": c.Param("id")})
		return
	}
	// an unmatched identifier echoes null, same as the legacy contract
	c.JSON(http.StatusOK, product)
}

// CategoriesHandler handles GET /categories
func (h *MarketHandler) CategoriesHandler(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "CategoriesHandler", err, nil)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateProductHandler handles POST /products
func (h *MarketHandler) CreateProductHandler(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	res, err := h.service.CreateProduct(c.Request.Context(), product)
	if err != nil {
		helpers.HandleServiceError(c, "CreateProductHandler", err, map[string]any{"email": product.Email})
		return
	}

	c.JSON(http.StatusOK, res)
	helpers.LogSuccess("CreateProductHandler", "product created", map[string]any{
		"email":       product.Email,
		"inserted_id": res.InsertedID,
	})
}

// UpdateProductHandler handles PATCH /products/:id
func (h *MarketHandler) UpdateProductHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	res, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateProductHandler", err, map[string]any{"id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteProductHandler handles DELETE /products/:id
func (h *MarketHandler) DeleteProductHandler(c *gin.Context) {
	res, err := h.service.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.HandleServiceError(c, "DeleteProductHandler", err, map[string]any{"id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListBidsHandler handles GET /bids
func (h *MarketHandler) ListBidsHandler(c *gin.Context) {
	bids, err := h.service.ListBids(c.Request.Context(), c.Query("email"))
	if err != nil {
		helpers.HandleServiceError(c, "ListBidsHandler", err, nil)
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}
	c.JSON(http.StatusOK, bids)
}

// GetBidHandler handles GET /bids/:id
func (h *MarketHandler) GetBidHandler(c *gin.Context) {
	bid, err := h.service.GetBid(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.HandleServiceError(c, "GetBidHandler", err, map[string]any{"id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, bid)
}

// CreateBidHandler handles POST /bids
func (h *MarketHandler) CreateBidHandler(c *gin.Context) {
	var bid model.Bid
	if err := c.ShouldBindJSON(&bid); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}

	res, err := h.service.CreateBid(c.Request.Context(), bid)
	if err != nil {
		helpers.HandleServiceError(c, "CreateBidHandler", err, map[string]any{"buyer_email": bid.BuyerEmail})
		return
	}

	c.JSON(http.StatusOK, res)
	helpers.LogSuccess("CreateBidHandler", "bid created", map[string]any{
		"buyer_email": bid.BuyerEmail,
		"product":     bid.Product,
		"bid_price":   bid.BidPrice,
	})
}

// DeleteBidHandler handles DELETE /bids/:id
func (h *MarketHandler) DeleteBidHandler(c *gin.Context) {
	res, err := h.service.DeleteBid(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.HandleServiceError(c, "DeleteBidHandler", err, map[string]any{"id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, res)
}

// MyBidsHandler handles GET /my-bids
func (h *MarketHandler) MyBidsHandler(c *gin.Context) {
	caller := callerIdentity(c)
	bids, err := h.service.MyBids(c.Request.Context(), c.Query("email"), caller)
	if err != nil {
		helpers.HandleServiceError(c, "MyBidsHandler", err, map[string]any{
			"requested_email": c.Query("email"),
			"caller_email":    caller.Email,
		})
		return
	}
	if bids == nil {
		bids = []model.EnrichedBid{}
	}
	c.JSON(http.StatusOK, bids)
}

// BidsForProductHandler handles GET /products/bids/:productId
func (h *MarketHandler) BidsForProductHandler(c *gin.Context) {
	bids, err := h.service.BidsForProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		helpers.HandleServiceError(c, "BidsForProductHandler", err, map[string]any{"product_id": c.Param("productId")})
		return
	}
	if bids == nil {
		bids = []model.EnrichedBid{}
	}
	c.JSON(http.StatusOK, bids)
}
