package server

import (
	"smart-deals-server/internal/auth"
	handler "smart-deals-server/services/market/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. The verifier
// guards the user-scoped routes; which strategy it is (federated or
// self-issued) is decided once at startup.
func SetupRouter(service handler.MarketServiceInterface, tokens handler.TokenIssuer, verifier auth.CredentialVerifier) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(cors.Default())          // browser clients call from another origin

	marketHandler := handler.NewMarketHandler(service, tokens)

	router.GET("/", marketHandler.HomeHandler)
	router.POST("/get-token", marketHandler.GetTokenHandler)
	router.POST("/users", marketHandler.RegisterUserHandler)
	router.GET("/latest-products", marketHandler.LatestProductsHandler)
	router.GET("/categories", marketHandler.CategoriesHandler)
	router.GET("/my-bids", RequireAuth(verifier), marketHandler.MyBidsHandler)

	products := router.Group("/products")
	{
		products.GET("", marketHandler.ListProductsHandler)
		products.GET("/:id", marketHandler.GetProductHandler)
		products.POST("", RequireAuth(verifier), marketHandler.CreateProductHandler)
		products.PATCH("/:id", marketHandler.UpdateProductHandler)
		products.DELETE("/:id", marketHandler.DeleteProductHandler)
		products.GET("/bids/:productId", RequireAuth(verifier), marketHandler.BidsForProductHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("", marketHandler.ListBidsHandler)
		bids.GET("/:id", marketHandler.GetBidHandler)
		bids.POST("", marketHandler.CreateBidHandler)
		bids.DELETE("/:id", marketHandler.DeleteBidHandler)
	}

	return router
}
