package main

import (
	"context"
	"os"
	"time"

	"smart-deals-server/internal/auth"
	"smart-deals-server/internal/config"
	market "smart-deals-server/internal/marketService"
	"smart-deals-server/internal/repository"
	"smart-deals-server/internal/server"
	"smart-deals-server/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}

	client, err := connectMongo(cfg.MongoURI)
	if err != nil {
		utils.Fatal("Failed to connect to MongoDB", map[string]any{"error": err.Error()})
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			utils.Error("Failed to disconnect from MongoDB", map[string]any{"error": err.Error()})
		}
	}()

	repo := repository.NewMongoRepo(client.Database(cfg.DBName))
	marketSvc := market.NewMarketService(repo)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	verifier, err := buildVerifier(cfg, tokens)
	if err != nil {
		utils.Fatal("Failed to initialize credential verifier", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(marketSvc, tokens, verifier)

	utils.Info("Smart Deals Server listening", map[string]any{
		"url":      cfg.DisplayURL(),
		"strategy": cfg.AuthStrategy,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Error("Failed to start server", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// connectMongo dials the cluster with Stable API v1 options.
func connectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	return mongo.Connect(ctx, opts)
}

// buildVerifier selects the configured credential-verification strategy.
// The self-issued TokenService doubles as a verifier; the federated
// strategy delegates to Firebase.
func buildVerifier(cfg *config.Config, tokens *auth.TokenService) (auth.CredentialVerifier, error) {
	if cfg.AuthStrategy == config.StrategyJWT {
		return tokens, nil
	}
	return auth.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentials)
}
