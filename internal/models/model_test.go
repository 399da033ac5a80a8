package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test that unknown fields on a product survive a decode/encode round trip
// untouched, alongside the known typed fields.
func TestProduct_OpenRecordRoundTrip(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"_id": "legacy-product-1",
		"email": "owner@x.com",
		"title": "Vintage Lens",
		"image": "https://cdn.example/lens.jpg",
		"price_min": 120,
		"price_max": 250.5,
		"category": "Photography",
		"created_at": "2025-08-20T10:30:00Z",
		"condition": "used",
		"shipping": {"region": "EU", "days": 4}
	}`)

	var product Product
	require.NoError(t, json.Unmarshal(payload, &product))

	require.Equal(t, "legacy-product-1", product.ID)
	require.Equal(t, "owner@x.com", product.Email)
	require.Equal(t, "Vintage Lens", product.Title)
	require.Equal(t, 120.0, product.PriceMin)
	require.Equal(t, 250.5, product.PriceMax)
	require.Equal(t, "Photography", product.Category)
	require.Equal(t, time.Date(2025, 8, 20, 10, 30, 0, 0, time.UTC), product.CreatedAt)
	require.Equal(t, "used", product.Extra["condition"])
	require.Equal(t, map[string]any{"region": "EU", "days": 4.0}, product.Extra["shipping"])

	encoded, err := json.Marshal(product)
	require.NoError(t, err)
	require.JSONEq(t, string(payload), string(encoded))
}

// A mistyped known field must not be silently dropped.
func TestProduct_MistypedFieldPreserved(t *testing.T) {
	t.Parallel()

	var product Product
	require.NoError(t, json.Unmarshal([]byte(`{"email":"o@x.com","price_min":"cheap"}`), &product))

	require.Zero(t, product.PriceMin)
	require.Equal(t, "cheap", product.Extra["price_min"])

	encoded, err := json.Marshal(product)
	require.NoError(t, err)
	require.JSONEq(t, `{"email":"o@x.com","price_min":"cheap","price_max":0}`, string(encoded))
}

func TestBid_OpenRecordRoundTrip(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"buyer_email": "buyer@x.com",
		"product": "prod-1",
		"bid_price": 99.5,
		"note": "please ship fast"
	}`)

	var bid Bid
	require.NoError(t, json.Unmarshal(payload, &bid))
	require.Equal(t, "buyer@x.com", bid.BuyerEmail)
	require.Equal(t, "prod-1", bid.Product)
	require.Equal(t, 99.5, bid.BidPrice)
	require.Equal(t, "please ship fast", bid.Extra["note"])

	encoded, err := json.Marshal(bid)
	require.NoError(t, err)
	require.JSONEq(t, string(payload), string(encoded))
}

func TestEnrich_WithoutProduct(t *testing.T) {
	t.Parallel()

	bid := Bid{ID: "bid-1", BuyerEmail: "b@x.com", Product: "gone", BidPrice: 10}
	enriched := Enrich(bid, nil)

	encoded, err := json.Marshal(enriched)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(encoded, &doc))

	// bid fields intact
	require.Equal(t, "b@x.com", doc["buyer_email"])
	require.Equal(t, 10.0, doc["bid_price"])

	// product fields present but null
	for _, key := range []string{"product_image", "product_title", "product_price_min", "product_price_max"} {
		require.Contains(t, doc, key)
		require.Nil(t, doc[key])
	}
}

func TestEnrich_WithProduct(t *testing.T) {
	t.Parallel()

	bid := Bid{ID: "bid-1", BuyerEmail: "b@x.com", Product: "prod-1", BidPrice: 150, Extra: map[string]any{"note": "hi"}}
	product := &Product{ID: "prod-1", Title: "Camera", Image: "img.png", PriceMin: 100, PriceMax: 200}

	encoded, err := json.Marshal(Enrich(bid, product))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(encoded, &doc))
	require.Equal(t, "Camera", doc["product_title"])
	require.Equal(t, "img.png", doc["product_image"])
	require.Equal(t, 100.0, doc["product_price_min"])
	require.Equal(t, 200.0, doc["product_price_max"])
	require.Equal(t, "hi", doc["note"])
}
