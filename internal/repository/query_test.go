package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Test ParseDocumentID
func TestParseDocumentID(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()

	tests := []struct {
		name       string
		id         string
		wantNative bool
		wantValue  any
	}{
		{name: "native_hex", id: oid.Hex(), wantNative: true, wantValue: oid},
		{name: "legacy_string", id: "legacy-product-1", wantNative: false, wantValue: "legacy-product-1"},
		{name: "too_short_hex", id: "abcdef", wantNative: false, wantValue: "abcdef"},
		{name: "right_length_not_hex", id: "zzzzzzzzzzzzzzzzzzzzzzzz", wantNative: false, wantValue: "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{name: "empty", id: "", wantNative: false, wantValue: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parsed := ParseDocumentID(tc.id)
			require.Equal(t, tc.wantNative, parsed.IsNative())
			require.Equal(t, tc.wantValue, parsed.Value())
		})
	}
}

func TestIDCriteria(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	require.Equal(t, bson.M{"_id": oid}, idCriteria(oid.Hex()))
	require.Equal(t, bson.M{"_id": "plain-key"}, idCriteria("plain-key"))
}

func TestProductCriteria(t *testing.T) {
	t.Parallel()

	require.Equal(t, bson.M{}, productCriteria(ProductFilter{}))
	require.Equal(t, bson.M{"email": "a@x.com"}, productCriteria(ProductFilter{Email: "a@x.com"}))
}

func TestProductFindOptions(t *testing.T) {
	t.Parallel()

	opts := productFindOptions(ProductFilter{})
	require.Equal(t, bson.D{{Key: "created_at", Value: -1}}, opts.Sort)
	require.Nil(t, opts.Limit)

	opts = productFindOptions(ProductFilter{Limit: 6})
	require.NotNil(t, opts.Limit)
	require.Equal(t, int64(6), *opts.Limit)
}

func TestBidCriteria(t *testing.T) {
	t.Parallel()

	require.Equal(t, bson.M{}, bidCriteria(BidFilter{}))
	require.Equal(t, bson.M{"buyer_email": "b@x.com"}, bidCriteria(BidFilter{BuyerEmail: "b@x.com"}))
	require.Equal(t, bson.M{"product": "prod-1"}, bidCriteria(BidFilter{ProductID: "prod-1"}))
}

func TestBidFindOptions(t *testing.T) {
	t.Parallel()

	require.Nil(t, bidFindOptions(BidFilter{}).Sort)
	require.Equal(t, bson.D{{Key: "bid_price", Value: -1}}, bidFindOptions(BidFilter{ByPriceDesc: true}).Sort)
}
