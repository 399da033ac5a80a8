package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentID is a tagged identifier variant. Records created by the store
// carry native ObjectID keys; records imported before that carry plain
// string keys. Both forms must keep resolving, so the format is decided by
// a hex-validity test at parse time, never by coercion.
type DocumentID struct {
	native   primitive.ObjectID
	opaque   string
	isNative bool
}

// ParseDocumentID classifies an identifier string as native or opaque.
func ParseDocumentID(id string) DocumentID {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return DocumentID{native: oid, isNative: true}
	}
	return DocumentID{opaque: id}
}

// IsNative reports whether the identifier is in the store's native format.
func (d DocumentID) IsNative() bool {
	return d.isNative
}

// Value returns the identifier in the form used for an exact _id match.
func (d DocumentID) Value() any {
	if d.isNative {
		return d.native
	}
	return d.opaque
}

// idCriteria builds an exact-match _id selection for either identifier form.
func idCriteria(id string) bson.M {
	return bson.M{"_id": ParseDocumentID(id).Value()}
}

func productCriteria(filter ProductFilter) bson.M {
	criteria := bson.M{}
	if filter.Email != "" {
		criteria["email"] = filter.Email
	}
	return criteria
}

// productFindOptions sorts listings newest-first and applies the result cap.
func productFindOptions(filter ProductFilter) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	return opts
}

func bidCriteria(filter BidFilter) bson.M {
	criteria := bson.M{}
	if filter.BuyerEmail != "" {
		criteria["buyer_email"] = filter.BuyerEmail
	}
	if filter.ProductID != "" {
		criteria["product"] = filter.ProductID
	}
	return criteria
}

func bidFindOptions(filter BidFilter) *options.FindOptions {
	opts := options.Find()
	if filter.ByPriceDesc {
		opts.SetSort(bson.D{{Key: "bid_price", Value: -1}})
	}
	return opts
}
