package models

import (
	"encoding/json"
	"time"
)

// User represents a registered marketplace account, keyed by email.
type User struct {
	ID    any            `bson:"_id,omitempty"`
	Email string         `bson:"email"`
	Name  string         `bson:"name,omitempty"`
	Photo string         `bson:"photo,omitempty"`
	Extra map[string]any `bson:",inline"`
}

// Product represents a listed deal. Clients may attach fields beyond the
// known ones; those survive storage and serialization untouched in Extra.
type Product struct {
	ID        any            `bson:"_id,omitempty"`
	Email     string         `bson:"email"`
	Title     string         `bson:"title,omitempty"`
	Image     string         `bson:"image,omitempty"`
	PriceMin  float64        `bson:"price_min"`
	PriceMax  float64        `bson:"price_max"`
	Category  string         `bson:"category,omitempty"`
	CreatedAt time.Time      `bson:"created_at"`
	Extra     map[string]any `bson:",inline"`
}

// Bid represents a buyer's offer on a product. Bid.Product holds the
// product's identifier as sent by the client; it is a weak reference,
// resolved at read time with no integrity enforcement.
type Bid struct {
	ID         any            `bson:"_id,omitempty"`
	BuyerEmail string         `bson:"buyer_email"`
	Product    string         `bson:"product,omitempty"`
	BidPrice   float64        `bson:"bid_price"`
	Extra      map[string]any `bson:",inline"`
}

// EnrichedBid is the client-facing view of a bid merged with fields from
// its referenced product. The product fields are null when the reference
// does not resolve.
type EnrichedBid struct {
	Bid             Bid
	ProductImage    *string
	ProductTitle    *string
	ProductPriceMin *float64
	ProductPriceMax *float64
}

// Enrich merges a bid with its referenced product. A nil product yields
// the four product fields as nulls rather than an error.
func Enrich(bid Bid, product *Product) EnrichedBid {
	e := EnrichedBid{Bid: bid}
	if product != nil {
		e.ProductImage = &product.Image
		e.ProductTitle = &product.Title
		e.ProductPriceMin = &product.PriceMin
		e.ProductPriceMax = &product.PriceMax
	}
	return e
}

func (e EnrichedBid) MarshalJSON() ([]byte, error) {
	m := e.Bid.Fields()
	m["product_image"] = e.ProductImage
	m["product_title"] = e.ProductTitle
	m["product_price_min"] = e.ProductPriceMin
	m["product_price_max"] = e.ProductPriceMax
	return json.Marshal(m)
}

// openMap merges extra fields with the known ones, skipping known fields
// that were never set so they do not appear on documents that lack them.
func openMap(extra map[string]any, known map[string]any) map[string]any {
	m := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		m[k] = v
	}
	for k, v := range known {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if t == "" {
				continue
			}
		case time.Time:
			if t.IsZero() {
				continue
			}
			v = t.UTC().Format(time.RFC3339)
		}
		m[k] = v
	}
	return m
}

// putUnlessParked writes a typed numeric field into the document map unless
// a mistyped raw value for the same key is already parked in the open part.
func putUnlessParked(m map[string]any, extra map[string]any, key string, value float64) {
	if _, parked := extra[key]; parked {
		return
	}
	m[key] = value
}

// takeString moves v into dst when it is a string, otherwise parks the raw
// value under key in extra so nothing the client sent is dropped.
func takeString(dst *string, v any, key string, extra map[string]any) {
	if s, ok := v.(string); ok {
		*dst = s
		return
	}
	extra[key] = v
}

func takeFloat(dst *float64, v any, key string, extra map[string]any) {
	if f, ok := v.(float64); ok {
		*dst = f
		return
	}
	extra[key] = v
}

func takeTime(dst *time.Time, v any, key string, extra map[string]any) {
	if s, ok := v.(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			*dst = t
			return
		}
	}
	extra[key] = v
}

// Fields returns the user as a flat document map.
func (u User) Fields() map[string]any {
	return openMap(u.Extra, map[string]any{
		"_id":   u.ID,
		"email": u.Email,
		"name":  u.Name,
		"photo": u.Photo,
	})
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Fields())
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = User{Extra: make(map[string]any)}
	for k, v := range raw {
		switch k {
		case "_id":
			u.ID = v
		case "email":
			takeString(&u.Email, v, k, u.Extra)
		case "name":
			takeString(&u.Name, v, k, u.Extra)
		case "photo":
			takeString(&u.Photo, v, k, u.Extra)
		default:
			u.Extra[k] = v
		}
	}
	return nil
}

// Fields returns the product as a flat document map.
func (p Product) Fields() map[string]any {
	m := openMap(p.Extra, map[string]any{
		"_id":        p.ID,
		"email":      p.Email,
		"title":      p.Title,
		"image":      p.Image,
		"category":   p.Category,
		"created_at": p.CreatedAt,
	})
	putUnlessParked(m, p.Extra, "price_min", p.PriceMin)
	putUnlessParked(m, p.Extra, "price_max", p.PriceMax)
	return m
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Fields())
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Product{Extra: make(map[string]any)}
	for k, v := range raw {
		switch k {
		case "_id":
			p.ID = v
		case "email":
			takeString(&p.Email, v, k, p.Extra)
		case "title":
			takeString(&p.Title, v, k, p.Extra)
		case "image":
			takeString(&p.Image, v, k, p.Extra)
		case "category":
			takeString(&p.Category, v, k, p.Extra)
		case "price_min":
			takeFloat(&p.PriceMin, v, k, p.Extra)
		case "price_max":
			takeFloat(&p.PriceMax, v, k, p.Extra)
		case "created_at":
			takeTime(&p.CreatedAt, v, k, p.Extra)
		default:
			p.Extra[k] = v
		}
	}
	return nil
}

// Fields returns the bid as a flat document map.
func (b Bid) Fields() map[string]any {
	m := openMap(b.Extra, map[string]any{
		"_id":         b.ID,
		"buyer_email": b.BuyerEmail,
		"product":     b.Product,
	})
	putUnlessParked(m, b.Extra, "bid_price", b.BidPrice)
	return m
}

func (b Bid) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Fields())
}

func (b *Bid) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Bid{Extra: make(map[string]any)}
	for k, v := range raw {
		switch k {
		case "_id":
			b.ID = v
		case "buyer_email":
			takeString(&b.BuyerEmail, v, k, b.Extra)
		case "product":
			takeString(&b.Product, v, k, b.Extra)
		case "bid_price":
			takeFloat(&b.BidPrice, v, k, b.Extra)
		default:
			b.Extra[k] = v
		}
	}
	return nil
}
