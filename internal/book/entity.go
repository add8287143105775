// AngelaMos | 2026
// entity.go

package book

import (
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
)

// AddedTimeLayout is the human readable timestamp stored in added_time.
// Monthly stats group on its leading month name.
const AddedTimeLayout = "January 2, 2006 3:04 PM"

type Book struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"         json:"_id"`
	BookName         string             `bson:"book_name"             json:"book_name"`
	BookImage        string             `bson:"book_image"            json:"book_image"`
	Description      string             `bson:"description"           json:"description"`
	ProviderEmail    string             `bson:"provider_email"        json:"provider_email"`
	ProviderName     string             `bson:"provider_name"         json:"provider_name"`
	ProviderImage    string             `bson:"provider_image"        json:"provider_image"`
	ProviderLocation string             `bson:"provider_location"     json:"provider_location"`
	ProviderPhone    string             `bson:"provider_phone"        json:"provider_phone"`
	BookStatus       string             `bson:"book_status"           json:"book_status"`
	AddedTime        string             `bson:"added_time"            json:"added_time"`
	UserName         string             `bson:"user_name,omitempty"   json:"user_name,omitempty"`
	UserReview       string             `bson:"user_review,omitempty" json:"user_review,omitempty"`

	// Extra holds submitted fields outside the catalog schema.
	Extra bson.M `bson:",inline" json:"-"`
}

// NormalizeStatus maps any casing of available/unavailable onto the stored
// form. ok is false for anything else.
func NormalizeStatus(status string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "available":
		return StatusAvailable, true
	case "unavailable":
		return StatusUnavailable, true
	default:
		return "", false
	}
}

// Update holds the whitelisted mutable fields. Nil fields are left as is.
type Update struct {
	BookName         *string
	BookImage        *string
	ProviderPhone    *string
	ProviderLocation *string
	Description      *string
	BookStatus       *string
}

func (u Update) IsEmpty() bool {
	return u.BookName == nil &&
		u.BookImage == nil &&
		u.ProviderPhone == nil &&
		u.ProviderLocation == nil &&
		u.Description == nil &&
		u.BookStatus == nil
}

type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// Skip saturates instead of wrapping for pages past the end.
func (p ListParams) Skip() int64 {
	page, limit := int64(p.Page-1), int64(p.Limit)
	if page <= 0 || limit <= 0 {
		return 0
	}
	if page > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return page * limit
}
