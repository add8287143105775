// AngelaMos | 2026
// entity.go

package booking

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "Pending"
	StatusProgress  = "Progress"
	StatusCompleted = "Completed"

	// FilterAll lists every booking regardless of status.
	FilterAll = "All"
)

// Booking copies the book and provider details at request time. Status is
// free text; callers drive the transitions.
type Booking struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"          json:"_id"`
	BookID             string             `bson:"book_id"                json:"book_id"`
	BookName           string             `bson:"book_name"              json:"book_name"`
	BookImage          string             `bson:"book_image"             json:"book_image"`
	UserEmail          string             `bson:"user_email"             json:"user_email"`
	UserName           string             `bson:"user_name"              json:"user_name"`
	ProviderEmail      string             `bson:"provider_email"         json:"provider_email"`
	ProviderName       string             `bson:"provider_name"          json:"provider_name"`
	ProviderImage      string             `bson:"provider_image"         json:"provider_image"`
	TakingDate         string             `bson:"taking_date"            json:"taking_date"`
	SpecialInstruction string             `bson:"special_instruction"    json:"special_instruction"`
	Status             string             `bson:"status"                 json:"status"`
	CompletedAt        string             `bson:"completed_at,omitempty" json:"completed_at,omitempty"`

	Extra bson.M `bson:",inline" json:"-"`
}
