// AngelaMos | 2026
// entity.go

package subscriber

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteAllID in place of an id purges every subscriber.
const DeleteAllID = "all"

type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"  json:"_id"`
	Email        string             `bson:"email"          json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	SubscribedAt time.Time          `bson:"subscribed_at"  json:"subscribed_at"`

	// Extra keeps whatever else the signup form submitted.
	Extra bson.M `bson:",inline" json:"-"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name"  validate:"max=100"`

	Extra bson.M `json:"-"`
}
