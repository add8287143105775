// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"        json:"_id"`
	Email      string             `bson:"email"                json:"email"`
	Role       string             `bson:"role"                 json:"role"`
	Name       string             `bson:"name,omitempty"       json:"name,omitempty"`
	Photo      string             `bson:"photo,omitempty"      json:"photo,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"           json:"created_at"`
	LastSyncAt time.Time          `bson:"last_sync_at"         json:"last_sync_at"`

	Extra bson.M `bson:",inline" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is the part of a user record the login sync may write. Extra
// never carries role, id or the sync timestamps.
type Profile struct {
	Email string
	Name  string
	Photo string
	Extra bson.M
}
