// AngelaMos | 2026
// dto.go

package user

import "go.mongodb.org/mongo-driver/bson"

// SyncUserRequest carries the profile sent after sign-in. Role and id in
// the body never reach the store.
type SyncUserRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name"  validate:"max=100"`
	Photo string `json:"photo" validate:"max=2048"`

	Extra bson.M `json:"-"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=guest admin"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type TotalAdminResponse struct {
	TotalAdmin int64 `json:"totalAdmin"`
}
