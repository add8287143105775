// AngelaMos | 2026
// dto.go

package auth

type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type TokenResponse struct {
	Success   bool  `json:"success"`
	ExpiresAt int64 `json:"expiresAt"`
}
