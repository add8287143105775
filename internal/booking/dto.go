// AngelaMos | 2026
// dto.go

package booking

import "go.mongodb.org/mongo-driver/bson"

type CreateBookingRequest struct {
	BookID             string `json:"book_id"             validate:"max=64"`
	BookName           string `json:"book_name"           validate:"max=300"`
	BookImage          string `json:"book_image"          validate:"max=2048"`
	UserEmail          string `json:"user_email"          validate:"required,email"`
	UserName           string `json:"user_name"           validate:"max=200"`
	ProviderEmail      string `json:"provider_email"      validate:"required,email"`
	ProviderName       string `json:"provider_name"       validate:"max=200"`
	ProviderImage      string `json:"provider_image"      validate:"max=2048"`
	TakingDate         string `json:"taking_date"         validate:"max=100"`
	SpecialInstruction string `json:"special_instruction" validate:"max=2000"`
	Status             string `json:"status"              validate:"max=50"`

	Extra bson.M `json:"-"`
}

type UpdateStatusRequest struct {
	Status string `json:"updatedPendingStatus" validate:"required,max=50"`
}

type AddTimeRequest struct {
	CompletedAt string `json:"todayDateTime" validate:"required,max=100"`
}

type MyBookingsResponse struct {
	TotalCart     int64     `json:"totalCart"`
	TotalProgress int64     `json:"totalProgress"`
	Result        []Booking `json:"result"`
}
