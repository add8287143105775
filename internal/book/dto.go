// AngelaMos | 2026
// dto.go

package book

import "go.mongodb.org/mongo-driver/bson"

type CreateBookRequest struct {
	BookName         string `json:"book_name"         validate:"required,max=300"`
	BookImage        string `json:"book_image"        validate:"max=2048"`
	Description      string `json:"description"       validate:"max=5000"`
	ProviderEmail    string `json:"provider_email"    validate:"required,email"`
	ProviderName     string `json:"provider_name"     validate:"max=200"`
	ProviderImage    string `json:"provider_image"    validate:"max=2048"`
	ProviderLocation string `json:"provider_location" validate:"max=300"`
	ProviderPhone    string `json:"provider_phone"    validate:"max=50"`
	BookStatus       string `json:"book_status"`
	AddedTime        string `json:"added_time"        validate:"max=100"`

	Extra bson.M `json:"-"`
}

type UpdateBookRequest struct {
	BookName         *string `json:"book_name"         validate:"omitempty,max=300"`
	BookImage        *string `json:"book_image"        validate:"omitempty,max=2048"`
	ProviderPhone    *string `json:"provider_phone"    validate:"omitempty,max=50"`
	ProviderLocation *string `json:"provider_location" validate:"omitempty,max=300"`
	Description      *string `json:"description"       validate:"omitempty,max=5000"`
}

func (r UpdateBookRequest) toUpdate() Update {
	return Update{
		BookName:         r.BookName,
		BookImage:        r.BookImage,
		ProviderPhone:    r.ProviderPhone,
		ProviderLocation: r.ProviderLocation,
		Description:      r.Description,
	}
}

type UpdateStatusRequest struct {
	BookStatus string `json:"bookStatus" validate:"required"`
}

type UpdateProviderRequest struct {
	Name  *string `json:"name"  validate:"omitempty,max=200"`
	Photo *string `json:"photo" validate:"omitempty,max=2048"`
}

type AddReviewRequest struct {
	Name   string `json:"name"   validate:"required,max=200"`
	Review string `json:"review" validate:"required,max=5000"`
}

type ListBooksResponse struct {
	TotalPages int64  `json:"totalPages"`
	TotalBooks int64  `json:"totalBooks"`
	Result     []Book `json:"result"`
}
