// AngelaMos | 2026
// entity.go

package analytics

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserAnalytics struct {
	TotalBooks   int64 `json:"totalBooks"`
	MyBooks      int64 `json:"myBooks"`
	TotalBooking int64 `json:"totalBooking"`
	MyBookings   int64 `json:"myBookings"`
	MyProgress   int64 `json:"myProgress"`
	MyCompleted  int64 `json:"myCompleted"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ProviderSummary is one row of the provider aggregation.
type ProviderSummary struct {
	Email       string             `bson:"email"       json:"email"`
	Count       int64              `bson:"count"       json:"count"`
	FirstBookID primitive.ObjectID `bson:"firstBookId" json:"firstBookId"`
}

type BookProvidersResponse struct {
	TotalBookings int64             `json:"totalBookings"`
	Result        []ProviderSummary `json:"result"`
}
