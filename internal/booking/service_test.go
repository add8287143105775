// AngelaMos | 2026
// service_test.go

package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/bookhaven/internal/core"
)

func TestMyBookingsTotals(t *testing.T) {
	repo := newFakeRepository()
	repo.insert(Booking{UserEmail: "u@x.com", Status: StatusPending})
	repo.insert(Booking{UserEmail: "u@x.com", Status: StatusProgress})
	repo.insert(Booking{UserEmail: "u@x.com", Status: StatusProgress})
	repo.insert(Booking{UserEmail: "other@x.com", Status: StatusProgress})

	res, err := NewService(repo).MyBookings(context.Background(), "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalCart)
	assert.Equal(t, int64(2), res.TotalProgress)
	assert.Len(t, res.Result, 3)
}

func TestMyBookingsEmpty(t *testing.T) {
	res, err := NewService(newFakeRepository()).MyBookings(context.Background(), "u@x.com")
	require.NoError(t, err)
	assert.NotNil(t, res.Result)
	assert.Empty(t, res.Result)
}

func TestMyPendingByProvider(t *testing.T) {
	repo := newFakeRepository()
	repo.insert(Booking{UserEmail: "u@x.com", ProviderEmail: "p@x.com"})
	repo.insert(Booking{UserEmail: "p@x.com", ProviderEmail: "q@x.com"})

	res, err := NewService(repo).MyPending(context.Background(), "p@x.com")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "u@x.com", res[0].UserEmail)
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	repo := newFakeRepository()

	res, err := NewService(repo).CreateBooking(context.Background(), CreateBookingRequest{
		UserEmail:     "u@x.com",
		ProviderEmail: "p@x.com",
	})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(res.InsertedID)
	require.NoError(t, err)
	stored, ok := repo.get(oid)
	require.True(t, ok)
	assert.Equal(t, StatusPending, stored.Status)
	assert.Empty(t, stored.CompletedAt)
}

func TestUpdateStatusAcceptsAnyValue(t *testing.T) {
	repo := newFakeRepository()
	id := repo.insert(Booking{Status: StatusPending})
	svc := NewService(repo)

	for _, status := range []string{StatusProgress, "Rejected", StatusCompleted} {
		_, err := svc.UpdateStatus(context.Background(), id.Hex(), status)
		require.NoError(t, err)

		stored, _ := repo.get(id)
		assert.Equal(t, status, stored.Status)
	}

	_, err := svc.UpdateStatus(context.Background(), id.Hex(), " ")
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestAddCompletedTimeIdempotent(t *testing.T) {
	repo := newFakeRepository()
	id := repo.insert(Booking{Status: StatusCompleted})
	svc := NewService(repo)

	first, err := svc.AddCompletedTime(context.Background(), id.Hex(), "5/3/2024, 2:07:00 PM")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ModifiedCount)

	second, err := svc.AddCompletedTime(context.Background(), id.Hex(), "5/3/2024, 2:07:00 PM")
	require.NoError(t, err)
	assert.Zero(t, second.ModifiedCount)
	assert.Equal(t, 1, repo.len())
}

func TestListAllFilter(t *testing.T) {
	repo := newFakeRepository()
	repo.insert(Booking{Status: StatusPending})
	repo.insert(Booking{Status: StatusCompleted})
	svc := NewService(repo)

	tests := []struct {
		filter string
		want   int
	}{
		{"", 2},
		{FilterAll, 2},
		{StatusPending, 1},
		{"Unknown", 0},
	}

	for _, tt := range tests {
		res, err := svc.ListAll(context.Background(), tt.filter)
		require.NoError(t, err)
		assert.Len(t, res, tt.want, tt.filter)
		assert.NotNil(t, res)
	}
}

func TestDeleteBookingErrors(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.DeleteBooking(context.Background(), "nope")
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = svc.DeleteBooking(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, core.ErrNotFound)
}
