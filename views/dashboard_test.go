package views

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mandapdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBookings(n int) []models.Booking {
	out := make([]models.Booking, n)
	for i := range out {
		status := models.PaymentPending
		if i%2 == 1 {
			status = models.PaymentCompleted
		}
		out[i] = models.Booking{
			ID:            fmt.Sprintf("b%d", i),
			OrderDates:    []string{"2025-02-10"},
			TotalAmount:   1000,
			PaymentStatus: status,
			CreatedAt:     time.Date(2025, time.Month(1+i%12), 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}

func TestDashboardLoadReady(t *testing.T) {
	venues := &fakeVenues{mandaps: []models.Mandap{{ID: "m1", GuestCapacity: 300}}}
	bookings := &fakeBookings{bookings: sampleBookings(7)}

	d := NewDashboard(context.Background(), venues, bookings, nil)
	assert.Equal(t, StatusIdle, d.Status())

	state, err := d.Load()
	require.NoError(t, err)
	assert.Equal(t, StatusReady, state.Status)
	assert.Empty(t, state.FailedSections)
	assert.Len(t, state.Data.Venues, 1)
	assert.Len(t, state.Data.Bookings, 7)
	assert.Len(t, state.Data.RecentBookings, 5)
	assert.Equal(t, "b0", state.Data.RecentBookings[0].ID)
	assert.Equal(t, models.Analytics{Bookings: 7, Revenue: 7000, PendingBookings: 4, CompletedBookings: 3}, state.Data.Analytics)
	assert.Len(t, state.Data.Monthly, 12)
}

func TestDashboardVenueFailureKeepsBookings(t *testing.T) {
	venues := &fakeVenues{listErr: errBackend}
	bookings := &fakeBookings{bookings: sampleBookings(2)}

	state, err := NewDashboard(context.Background(), venues, bookings, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, StatusPartiallyFailed, state.Status)
	assert.Equal(t, []Section{SectionVenues}, state.FailedSections)
	assert.NotNil(t, state.Data.Venues)
	assert.Empty(t, state.Data.Venues)
	assert.Equal(t, 2, state.Data.Analytics.Bookings)
}

func TestDashboardBothSectionsFail(t *testing.T) {
	state, err := NewDashboard(context.Background(), &fakeVenues{listErr: errBackend}, &fakeBookings{err: errBackend}, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, StatusPartiallyFailed, state.Status)
	assert.Equal(t, []Section{SectionBookings, SectionVenues}, state.FailedSections)
	assert.Equal(t, models.Analytics{}, state.Data.Analytics)
}

func TestDashboardMalformedBookingMarksSection(t *testing.T) {
	bs := sampleBookings(3)
	bs[1].OrderDates = nil

	state, err := NewDashboard(context.Background(), &fakeVenues{}, &fakeBookings{bookings: bs}, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionBookings}, state.FailedSections)
	assert.Len(t, state.Data.Bookings, 2)
}

func TestDashboardBookingWithoutCreationTimeIsNotBucketed(t *testing.T) {
	bs := sampleBookings(3)
	bs[0].CreatedAt = time.Time{}

	state, err := NewDashboard(context.Background(), &fakeVenues{}, &fakeBookings{bookings: bs}, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, StatusPartiallyFailed, state.Status)
	assert.Equal(t, []Section{SectionBookings}, state.FailedSections)
	assert.Len(t, state.Data.Bookings, 2)
	assert.Zero(t, state.Data.Monthly[0].Bookings)
	assert.Zero(t, state.Data.Monthly[0].Revenue)
	assert.Equal(t, 2000.0, state.Data.Analytics.Revenue)
}

func TestDashboardClosedViewDropsResults(t *testing.T) {
	venues := &fakeVenues{block: make(chan struct{})}
	d := NewDashboard(context.Background(), venues, &fakeBookings{}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := d.Load()
		done <- err
	}()

	require.Eventually(t, func() bool { return d.Status() == StatusLoading }, time.Second, time.Millisecond)
	d.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrViewClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not return after close")
	}
	assert.Equal(t, StatusClosed, d.Status())
	assert.Empty(t, d.State().Data.Venues)

	_, err := d.Load()
	assert.ErrorIs(t, err, ErrViewClosed)
}
