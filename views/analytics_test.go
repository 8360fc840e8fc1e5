package views

import (
	"math/rand"
	"testing"
	"time"

	"mandapdash/models"

	"github.com/stretchr/testify/assert"
)

func bookingAt(amount float64, payment string, created time.Time) models.BookingView {
	return models.BookingView{
		TotalAmount:   amount,
		PaymentStatus: payment,
		Status:        DisplayStatus(payment),
		CreatedAt:     created,
	}
}

func TestComputeAnalyticsScenario(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := ComputeAnalytics([]models.BookingView{
		bookingAt(1000, models.PaymentPending, now),
		bookingAt(2000, models.PaymentCompleted, now),
	})
	assert.Equal(t, models.Analytics{Bookings: 2, Revenue: 3000, PendingBookings: 1, CompletedBookings: 1}, got)
}

func TestComputeAnalyticsEmpty(t *testing.T) {
	assert.Equal(t, models.Analytics{}, ComputeAnalytics(nil))
}

func TestAnalyticsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	statuses := []string{models.PaymentPending, models.PaymentCompleted, "failed", ""}

	bookings := make([]models.BookingView, 200)
	for i := range bookings {
		created := time.Date(2020+r.Intn(6), time.Month(1+r.Intn(12)), 1+r.Intn(28), 0, 0, 0, 0, time.UTC)
		bookings[i] = bookingAt(float64(r.Intn(100000)), statuses[r.Intn(len(statuses))], created)
	}

	a := ComputeAnalytics(bookings)

	var pending, completed int
	var revenue float64
	for _, b := range bookings {
		if b.PaymentStatus == models.PaymentPending {
			pending++
		}
		if b.Status == models.BookingCompleted {
			completed++
		}
		revenue += b.TotalAmount
	}
	assert.Equal(t, pending, a.PendingBookings)
	assert.Equal(t, completed, a.CompletedBookings)
	assert.Equal(t, revenue, a.Revenue)

	shuffled := append([]models.BookingView(nil), bookings...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	assert.Equal(t, a.Revenue, ComputeAnalytics(shuffled).Revenue)

	monthly := MonthlyStats(bookings)
	total := 0
	var monthlyRevenue float64
	for _, m := range monthly {
		total += m.Bookings
		monthlyRevenue += m.Revenue
	}
	assert.Equal(t, len(bookings), total)
	assert.Equal(t, revenue, monthlyRevenue)
}

func TestMonthlyStatsBuckets(t *testing.T) {
	stats := MonthlyStats([]models.BookingView{
		bookingAt(100, models.PaymentPending, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)),
		bookingAt(200, models.PaymentPending, time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC)),
		bookingAt(50, models.PaymentCompleted, time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)),
	})

	assert.Len(t, stats, 12)
	for i, m := range stats {
		assert.Equal(t, MonthLabels[i], m.Month)
	}
	assert.Equal(t, models.MonthlyBucket{Month: "Jan", Bookings: 2, Revenue: 300}, stats[0])
	assert.Equal(t, models.MonthlyBucket{Month: "Dec", Bookings: 1, Revenue: 50}, stats[11])
	assert.Zero(t, stats[5].Bookings)
}

func TestRecentBookings(t *testing.T) {
	bs := make([]models.BookingView, 7)
	for i := range bs {
		bs[i].ID = string(rune('a' + i))
	}
	recent := RecentBookings(bs, 5)
	assert.Len(t, recent, 5)
	assert.Equal(t, "a", recent[0].ID)
	assert.Equal(t, "e", recent[4].ID)

	assert.Len(t, RecentBookings(bs[:2], 5), 2)
	assert.NotNil(t, RecentBookings(nil, 5))
}
