package views

import "mandapdash/models"

// MonthLabels are the fixed labels of the monthly buckets.
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ComputeAnalytics derives the headline numbers from transformed bookings.
func ComputeAnalytics(bookings []models.BookingView) models.Analytics {
	a := models.Analytics{Bookings: len(bookings)}
	for _, b := range bookings {
		a.Revenue += b.TotalAmount
		if b.PaymentStatus == models.PaymentPending {
			a.PendingBookings++
		}
		if b.Status == models.BookingCompleted {
			a.CompletedBookings++
		}
	}
	return a
}

// MonthlyStats buckets bookings by the calendar month of their creation
// time, in that timestamp's own location. Years are not separated.
func MonthlyStats(bookings []models.BookingView) []models.MonthlyBucket {
	out := make([]models.MonthlyBucket, len(MonthLabels))
	for i, label := range MonthLabels {
		out[i].Month = label
	}
	for _, b := range bookings {
		idx := int(b.CreatedAt.Month()) - 1
		out[idx].Bookings++
		out[idx].Revenue += b.TotalAmount
	}
	return out
}

// RecentBookings returns up to n bookings from the head of the list.
func RecentBookings(bookings []models.BookingView, n int) []models.BookingView {
	if len(bookings) < n {
		n = len(bookings)
	}
	return append([]models.BookingView{}, bookings[:n]...)
}
