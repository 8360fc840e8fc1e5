package models

import "time"

// Payment statuses assigned by the backend.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Display statuses derived from the payment status.
const (
	BookingCompleted = "completed"
	BookingConfirmed = "confirmed"
)

// Booking is a booking exactly as the backend returns it, with the venue
// and customer populated.
type Booking struct {
	ID            string    `json:"_id"`
	Mandap        Ref       `json:"mandapId"`
	User          Ref       `json:"userId"`
	OrderDates    []string  `json:"orderDates"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingView is the normalized booking rendered by the dashboard.
type BookingView struct {
	ID            string    `json:"id"`
	MandapID      string    `json:"mandapId"`
	MandapName    string    `json:"mandapName"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Analytics are the headline dashboard numbers.
type Analytics struct {
	Bookings          int     `json:"bookings"`
	Revenue           float64 `json:"revenue"`
	PendingBookings   int     `json:"pendingBookings"`
	CompletedBookings int     `json:"completedBookings"`
}

// MonthlyBucket aggregates the bookings created in one calendar month.
type MonthlyBucket struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}
