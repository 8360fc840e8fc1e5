package views

import (
	"context"
	"sync"

	"mandapdash/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentBookingsLimit = 5

// VenueLister fetches the provider's venues.
type VenueLister interface {
	List(ctx context.Context) ([]models.Mandap, error)
}

// BookingLister fetches the provider's bookings.
type BookingLister interface {
	List(ctx context.Context) ([]models.Booking, error)
}

// DashboardData is everything the overview page renders.
type DashboardData struct {
	Venues         []models.VenueView     `json:"venues"`
	Bookings       []models.BookingView   `json:"bookings"`
	RecentBookings []models.BookingView   `json:"recentBookings"`
	Analytics      models.Analytics       `json:"analytics"`
	Monthly        []models.MonthlyBucket `json:"monthly"`
}

// DashboardState is a snapshot of the dashboard view.
type DashboardState struct {
	Status         Status        `json:"status"`
	FailedSections []Section     `json:"failedSections,omitempty"`
	Data           DashboardData `json:"data"`
}

// Dashboard loads venues and bookings concurrently and derives the
// analytics from the bookings. A failed section leaves the other intact.
type Dashboard struct {
	view
	venues   VenueLister
	bookings BookingLister
	data     DashboardData
}

func NewDashboard(parent context.Context, venues VenueLister, bookings BookingLister, logger *zap.Logger) *Dashboard {
	d := &Dashboard{venues: venues, bookings: bookings, data: emptyDashboard()}
	d.init(parent, "dashboard", logger)
	return d
}

func emptyDashboard() DashboardData {
	return DashboardData{
		Venues:         []models.VenueView{},
		Bookings:       []models.BookingView{},
		RecentBookings: []models.BookingView{},
		Monthly:        MonthlyStats(nil),
	}
}

// Load fetches both sections and settles the view. Errors from individual
// sections are reported through FailedSections, not the returned error.
func (d *Dashboard) Load() (DashboardState, error) {
	ctx, err := d.begin()
	if err != nil {
		return DashboardState{Status: StatusClosed}, err
	}

	var (
		mu       sync.Mutex
		failed   []Section
		venues   = []models.VenueView{}
		bookings = []models.BookingView{}
	)
	markFailed := func(s Section) {
		mu.Lock()
		failed = append(failed, s)
		mu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		ms, err := d.venues.List(ctx)
		if err != nil {
			d.logger.Error("Error fetching mandaps", zap.Error(err))
			markFailed(SectionVenues)
			return nil
		}
		venues = ToVenueViews(ms)
		return nil
	})
	g.Go(func() error {
		bs, err := d.bookings.List(ctx)
		if err != nil {
			d.logger.Error("Error fetching bookings", zap.Error(err))
			markFailed(SectionBookings)
			return nil
		}
		out := make([]models.BookingView, 0, len(bs))
		skipped := 0
		for _, b := range bs {
			bv, err := ToBookingView(b)
			if err != nil {
				d.logger.Warn("Skipping malformed booking", zap.String("bookingId", b.ID), zap.Error(err))
				skipped++
				continue
			}
			out = append(out, bv)
		}
		if skipped > 0 {
			markFailed(SectionBookings)
		}
		bookings = out
		return nil
	})
	_ = g.Wait()

	err = d.commit(failed, func() {
		d.data = DashboardData{
			Venues:         venues,
			Bookings:       bookings,
			RecentBookings: RecentBookings(bookings, recentBookingsLimit),
			Analytics:      ComputeAnalytics(bookings),
			Monthly:        MonthlyStats(bookings),
		}
	})
	if err != nil {
		return DashboardState{Status: StatusClosed}, err
	}
	return d.State(), nil
}

// State returns the current snapshot.
func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DashboardState{
		Status:         d.status,
		FailedSections: append([]Section(nil), d.failed...),
		Data:           d.data,
	}
}
