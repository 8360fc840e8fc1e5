package views

import (
	"context"
	"errors"
	"sort"
	"sync"

	"mandapdash/metrics"

	"go.uber.org/zap"
)

// Status is the lifecycle of a view.
type Status string

const (
	StatusIdle            Status = "idle"
	StatusLoading         Status = "loading"
	StatusReady           Status = "ready"
	StatusPartiallyFailed Status = "partially_failed"
	StatusClosed          Status = "closed"
)

// Section names a part of a view fed by one backend call.
type Section string

const (
	SectionVenues   Section = "venues"
	SectionBookings Section = "bookings"
	SectionCaterers Section = "caterers"
	SectionRooms    Section = "rooms"
)

// ErrViewClosed is returned when a view is used after Close. Results that
// arrive after Close are dropped.
var ErrViewClosed = errors.New("view closed")

// view carries the lifetime and load status shared by every controller.
// All async work runs under ctx, which Close cancels.
type view struct {
	name   string
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger

	mu     sync.Mutex
	status Status
	failed []Section
}

func (v *view) init(parent context.Context, name string, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v.name = name
	v.ctx, v.cancel = context.WithCancel(parent)
	v.logger = logger.With(zap.String("view", name))
	v.status = StatusIdle
}

// Close ends the view's lifetime and cancels in-flight requests.
func (v *view) Close() {
	v.mu.Lock()
	v.status = StatusClosed
	v.mu.Unlock()
	v.cancel()
}

// Status reports the current lifecycle state.
func (v *view) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// FailedSections lists the sections whose last load failed.
func (v *view) FailedSections() []Section {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Section(nil), v.failed...)
}

func (v *view) begin() (context.Context, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status == StatusClosed || v.ctx.Err() != nil {
		return nil, ErrViewClosed
	}
	v.status = StatusLoading
	return v.ctx, nil
}

// commit applies a finished load unless the view was closed meanwhile.
func (v *view) commit(failed []Section, apply func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status == StatusClosed || v.ctx.Err() != nil {
		return ErrViewClosed
	}
	apply()
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	v.failed = failed
	if len(failed) > 0 {
		v.status = StatusPartiallyFailed
	} else {
		v.status = StatusReady
	}
	metrics.ViewLoads.WithLabelValues(v.name, string(v.status)).Inc()
	return nil
}
