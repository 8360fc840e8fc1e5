package views

import (
	"context"
	"strings"

	"mandapdash/models"
	"mandapdash/services/notification"

	"go.uber.org/zap"
)

// Confirmer asks the provider to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	AlwaysConfirm = ConfirmFunc(func(string) bool { return true })
	NeverConfirm  = ConfirmFunc(func(string) bool { return false })
)

// ListState is a snapshot of a list view.
type ListState[T any] struct {
	Status         Status    `json:"status"`
	FailedSections []Section `json:"failedSections,omitempty"`
	Items          []T       `json:"items"`
}

// resourceList is the load and delete flow shared by the list pages. noun
// is the singular resource name used in notifications, e.g. "mandap".
type resourceList[T any] struct {
	view
	noun     string
	section  Section
	notifier notification.Notifier
	idOf     func(T) string
	items    []T
}

func (l *resourceList[T]) setup(parent context.Context, noun string, section Section, idOf func(T) string, notifier notification.Notifier, logger *zap.Logger) {
	if notifier == nil {
		notifier = notification.Discard{}
	}
	l.noun = noun
	l.section = section
	l.idOf = idOf
	l.notifier = notifier
	l.items = []T{}
	l.init(parent, string(section), logger)
}

func (l *resourceList[T]) load(fetch func(ctx context.Context) ([]T, error)) (ListState[T], error) {
	ctx, err := l.begin()
	if err != nil {
		return ListState[T]{Status: StatusClosed}, err
	}

	items, fetchErr := fetch(ctx)
	if fetchErr != nil && ctx.Err() == nil {
		l.logger.Error("Error fetching "+l.noun+"s", zap.Error(fetchErr))
		l.notifier.Notify(ctx, models.NotifyError, "Failed to fetch "+l.noun+"s")
	}

	var failed []Section
	if fetchErr != nil {
		failed = []Section{l.section}
	}
	err = l.commit(failed, func() {
		if fetchErr == nil {
			if items == nil {
				items = []T{}
			}
			l.items = items
		}
	})
	if err != nil {
		return ListState[T]{Status: StatusClosed}, err
	}
	return l.State(), nil
}

// remove asks for confirmation, deletes upstream and drops the item
// locally. On failure the list is unchanged. It reports whether the item
// was deleted.
func (l *resourceList[T]) remove(id string, confirm Confirmer, del func(ctx context.Context, id string) error) (bool, error) {
	if confirm == nil {
		confirm = NeverConfirm
	}
	if !confirm.Confirm("Are you sure you want to delete this " + l.noun + "?") {
		return false, nil
	}

	l.mu.Lock()
	closed := l.status == StatusClosed
	ctx := l.ctx
	l.mu.Unlock()
	if closed || ctx.Err() != nil {
		return false, ErrViewClosed
	}

	if err := del(ctx, id); err != nil {
		if ctx.Err() != nil {
			return false, ErrViewClosed
		}
		l.logger.Error("Error deleting "+l.noun, zap.String("id", id), zap.Error(err))
		l.notifier.Notify(ctx, models.NotifyError, "Failed to delete "+l.noun)
		return false, err
	}

	l.mu.Lock()
	if l.status == StatusClosed {
		l.mu.Unlock()
		return false, ErrViewClosed
	}
	kept := make([]T, 0, len(l.items))
	for _, it := range l.items {
		if l.idOf(it) != id {
			kept = append(kept, it)
		}
	}
	l.items = kept
	l.mu.Unlock()

	l.notifier.Notify(ctx, models.NotifySuccess, capitalize(l.noun)+" deleted successfully")
	return true, nil
}

// Items returns a copy of the loaded items.
func (l *resourceList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T{}, l.items...)
}

func (l *resourceList[T]) State() ListState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ListState[T]{
		Status:         l.status,
		FailedSections: append([]Section(nil), l.failed...),
		Items:          append([]T{}, l.items...),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
