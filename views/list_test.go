package views

import (
	"context"
	"testing"

	"mandapdash/models"
	"mandapdash/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedVenueList(t *testing.T, source *fakeVenues) (*VenueList, *notification.Collector) {
	t.Helper()
	col := notification.NewCollector()
	l := NewVenueList(context.Background(), source, col, nil)
	_, err := l.Load()
	require.NoError(t, err)
	return l, col
}

func messages(t *testing.T, col *notification.Collector) []string {
	t.Helper()
	items, err := col.Drain(context.Background())
	require.NoError(t, err)
	out := []string{}
	for _, n := range items {
		out = append(out, n.Level+":"+n.Message)
	}
	return out
}

func TestVenueListLoadAndFilter(t *testing.T) {
	source := &fakeVenues{mandaps: []models.Mandap{
		{ID: "m1", MandapName: "Lotus Hall", GuestCapacity: 450},
		{ID: "m2", MandapName: "Rose Garden", GuestCapacity: 150},
	}}
	l, col := loadedVenueList(t, source)

	assert.Equal(t, StatusReady, l.Status())
	assert.Len(t, l.Items(), 2)
	assert.Len(t, l.Filtered("", FilterHighCapacity), 1)
	assert.Len(t, l.Filtered("rose", FilterAll), 1)
	assert.Empty(t, messages(t, col))
}

func TestVenueListLoadFailureNotifies(t *testing.T) {
	l, col := loadedVenueList(t, &fakeVenues{listErr: errBackend})

	state := l.State()
	assert.Equal(t, StatusPartiallyFailed, state.Status)
	assert.Equal(t, []Section{SectionVenues}, state.FailedSections)
	assert.NotNil(t, state.Items)
	assert.Equal(t, []string{"error:Failed to fetch mandaps"}, messages(t, col))
}

func TestVenueListDelete(t *testing.T) {
	source := &fakeVenues{mandaps: []models.Mandap{{ID: "m1"}, {ID: "m2"}}}
	l, col := loadedVenueList(t, source)

	var prompt string
	ok, err := l.Delete("m1", ConfirmFunc(func(p string) bool {
		prompt = p
		return true
	}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Are you sure you want to delete this mandap?", prompt)
	assert.Equal(t, []string{"m1"}, source.deleted)
	require.Len(t, l.Items(), 1)
	assert.Equal(t, "m2", l.Items()[0].ID)
	assert.Equal(t, []string{"success:Mandap deleted successfully"}, messages(t, col))
}

func TestVenueListDeclinedDeleteDoesNothing(t *testing.T) {
	source := &fakeVenues{mandaps: []models.Mandap{{ID: "m1"}}}
	l, col := loadedVenueList(t, source)

	ok, err := l.Delete("m1", NeverConfirm)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, source.deleted)
	assert.Len(t, l.Items(), 1)
	assert.Empty(t, messages(t, col))
}

func TestVenueListFailedDeleteLeavesState(t *testing.T) {
	source := &fakeVenues{mandaps: []models.Mandap{{ID: "m1"}, {ID: "m2"}}}
	l, col := loadedVenueList(t, source)
	before := l.State()

	source.deleteErr = errBackend
	ok, err := l.Delete("m1", AlwaysConfirm)
	assert.ErrorIs(t, err, errBackend)
	assert.False(t, ok)
	assert.Equal(t, before, l.State())
	assert.Equal(t, []string{"error:Failed to delete mandap"}, messages(t, col))
}

func TestVenueListClosed(t *testing.T) {
	l, _ := loadedVenueList(t, &fakeVenues{mandaps: []models.Mandap{{ID: "m1"}}})
	l.Close()

	_, err := l.Load()
	assert.ErrorIs(t, err, ErrViewClosed)
	_, err = l.Delete("m1", AlwaysConfirm)
	assert.ErrorIs(t, err, ErrViewClosed)
	assert.Equal(t, StatusClosed, l.Status())
}

func TestCatererListScopesToMandap(t *testing.T) {
	source := &fakeCaterers{
		all:      []models.Caterer{{ID: "c1"}, {ID: "c2"}},
		byMandap: []models.Caterer{{ID: "c2"}},
	}
	all, err := NewCatererList(context.Background(), source, "", nil, nil).Load()
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	scoped, err := NewCatererList(context.Background(), source, "m2", nil, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "m2", source.gotMandap)
	assert.Len(t, scoped.Items, 1)
}

func TestRoomListDelete(t *testing.T) {
	col := notification.NewCollector()
	l := NewRoomList(context.Background(), &fakeRooms{rooms: []models.Room{{ID: "r1"}}}, col, nil)
	_, err := l.Load()
	require.NoError(t, err)

	ok, err := l.Delete("r1", AlwaysConfirm)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, l.Items())
	assert.Equal(t, []string{"success:Room deleted successfully"}, messages(t, col))
}
