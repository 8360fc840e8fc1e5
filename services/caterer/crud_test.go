package caterer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mandapdash/api"
	"mandapdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	path  string
	form  map[string][]string
	files []string
	calls int
}

func newTestService(t *testing.T, body string) (*DefaultCatererService, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.calls++
		got.path = r.URL.Path
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			got.form = r.MultipartForm.Value
			for _, fh := range r.MultipartForm.File[imageField] {
				got.files = append(got.files, fh.Filename)
			}
		}
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewDefaultCatererService(api.Config{BaseURL: srv.URL}, api.Session{}), got
}

func TestCreateSubmitsOnlyFirstCategory(t *testing.T) {
	svc, got := newTestService(t, `{"data":{"caterer":{"_id":"c1","catererName":"Annapurna"}}}`)

	input := models.CatererInput{
		MandapID:    "m1",
		CatererName: "Annapurna",
		MenuCategories: []models.MenuCategory{
			{Category: "Starters", MenuItems: []models.MenuItem{{ItemName: "Paneer Tikka", ItemPrice: 250}}},
			{Category: "Desserts", MenuItems: []models.MenuItem{{ItemName: "Jalebi", ItemPrice: 80}}},
		},
		FoodType: "Veg",
	}
	image := &api.File{Name: "starters.jpg", Reader: strings.NewReader("img")}

	c, err := svc.Create(context.Background(), input, image)
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "/add-caterer", got.path)

	var sent models.MenuCategory
	require.NoError(t, json.Unmarshal([]byte(got.form["menuCategory"][0]), &sent))
	assert.Equal(t, input.MenuCategories[0], sent)
	assert.NotContains(t, got.form, "menuCategories")
	assert.NotContains(t, got.form, "customizableItems")
	assert.Equal(t, []string{"m1"}, got.form["mandapId"])
	assert.Equal(t, []string{"starters.jpg"}, got.files)
}

func TestCreateWithoutCategoryIsRejectedLocally(t *testing.T) {
	svc, got := newTestService(t, `{}`)
	_, err := svc.Create(context.Background(), models.CatererInput{MandapID: "m1", CatererName: "X"}, nil)
	assert.ErrorIs(t, err, ErrNoMenuCategory)
	assert.Zero(t, got.calls)
}

func TestListEndpoints(t *testing.T) {
	svc, got := newTestService(t, `{"data":{"caterers":[{"_id":"c1","mandapId":"m1"},{"_id":"c2","mandapId":{"_id":"m2","mandapName":"Rose"}}]}}`)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/get-all-caterers", got.path)
	require.Len(t, all, 2)
	assert.Equal(t, "m1", all[0].Mandap.ID)
	assert.Equal(t, "Rose", all[1].Mandap.MandapName)

	_, err = svc.ListByMandap(context.Background(), "m2")
	require.NoError(t, err)
	assert.Equal(t, "/get-all-caterer/m2", got.path)
}

func TestGetUpdateDeletePaths(t *testing.T) {
	svc, got := newTestService(t, `{"data":{"caterer":{"_id":"c1"}}}`)

	_, err := svc.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "/get-caterer/c1", got.path)

	_, err = svc.Update(context.Background(), "c1", map[string]any{"foodType": "Non-Veg"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/update-caterer/c1", got.path)
	assert.Equal(t, []string{"Non-Veg"}, got.form["foodType"])

	_, err = svc.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "/delete-caterer/c1", got.path)
}
