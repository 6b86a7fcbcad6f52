package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bipuldey19/hungrypanda-handler/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dinnerItems() []entity.MenuItem {
	return []entity.MenuItem{
		{ID: 7, Meta: entity.ItemMetadata{ItemName: "Biryani", Price: 320, Category: "dinner"}},
		{ID: 8, Meta: entity.ItemMetadata{ItemName: "Tehari", Price: 280, Category: "dinner"}},
	}
}

func TestCreateItemMultipart(t *testing.T) {
	env := newTestEnv(t, nil)
	_, cookie := env.login(t, "hunter2")

	body, contentType := multipartItem(t,
		map[string]string{
			"name":        "Chicken Biryani",
			"price":       "320",
			"description": "Fragrant basmati rice",
			"ingredients": "chicken, rice, spices",
			"category":    "dinner",
			"popular":     "true",
		},
		map[string][]string{
			"main_image":   {"main.jpg"},
			"other_images": {"side1.jpg", "side2.jpg"},
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", contentType)
	w := env.do(req, cookie)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, env.gateway.added, 1)
	added := env.gateway.added[0]
	assert.Equal(t, "Chicken Biryani", added.Name)
	assert.Equal(t, int64(320), added.Price)
	assert.True(t, added.Popular)
	assert.Equal(t, "https://cdn.example.com/public/main.jpg", added.MainImageURL)
	assert.Len(t, added.OtherImageURLs, 2)
	assert.Equal(t, []string{"main.jpg", "side1.jpg", "side2.jpg"}, env.uploader.uploads, "main image uploads first")
}

func TestCreateItemValidationFailureMakesNoCalls(t *testing.T) {
	env := newTestEnv(t, nil)
	_, cookie := env.login(t, "hunter2")

	// No main image, empty name.
	body, contentType := multipartItem(t,
		map[string]string{"price": "320", "description": "something"},
		nil,
	)
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", contentType)
	w := env.do(req, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.uploader.uploads)
	assert.Empty(t, env.gateway.added)
}

func TestUpdateStatusCallsGateway(t *testing.T) {
	env := newTestEnv(t, &staticLister{items: dinnerItems()})
	_, cookie := env.login(t, "hunter2")

	req := httptest.NewRequest(http.MethodPatch, "/items/7/status",
		jsonBody(t, gin.H{"active": false, "availability": "back tomorrow"}))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.gateway.statuses, 1)
	assert.Equal(t, uint(7), env.gateway.statuses[0].ItemID)
	assert.False(t, env.gateway.statuses[0].Active)
	assert.Equal(t, "back tomorrow", env.gateway.statuses[0].Availability)
}

func TestDeleteConfirmationFlow(t *testing.T) {
	env := newTestEnv(t, &staticLister{items: dinnerItems()})
	_, cookie := env.login(t, "hunter2")

	// Step 1: request marks only item 7 as pending.
	w := env.do(httptest.NewRequest(http.MethodPost, "/items/7/delete", nil), cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.gateway.deleted, "requesting must not delete")

	dash := env.dashboard(t, cookie)
	assert.Equal(t, "confirm_delete", dash[uint(7)])
	assert.Equal(t, "none", dash[uint(8)], "confirmation must not leak to other items")

	// Step 2: confirm issues exactly one delete and clears the flag.
	w = env.do(httptest.NewRequest(http.MethodPost, "/items/7/delete/confirm", nil), cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.gateway.deleted, 1)
	assert.Equal(t, uint(7), env.gateway.deleted[0].ItemID)

	dash = env.dashboard(t, cookie)
	assert.Equal(t, "none", dash[uint(7)])
}

func TestDeleteCancelMakesNoGatewayCall(t *testing.T) {
	env := newTestEnv(t, &staticLister{items: dinnerItems()})
	_, cookie := env.login(t, "hunter2")

	env.do(httptest.NewRequest(http.MethodPost, "/items/7/delete", nil), cookie)
	w := env.do(httptest.NewRequest(http.MethodPost, "/items/7/delete/cancel", nil), cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.gateway.deleted)
	assert.Equal(t, "none", env.dashboard(t, cookie)[uint(7)])
}

func TestConfirmWithoutPendingRequestIsRejected(t *testing.T) {
	env := newTestEnv(t, &staticLister{items: dinnerItems()})
	_, cookie := env.login(t, "hunter2")

	w := env.do(httptest.NewRequest(http.MethodPost, "/items/7/delete/confirm", nil), cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.gateway.deleted)
}

func TestGetItemServesFullMetadata(t *testing.T) {
	env := newTestEnv(t, &staticLister{items: dinnerItems()})
	_, cookie := env.login(t, "hunter2")

	w := env.do(httptest.NewRequest(http.MethodGet, "/items/8", nil), cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tehari")

	w = env.do(httptest.NewRequest(http.MethodGet, "/items/99", nil), cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardDegradesOnReadError(t *testing.T) {
	env := newTestEnv(t, &staticLister{err: errUnreachable})
	_, cookie := env.login(t, "hunter2")

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), cookie)

	require.Equal(t, http.StatusOK, w.Code, "read errors degrade, they do not crash")
	assert.Contains(t, w.Body.String(), "db unreachable")
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

// dashboard fetches the card list and returns item id -> uiState.
func (e *testEnv) dashboard(t *testing.T, cookie *http.Cookie) map[uint]string {
	t.Helper()
	w := e.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Items []struct {
				ID      uint   `json:"id"`
				UIState string `json:"uiState"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(strings.NewReader(w.Body.String())).Decode(&envelope))

	out := make(map[uint]string)
	for _, it := range envelope.Data.Items {
		out[it.ID] = it.UIState
	}
	return out
}
