package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"deliciae/internal/rest"
)

func TestGetFoodItemCapturesRestaurant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/food-items/12/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 12,
			"name": "Kerala Biryani",
			"price": 249.0,
			"restaurant": {"id": 4, "name": "Alappuzha Kitchen"},
			"image_url": "https://cdn.example/biryani.jpg"
		}`))
	}))
	defer srv.Close()

	client := NewClient(rest.NewClient(srv.URL, ""))

	item, err := client.GetFoodItem(context.Background(), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref := item.Ref()
	if ref.ID != 12 || ref.Name != "Kerala Biryani" || ref.UnitPrice != 249.0 {
		t.Errorf("captured ref = %+v", ref)
	}
	if ref.SourceLabel != "Alappuzha Kitchen" {
		t.Errorf("source label = %q, want restaurant name", ref.SourceLabel)
	}
	if ref.ImageRef != "https://cdn.example/biryani.jpg" {
		t.Errorf("image ref = %q", ref.ImageRef)
	}
}

func TestGetFoodItemSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	}))
	defer srv.Close()

	client := NewClient(rest.NewClient(srv.URL, ""))

	_, err := client.GetFoodItem(context.Background(), 99)
	if err == nil {
		t.Fatal("expected an error")
	}

	var restErr *rest.Error
	if !errors.As(err, &restErr) {
		t.Fatalf("error type = %T, want *rest.Error", err)
	}
	if restErr.Status != http.StatusNotFound || restErr.Body != `{"detail": "Not found."}` {
		t.Errorf("error payload lost: %+v", restErr)
	}
}

func TestNearbyRestaurantsHandlesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") == "" || q.Get("lng") == "" || q.Get("radius") == "" {
			t.Errorf("missing query params: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"id": 1, "name": "Thattukada", "distance": 1.2},
			{"id": 2, "name": "Grand Pavilion", "distance": 4.7}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(rest.NewClient(srv.URL, ""))

	listings, err := client.NearbyRestaurants(context.Background(), 9.49, 76.33, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 || listings[0].Name != "Thattukada" {
		t.Errorf("listings = %+v", listings)
	}
}
