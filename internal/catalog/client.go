package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"deliciae/internal/rest"
)

// Client reads from the Catalog Provider. Read-only: nothing here mutates
// backend state.
type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

// GetFoodItem fetches one dish with its restaurant.
func (c *Client) GetFoodItem(ctx context.Context, id int64) (*FoodItem, error) {
	var item FoodItem
	path := fmt.Sprintf("/api/food-items/%d/", id)
	if err := c.api.DoJSON(ctx, "GET", path, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListFoodItems returns the dish catalog, optionally filtered by a search
// query.
func (c *Client) ListFoodItems(ctx context.Context, query string) ([]FoodItem, error) {
	path := "/api/food/"
	if query != "" {
		path += "?search=" + url.QueryEscape(query)
	}

	var raw json.RawMessage
	if err := c.api.DoJSON(ctx, "GET", path, nil, &raw); err != nil {
		return nil, err
	}

	var items []FoodItem
	if err := rest.UnmarshalList(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NearbyRestaurants lists restaurants within radiusKM of the coordinates.
func (c *Client) NearbyRestaurants(ctx context.Context, lat, lng, radiusKM float64) ([]RestaurantListing, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusKM, 'f', -1, 64))

	var raw json.RawMessage
	if err := c.api.DoJSON(ctx, "GET", "/api/nearby-restaurants/?"+q.Encode(), nil, &raw); err != nil {
		return nil, err
	}

	var listings []RestaurantListing
	if err := rest.UnmarshalList(raw, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// SearchRestaurants is the no-GPS fallback: the full restaurant list,
// optionally filtered by a search query.
func (c *Client) SearchRestaurants(ctx context.Context, query string) ([]RestaurantListing, error) {
	path := "/api/restaurants/"
	if query != "" {
		path += "?search=" + url.QueryEscape(query)
	}

	var raw json.RawMessage
	if err := c.api.DoJSON(ctx, "GET", path, nil, &raw); err != nil {
		return nil, err
	}

	var listings []RestaurantListing
	if err := rest.UnmarshalList(raw, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
