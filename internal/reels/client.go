package reels

import (
	"context"
	"encoding/json"
	"fmt"

	"deliciae/internal/rest"
)

type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

// List fetches the feed.
func (c *Client) List(ctx context.Context) ([]Reel, error) {
	var raw json.RawMessage
	if err := c.api.DoJSON(ctx, "GET", "/api/reels/", nil, &raw); err != nil {
		return nil, err
	}

	var feed []Reel
	if err := rest.UnmarshalList(raw, &feed); err != nil {
		return nil, err
	}
	return feed, nil
}

// Like toggles the like on a reel and returns the server's count, which
// overrides whatever optimistic count the UI showed.
func (c *Client) Like(ctx context.Context, reelID int64) (int, error) {
	var resp struct {
		LikesCount int `json:"likes_count"`
	}
	path := fmt.Sprintf("/api/reels/%d/like/", reelID)
	if err := c.api.DoJSON(ctx, "POST", path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.LikesCount, nil
}

// ToggleFollow flips the follow state for a restaurant. Returns true when
// the caller now follows it.
func (c *Client) ToggleFollow(ctx context.Context, restaurantID int64) (bool, error) {
	req := map[string]int64{"restaurant_id": restaurantID}

	var resp struct {
		Status string `json:"status"` // "followed" or "unfollowed"
	}
	if err := c.api.DoJSON(ctx, "POST", "/api/follow/toggle/", req, &resp); err != nil {
		return false, err
	}
	return resp.Status == "followed", nil
}
