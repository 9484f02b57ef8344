package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Nominatim's usage policy requires an identifying user agent.
const userAgent = "deliciae/1.0"

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Place is a resolved location.
type Place struct {
	DisplayName string
	Lat         float64
	Lon         float64
}

// Client geocodes against Nominatim.
type Client struct {
	hc      *http.Client
	baseURL string
}

func NewClient() *Client {
	return &Client{
		hc:      &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
}

// NewClientWithBaseURL exists for tests pointing at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// nominatim serializes coordinates as strings.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (p nominatimPlace) place() (Place, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("bad latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("bad longitude %q: %w", p.Lon, err)
	}
	return Place{DisplayName: p.DisplayName, Lat: lat, Lon: lon}, nil
}

// Search forward-geocodes a free-form query (a city name, usually).
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", query)

	var raw []nominatimPlace
	if err := c.get(ctx, "/search?"+q.Encode(), &raw); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		p, err := r.place()
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, nil
}

// Reverse resolves coordinates to a display name.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var raw nominatimPlace
	if err := c.get(ctx, "/reverse?"+q.Encode(), &raw); err != nil {
		return nil, err
	}

	p, err := raw.place()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("nominatim returned %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
