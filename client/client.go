// Package client is a typed HTTP client for the booking API, used by the
// booking UI and by operational tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"carwash/models"
	"carwash/utils"
)

var defaultHTTPClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// BookingForm is the body of create and update calls. Values are sent as the
// form holds them; empty fields are omitted, so an update carries only what
// changed.
type BookingForm struct {
	CarName         string `json:"carName,omitempty"`
	CarModel        string `json:"carModel,omitempty"`
	CarType         string `json:"carType,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	CustomerMobile  string `json:"customerMobile,omitempty"`
	BookingDate     string `json:"bookingDate,omitempty"` // DD/MM/YYYY
	CarWashType     string `json:"carWashType,omitempty"`
	CarWashDuration string `json:"carWashDuration,omitempty"`
	CarWashPrice    string `json:"carWashPrice,omitempty"`
	Status          string `json:"status,omitempty"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("booking api: %d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("booking api: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to one booking API instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport, e.g. with httptest's.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for baseURL, e.g. "http://localhost:3000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: strings.TrimSuffix(baseURL, "/"), http: defaultHTTPClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type mutationResponse struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

// CreateBooking posts a new booking and returns it as stored.
func (c *Client) CreateBooking(ctx context.Context, form BookingForm) (*models.Booking, error) {
	var out mutationResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", form, &out); err != nil {
		return nil, err
	}
	return out.Booking, nil
}

// ListBookings returns every booking.
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPendingBookings returns bookings whose status is pending.
func (c *Client) ListPendingBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchBookings runs a case-insensitive substring search over car and
// customer names.
func (c *Client) SearchBookings(ctx context.Context, query string) ([]models.Booking, error) {
	var out []models.Booking
	path := "/api/bookings/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBooking fetches one booking by id.
func (c *Client) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBooking sends the non-empty fields of form and returns the updated booking.
func (c *Client) UpdateBooking(ctx context.Context, id string, form BookingForm) (*models.Booking, error) {
	var out mutationResponse
	if err := c.do(ctx, http.MethodPut, "/api/bookings/"+url.PathEscape(id), form, &out); err != nil {
		return nil, err
	}
	return out.Booking, nil
}

// DeleteBooking removes a booking and returns the removed record.
func (c *Client) DeleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	var out mutationResponse
	if err := c.do(ctx, http.MethodDelete, "/api/bookings/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Booking, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request failed: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var payload utils.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
		apiErr.Detail = payload.Error
	}
	return apiErr
}
