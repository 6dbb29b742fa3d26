package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carwash/client"
	bookingRepo "carwash/database/repository/booking"
	"carwash/handlers"
	"carwash/models"
	"carwash/routes"
	"carwash/services/booking"
	"carwash/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	repo := bookingRepo.NewMemoryBookingRepo()
	svc, err := booking.NewDefaultBookingService(repo, logger)
	require.NoError(t, err)
	hb := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(svc, logger),
		handlers.NewHealthHandler(utils.NewHealthMonitor(repo, time.Minute, logger)),
		nil,
	)

	srv := httptest.NewServer(routes.NewRouter(hb, routes.Options{}, logger))
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", client.WithHTTPClient(srv.Client()))
}

func form(carName, customer string) client.BookingForm {
	return client.BookingForm{
		CarName:         carName,
		CarModel:        "Model",
		CarType:         "SUV",
		CustomerName:    customer,
		CustomerEmail:   "c@example.com",
		CustomerMobile:  "0700000000",
		BookingDate:     "10/06/2025",
		CarWashType:     "Basic",
		CarWashDuration: "30 mins",
		CarWashPrice:    "12",
	}
}

func TestClient_CRUD(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	created, err := c.CreateBooking(ctx, form("Toyota", "Asha"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, 12.0, created.CarWashPrice)

	_, err = c.CreateBooking(ctx, form("Mazda", "Ben"))
	require.NoError(t, err)

	all, err := c.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := c.SearchBookings(ctx, "ASH")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	updated, err := c.UpdateBooking(ctx, created.ID, client.BookingForm{Status: models.StatusCompleted, CarWashPrice: "20"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, 20.0, updated.CarWashPrice)
	assert.Equal(t, "Toyota", updated.CarName)

	pending, err := c.ListPendingBookings(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Mazda", pending[0].CarName)

	got, err := c.GetBooking(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	removed, err := c.DeleteBooking(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = c.GetBooking(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestClient_APIErrors(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	bad := form("Toyota", "Asha")
	bad.CustomerMobile = ""
	_, err := c.CreateBooking(ctx, bad)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Booking failed", apiErr.Message)
	assert.Contains(t, apiErr.Detail, "customerMobile")

	_, err = c.SearchBookings(ctx, "   ")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Search query is required", apiErr.Message)

	_, err = c.DeleteBooking(ctx, "missing")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, client.IsNotFound(nil))
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).ListBookings(context.Background())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}
