package view

import (
	"fmt"
	"testing"
	"time"

	"carwash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func b(id, carType, washType string, date time.Time, price float64) models.Booking {
	return models.Booking{ID: id, CarType: carType, CarWashType: washType, BookingDate: date, CarWashPrice: price}
}

func idsOf(bookings []models.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, bk.ID)
	}
	return out
}

func sample() []models.Booking {
	return []models.Booking{
		b("a", "Sedan", "Basic", day(3), 10),
		b("b", "SUV", "Premium", day(1), 30),
		b("c", "Sedan", "Premium", day(2), 20),
		b("d", "SUV", "Basic", day(2), 10),
	}
}

func TestListState_DefaultsToNewestFirst(t *testing.T) {
	s := NewListState(sample())
	assert.Equal(t, SortByDate, s.SortBy())
	assert.Equal(t, Descending, s.Order())
	assert.Equal(t, 1, s.Page())
	// c and d share a date and keep their input order.
	assert.Equal(t, []string{"a", "c", "d", "b"}, idsOf(s.Visible()))
}

func TestListState_SortByPriceIsStable(t *testing.T) {
	s := NewListState(sample())

	s.SetSort(SortByPrice, Ascending)
	assert.Equal(t, []string{"a", "d", "c", "b"}, idsOf(s.Visible()))

	s.ToggleOrder()
	assert.Equal(t, Descending, s.Order())
	assert.Equal(t, []string{"b", "c", "a", "d"}, idsOf(s.Visible()))
}

func TestListState_UnknownSortKeepsInputOrder(t *testing.T) {
	s := NewListState(sample())
	s.SetSort("colour", Ascending)
	assert.Equal(t, []string{"a", "b", "c", "d"}, idsOf(s.Visible()))
}

func TestListState_Filters(t *testing.T) {
	s := NewListState(sample())

	s.SetCarTypeFilter("Sedan")
	assert.Equal(t, []string{"a", "c"}, idsOf(s.Visible()))

	s.SetWashTypeFilter("Premium")
	assert.Equal(t, []string{"c"}, idsOf(s.Visible()))

	s.SetCarTypeFilter("")
	assert.Equal(t, []string{"c", "b"}, idsOf(s.Visible()))

	s.SetWashTypeFilter("Deluxe")
	assert.Empty(t, s.Visible())
	assert.Equal(t, 1, s.TotalPages())
	assert.Empty(t, s.PageItems())
}

func TestListState_Pagination(t *testing.T) {
	var bookings []models.Booking
	for i := 1; i <= 14; i++ {
		bookings = append(bookings, b(fmt.Sprintf("%02d", i), "Sedan", "Basic", day(i), float64(i)))
	}
	s := NewListState(bookings)
	s.SetSort(SortByPrice, Ascending)

	require.Equal(t, 3, s.TotalPages())
	assert.Len(t, s.PageItems(), PageSize)
	assert.Equal(t, "01", s.PageItems()[0].ID)

	s.SetPage(3)
	assert.Equal(t, []string{"13", "14"}, idsOf(s.PageItems()))

	s.NextPage()
	assert.Equal(t, 3, s.Page())
	s.SetPage(-4)
	assert.Equal(t, 1, s.Page())
	s.PrevPage()
	assert.Equal(t, 1, s.Page())
	s.SetPage(99)
	assert.Equal(t, 3, s.Page())
}

func TestListState_ChangesResetPage(t *testing.T) {
	var bookings []models.Booking
	for i := 1; i <= 13; i++ {
		bookings = append(bookings, b(fmt.Sprintf("%02d", i), "Sedan", "Basic", day(i), 1))
	}
	s := NewListState(bookings)

	changes := map[string]func(){
		"car type":  func() { s.SetCarTypeFilter("Sedan") },
		"wash type": func() { s.SetWashTypeFilter("Basic") },
		"sort":      func() { s.SetSort(SortByPrice, Ascending) },
		"toggle":    s.ToggleOrder,
		"data":      func() { s.SetBookings(bookings) },
	}
	for name, change := range changes {
		s.SetPage(3)
		require.Equal(t, 3, s.Page())
		change()
		assert.Equal(t, 1, s.Page(), name)
	}
}

func TestListState_CopiesInput(t *testing.T) {
	in := sample()
	s := NewListState(in)
	in[0].CarType = "Truck"
	assert.Equal(t, []string{"SUV", "Sedan"}, UniqueCarTypes(s.Visible()))
}

func TestUniqueTypes(t *testing.T) {
	assert.Equal(t, []string{"SUV", "Sedan"}, UniqueCarTypes(sample()))
	assert.Equal(t, []string{"Basic", "Premium"}, UniqueWashTypes(sample()))
	assert.Equal(t, []string{}, UniqueCarTypes(nil))
}

func TestDates(t *testing.T) {
	wire, err := FormDateToWire("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "01/03/2025", wire)

	_, err = FormDateToWire("01/03/2025")
	assert.Error(t, err)

	bk := models.Booking{BookingDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "01/03/2025", WireDateFromBooking(bk))
	assert.Equal(t, "2025-03-01", FormDateFromBooking(bk))
	assert.Equal(t, "March 1, 2025", DisplayDate(bk))

	assert.Empty(t, WireDateFromBooking(models.Booking{}))
	assert.Empty(t, FormDateFromBooking(models.Booking{}))
	assert.Empty(t, DisplayDate(models.Booking{}))
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, []StatusOption{
		{Value: "pending", Label: "Pending"},
		{Value: "confirmed", Label: "Confirmed"},
		{Value: "completed", Label: "Completed"},
		{Value: "cancelled", Label: "Cancelled"},
	}, StatusOptions())

	assert.Equal(t, "Completed", StatusLabel("COMPLETED"))
	assert.Equal(t, "on-hold", StatusLabel("on-hold"))
	assert.Equal(t, "", StatusLabel(""))

	assert.Equal(t, BadgeColors{Background: "#fee2e2", Text: "#dc2626"}, StatusBadge("Cancelled"))
	assert.Equal(t, BadgeColors{Background: "#f3f4f6", Text: "#374151"}, StatusBadge("on-hold"))
}
