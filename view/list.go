// Package view holds the presentation state of the booking UI: filtering,
// sorting and pagination of booking lists, plus form and display helpers.
package view

import (
	"sort"

	"carwash/models"
)

// PageSize is the number of bookings shown per page.
const PageSize = 6

// SortKey selects the field a list is ordered by.
type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByPrice SortKey = "price"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ListState is the filter, sort and page selection of a booking list.
// Changing the data, a filter or the sort returns to page 1.
type ListState struct {
	bookings []models.Booking

	carType  string
	washType string
	sortBy   SortKey
	order    SortOrder
	page     int
}

// NewListState starts on page 1, sorted by date, newest first, with no filters.
func NewListState(bookings []models.Booking) *ListState {
	s := &ListState{sortBy: SortByDate, order: Descending, page: 1}
	s.SetBookings(bookings)
	return s
}

// SetBookings replaces the underlying data.
func (s *ListState) SetBookings(bookings []models.Booking) {
	s.bookings = append([]models.Booking(nil), bookings...)
	s.page = 1
}

// SetCarTypeFilter keeps only bookings with exactly this car type. Empty clears it.
func (s *ListState) SetCarTypeFilter(carType string) {
	s.carType = carType
	s.page = 1
}

// SetWashTypeFilter keeps only bookings with exactly this wash type. Empty clears it.
func (s *ListState) SetWashTypeFilter(washType string) {
	s.washType = washType
	s.page = 1
}

// SetSort changes the sort key and direction. Unknown keys leave the order
// of the data untouched.
func (s *ListState) SetSort(key SortKey, order SortOrder) {
	s.sortBy = key
	s.order = order
	s.page = 1
}

// ToggleOrder flips between ascending and descending.
func (s *ListState) ToggleOrder() {
	if s.order == Ascending {
		s.SetSort(s.sortBy, Descending)
		return
	}
	s.SetSort(s.sortBy, Ascending)
}

func (s *ListState) CarTypeFilter() string  { return s.carType }
func (s *ListState) WashTypeFilter() string { return s.washType }
func (s *ListState) SortBy() SortKey        { return s.sortBy }
func (s *ListState) Order() SortOrder       { return s.order }
func (s *ListState) Page() int              { return s.page }

// SetPage moves to page n, clamped to the available pages.
func (s *ListState) SetPage(n int) {
	switch total := s.TotalPages(); {
	case n < 1:
		s.page = 1
	case n > total:
		s.page = total
	default:
		s.page = n
	}
}

// NextPage and PrevPage step one page, staying in range.
func (s *ListState) NextPage() { s.SetPage(s.page + 1) }
func (s *ListState) PrevPage() { s.SetPage(s.page - 1) }

// Visible returns the filtered, sorted bookings across all pages.
func (s *ListState) Visible() []models.Booking {
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if s.carType != "" && b.CarType != s.carType {
			continue
		}
		if s.washType != "" && b.CarWashType != s.washType {
			continue
		}
		out = append(out, b)
	}

	less := s.less()
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func (s *ListState) less() func(a, b models.Booking) bool {
	var asc func(a, b models.Booking) bool
	switch s.sortBy {
	case SortByDate:
		asc = func(a, b models.Booking) bool { return a.BookingDate.Before(b.BookingDate) }
	case SortByPrice:
		asc = func(a, b models.Booking) bool { return a.CarWashPrice < b.CarWashPrice }
	default:
		return nil
	}
	if s.order == Descending {
		return func(a, b models.Booking) bool { return asc(b, a) }
	}
	return asc
}

// TotalPages is at least 1, so an empty list still has a page to show.
func (s *ListState) TotalPages() int {
	n := len(s.Visible())
	if n == 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// PageItems returns the bookings on the current page.
func (s *ListState) PageItems() []models.Booking {
	visible := s.Visible()
	start := (s.page - 1) * PageSize
	if start >= len(visible) {
		return []models.Booking{}
	}
	end := start + PageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// UniqueCarTypes returns the distinct car types in bookings, sorted.
func UniqueCarTypes(bookings []models.Booking) []string {
	return unique(bookings, func(b models.Booking) string { return b.CarType })
}

// UniqueWashTypes returns the distinct wash types in bookings, sorted.
func UniqueWashTypes(bookings []models.Booking) []string {
	return unique(bookings, func(b models.Booking) string { return b.CarWashType })
}

func unique(bookings []models.Booking, key func(models.Booking) string) []string {
	seen := make(map[string]struct{}, len(bookings))
	out := make([]string, 0)
	for _, b := range bookings {
		k := key(b)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
