package models

import (
	"fmt"
	"sort"
	"time"
)

// BookingPatch maps field names to new values. A key that is absent leaves the
// field untouched, so zero values such as a 0 price can be set explicitly.
//
// Values must already be typed: string for text fields and customerMobile,
// float64 for carWashPrice and time.Time for bookingDate.
type BookingPatch map[string]interface{}

// Has reports whether field is present in the patch.
func (p BookingPatch) Has(field string) bool {
	_, ok := p[field]
	return ok
}

// Fields returns the patched field names in sorted order.
func (p BookingPatch) Fields() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply merges the patch onto b. Unknown keys or mistyped values are rejected
// and leave b unchanged.
func (p BookingPatch) Apply(b *Booking) error {
	merged := *b
	for field, value := range p {
		if err := setField(&merged, field, value); err != nil {
			return err
		}
	}
	*b = merged
	return nil
}

func setField(b *Booking, field string, value interface{}) error {
	if field == FieldBookingDate {
		t, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("patch field %s: expected time.Time, got %T", field, value)
		}
		b.BookingDate = t
		return nil
	}
	if field == FieldCarWashPrice {
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("patch field %s: expected float64, got %T", field, value)
		}
		b.CarWashPrice = f
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("patch field %s: expected string, got %T", field, value)
	}
	switch field {
	case FieldCarName:
		b.CarName = s
	case FieldCarModel:
		b.CarModel = s
	case FieldCarType:
		b.CarType = s
	case FieldCustomerName:
		b.CustomerName = s
	case FieldCustomerEmail:
		b.CustomerEmail = s
	case FieldCustomerMobile:
		b.CustomerMobile = Mobile(s)
	case FieldCarWashType:
		b.CarWashType = s
	case FieldCarWashDuration:
		b.CarWashDuration = s
	case FieldStatus:
		b.Status = s
	default:
		return fmt.Errorf("patch field %s is not a booking field", field)
	}
	return nil
}

// NewBookingFromPatch builds a booking from a patch holding every required
// field. Status defaults to pending when absent or empty.
func NewBookingFromPatch(p BookingPatch) (*Booking, error) {
	missing := &ValidationError{}
	for _, field := range RequiredFields {
		if !p.Has(field) {
			missing.Fields = append(missing.Fields, FieldError{Field: field, Reason: "is required"})
		}
	}
	if len(missing.Fields) > 0 {
		return nil, missing
	}

	b := &Booking{}
	if err := p.Apply(b); err != nil {
		return nil, err
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return b, nil
}
