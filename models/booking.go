package models

import "time"

// Booking is a single car-wash reservation.
type Booking struct {
	ID              string    `bson:"_id" json:"_id"`                                                  // Unique booking identifier (UUID, or ObjectID hex for older records)
	CarName         string    `bson:"carName" json:"carName" validate:"required"`                      // e.g., "Toyota"
	CarModel        string    `bson:"carModel" json:"carModel" validate:"required"`                    // e.g., "Corolla"
	CarType         string    `bson:"carType" json:"carType" validate:"required"`                      // e.g., "Sedan", "SUV"
	CustomerName    string    `bson:"customerName" json:"customerName" validate:"required"`            // Customer full name
	CustomerEmail   string    `bson:"customerEmail" json:"customerEmail" validate:"required"`          // Contact email
	CustomerMobile  Mobile    `bson:"customerMobile" json:"customerMobile" validate:"required,number"` // Digits only, leading zeros kept
	BookingDate     time.Time `bson:"bookingDate" json:"bookingDate" validate:"required"`              // UTC midnight of the booked day
	CarWashType     string    `bson:"carWashType" json:"carWashType" validate:"required"`              // e.g., "Basic", "Premium"
	CarWashDuration string    `bson:"carWashDuration" json:"carWashDuration" validate:"required"`      // Free text, e.g., "30 mins"
	CarWashPrice    float64   `bson:"carWashPrice" json:"carWashPrice" validate:"gte=0"`               // Price charged for the wash
	Status          string    `bson:"status" json:"status"`                                            // Open string, see status.go
}

// Booking field names as they appear in documents and on the wire.
const (
	FieldCarName         = "carName"
	FieldCarModel        = "carModel"
	FieldCarType         = "carType"
	FieldCustomerName    = "customerName"
	FieldCustomerEmail   = "customerEmail"
	FieldCustomerMobile  = "customerMobile"
	FieldBookingDate     = "bookingDate"
	FieldCarWashType     = "carWashType"
	FieldCarWashDuration = "carWashDuration"
	FieldCarWashPrice    = "carWashPrice"
	FieldStatus          = "status"
)

// RequiredFields lists the fields every booking must carry at creation.
var RequiredFields = []string{
	FieldCarName,
	FieldCarModel,
	FieldCarType,
	FieldCustomerName,
	FieldCustomerEmail,
	FieldCustomerMobile,
	FieldBookingDate,
	FieldCarWashType,
	FieldCarWashDuration,
	FieldCarWashPrice,
}
