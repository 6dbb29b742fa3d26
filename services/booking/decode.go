package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"carwash/models"
	"carwash/utils"
)

// createFields are accepted on create: every schema field plus an optional status.
var createFields = append(append([]string{}, models.RequiredFields...), models.FieldStatus)

// updateFields are the keys an update may change. _id and unknown keys are ignored.
var updateFields = []string{
	models.FieldStatus,
	models.FieldCustomerName,
	models.FieldCustomerMobile,
	models.FieldCustomerEmail,
	models.FieldCarName,
	models.FieldCarType,
	models.FieldCarModel,
	models.FieldCarWashPrice,
	models.FieldCarWashDuration,
	models.FieldCarWashType,
	models.FieldBookingDate,
}

// decodePatch turns the allowed keys of body into typed patch values. Every
// bad field is reported, not just the first.
func decodePatch(body Fields, allowed []string) (models.BookingPatch, error) {
	patch := models.BookingPatch{}
	verr := &models.ValidationError{}
	for _, field := range allowed {
		raw, ok := body[field]
		if !ok {
			continue
		}
		value, err := decodeField(field, raw)
		if err != nil {
			verr.Fields = append(verr.Fields, models.FieldError{Field: field, Reason: err.Error()})
			continue
		}
		patch[field] = value
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return patch, nil
}

func decodeField(field string, raw json.RawMessage) (interface{}, error) {
	v, err := decodeScalar(raw)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.New("must not be null")
	}

	switch field {
	case models.FieldBookingDate:
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("must be a DD/MM/YYYY string")
		}
		t, err := utils.ParseWireDate(s)
		if err != nil {
			return nil, errors.New("must be a valid DD/MM/YYYY date")
		}
		return t, nil

	case models.FieldCarWashPrice:
		return toNumber(v)

	case models.FieldCustomerMobile:
		switch val := v.(type) {
		case json.Number:
			return val.String(), nil
		case string:
			return strings.TrimSpace(val), nil
		}
		return nil, errors.New("must be a number or a string of digits")

	default:
		switch val := v.(type) {
		case string:
			return val, nil
		case json.Number:
			return val.String(), nil
		}
		return nil, errors.New("must be a string")
	}
}

// decodeScalar decodes raw keeping numbers as json.Number. Objects and
// arrays are rejected.
func decodeScalar(raw json.RawMessage) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, errors.New("is not valid JSON")
	}
	switch v.(type) {
	case nil, string, json.Number, bool:
		return v, nil
	}
	return nil, errors.New("must be a scalar value")
}

// toNumber accepts JSON numbers and numeric strings, since HTML forms post
// every input as text.
func toNumber(v interface{}) (float64, error) {
	var s string
	switch val := v.(type) {
	case json.Number:
		s = val.String()
	case string:
		s = strings.TrimSpace(val)
		if s == "" {
			return 0, errors.New("is required")
		}
	default:
		return 0, errors.New("must be a number")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("must be a number")
	}
	return f, nil
}
