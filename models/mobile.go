package models

import (
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Mobile is a customer phone number kept as its digits, so leading zeros
// survive. It is written to MongoDB as a string but also reads the numeric
// values stored by earlier versions of the service.
type Mobile string

// UnmarshalBSONValue accepts string, int32, int64 and whole double values.
func (m *Mobile) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}
	switch t {
	case bsontype.String:
		s, ok := v.StringValueOK()
		if !ok {
			return fmt.Errorf("customerMobile: malformed string")
		}
		*m = Mobile(s)
	case bsontype.Int32:
		i, ok := v.Int32OK()
		if !ok {
			return fmt.Errorf("customerMobile: malformed int32")
		}
		*m = Mobile(strconv.FormatInt(int64(i), 10))
	case bsontype.Int64:
		i, ok := v.Int64OK()
		if !ok {
			return fmt.Errorf("customerMobile: malformed int64")
		}
		*m = Mobile(strconv.FormatInt(i, 10))
	case bsontype.Double:
		f, ok := v.DoubleOK()
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return fmt.Errorf("customerMobile: cannot read %v as a phone number", f)
		}
		*m = Mobile(strconv.FormatFloat(f, 'f', -1, 64))
	case bsontype.Null, bsontype.Undefined:
		*m = ""
	default:
		return fmt.Errorf("customerMobile: cannot decode BSON %s", t)
	}
	return nil
}
