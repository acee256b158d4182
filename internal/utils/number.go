package util

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Number is an arbitrary-precision value as kept by the record stores. It is
// written to JSON as an integer when whole, otherwise as a float.
type Number struct {
	decimal.Decimal
}

func NewNumber(i int64) Number {
	return Number{decimal.NewFromInt(i)}
}

func NumberFromFloat(f float64) Number {
	return Number{decimal.NewFromFloat(f)}
}

func ParseNumber(s string) (Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Number{d}, nil
}

func (n Number) Add(other Number) Number {
	return Number{n.Decimal.Add(other.Decimal)}
}

func (n Number) Equal(other Number) bool {
	return n.Decimal.Equal(other.Decimal)
}

// Native returns int64 for whole values, float64 for fractional ones and a
// json.Number for whole values outside the int64 range.
func (n Number) Native() interface{} {
	if n.Decimal.IsInteger() {
		if i := n.Decimal.BigInt(); i.IsInt64() {
			return i.Int64()
		}
		return json.Number(n.Decimal.BigInt().String())
	}
	f, _ := n.Decimal.Float64()
	return f
}

// MarshalJSON writes whole values as their exact integer text, so values
// beyond int64 keep every digit.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.Decimal.IsInteger() {
		return []byte(n.Decimal.BigInt().String()), nil
	}
	return json.Marshal(n.Native())
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if s == "" {
		n.Decimal = decimal.Zero
		return nil
	}
	parsed, err := ParseNumber(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n Number) Value() (driver.Value, error) {
	return n.Decimal.String(), nil
}

func (n *Number) Scan(value interface{}) error {
	if value == nil {
		n.Decimal = decimal.Zero
		return nil
	}
	return n.Decimal.Scan(value)
}

func (Number) GormDataType() string {
	return "numeric"
}

func (n Number) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: n.Decimal.String()}, nil
}

func (n *Number) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		parsed, err := ParseNumber(v.Value)
		if err != nil {
			return err
		}
		*n = parsed
	case *types.AttributeValueMemberS:
		parsed, err := ParseNumber(v.Value)
		if err != nil {
			return err
		}
		*n = parsed
	case *types.AttributeValueMemberNULL:
		n.Decimal = decimal.Zero
	default:
		return fmt.Errorf("cannot unmarshal %T into Number", av)
	}
	return nil
}
