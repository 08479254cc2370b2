package concept

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// DataType is the value type of an attribute type.
type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeLong    DataType = "long"
	DataTypeDouble  DataType = "double"
	DataTypeBoolean DataType = "boolean"
	DataTypeDate    DataType = "date"
)

// ErrInvalidValue is returned when a value cannot be represented in a data type.
var ErrInvalidValue = errors.New("invalid value")

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDataType returns the DataType named s.
func ParseDataType(s string) (DataType, error) {
	switch dt := DataType(s); dt {
	case DataTypeString, DataTypeLong, DataTypeDouble, DataTypeBoolean, DataTypeDate:
		return dt, nil
	default:
		return "", fmt.Errorf("unknown data type '%s'", s)
	}
}

// Normalize converts v to the canonical Go representation of dt:
// string, int64, float64, bool or time.Time (UTC).
func (dt DataType) Normalize(v any) (any, error) {
	switch dt {
	case DataTypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case DataTypeLong:
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int32:
			return int64(n), nil
		case int64:
			return n, nil
		case float64:
			if n == math.Trunc(n) && !math.IsInf(n, 0) {
				return int64(n), nil
			}
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return i, nil
			}
		}
	case DataTypeDouble:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, nil
			}
		}
	case DataTypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case DataTypeDate:
		switch t := v.(type) {
		case time.Time:
			return t.UTC(), nil
		case string:
			for _, layout := range dateLayouts {
				if parsed, err := time.Parse(layout, t); err == nil {
					return parsed.UTC(), nil
				}
			}
		}
	default:
		return nil, fmt.Errorf("unknown data type '%s': %w", dt, ErrInvalidValue)
	}

	return nil, fmt.Errorf("value '%v' (%T) is not a %s: %w", v, v, dt, ErrInvalidValue)
}

// Encode renders a value of dt as a string that sorts and compares like the value
// itself for equality purposes.
func (dt DataType) Encode(v any) (string, error) {
	n, err := dt.Normalize(v)
	if err != nil {
		return "", err
	}

	switch val := n.(type) {
	case string:
		return val, nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	default:
		return "", fmt.Errorf("unexpected normalized value %T: %w", n, ErrInvalidValue)
	}
}

// Decode is the inverse of Encode.
func (dt DataType) Decode(s string) (any, error) {
	switch dt {
	case DataTypeString:
		return s, nil
	case DataTypeLong:
		return strconv.ParseInt(s, 10, 64)
	case DataTypeDouble:
		return strconv.ParseFloat(s, 64)
	case DataTypeBoolean:
		return strconv.ParseBool(s)
	case DataTypeDate:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, err
		}
		return t.UTC(), nil
	default:
		return nil, fmt.Errorf("unknown data type '%s': %w", dt, ErrInvalidValue)
	}
}

// ValuesEqual compares two values, treating numbers of different Go types and
// equal instants in different locations as equal.
func ValuesEqual(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}

	fa, aNum := asFloat(a)
	fb, bNum := asFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}

	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
