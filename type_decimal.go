package dca

import "github.com/shopspring/decimal"

// D is a convenient factory for decimal.Decimal.
//
// Floats go through their shortest representation, so D(0.1) is exactly 0.1.
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | string | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case string:
		return decimal.RequireFromString(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

var (
	hundred = decimal.NewFromInt(100)

	// DefaultDrawdown is the drawdown percentage of a new asset.
	DefaultDrawdown = decimal.RequireFromString("15.0")
)

// some returns a valid NullDecimal.
func some(d decimal.Decimal) decimal.NullDecimal { return decimal.NewNullDecimal(d) }

// none is the absent NullDecimal.
var none = decimal.NullDecimal{}
