package enums

import "fmt"

// StockMovementType classifies an inventory movement record.
type StockMovementType string

const (
	StockMovementIn         StockMovementType = "IN"
	StockMovementOut        StockMovementType = "OUT"
	StockMovementAdjustment StockMovementType = "ADJUSTMENT"
)

var validStockMovementTypes = []StockMovementType{
	StockMovementIn,
	StockMovementOut,
	StockMovementAdjustment,
}

// StockMovementTypes returns every recognized type in declaration order.
func StockMovementTypes() []StockMovementType {
	out := make([]StockMovementType, len(validStockMovementTypes))
	copy(out, validStockMovementTypes)
	return out
}

// String implements fmt.Stringer.
func (m StockMovementType) String() string {
	return string(m)
}

// IsValid reports whether the movement type is recognized.
func (m StockMovementType) IsValid() bool {
	for _, candidate := range validStockMovementTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseStockMovementType converts a raw string into a StockMovementType.
func ParseStockMovementType(value string) (StockMovementType, error) {
	for _, candidate := range validStockMovementTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock movement type %q", value)
}
