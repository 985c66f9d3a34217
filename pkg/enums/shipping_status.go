package enums

import "fmt"

// ShippingStatus represents the delivery lifecycle of a shipping record.
type ShippingStatus string

const (
	ShippingStatusPending    ShippingStatus = "Pending"
	ShippingStatusProcessing ShippingStatus = "Processing"
	ShippingStatusShipped    ShippingStatus = "Shipped"
	ShippingStatusInTransit  ShippingStatus = "In Transit"
	ShippingStatusDelivered  ShippingStatus = "Delivered"
	ShippingStatusCancelled  ShippingStatus = "Cancelled"
)

var validShippingStatuses = []ShippingStatus{
	ShippingStatusPending,
	ShippingStatusProcessing,
	ShippingStatusShipped,
	ShippingStatusInTransit,
	ShippingStatusDelivered,
	ShippingStatusCancelled,
}

// ShippingStatuses returns every recognized status in declaration order.
func ShippingStatuses() []ShippingStatus {
	out := make([]ShippingStatus, len(validShippingStatuses))
	copy(out, validShippingStatuses)
	return out
}

// String implements fmt.Stringer.
func (s ShippingStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is recognized.
func (s ShippingStatus) IsValid() bool {
	for _, candidate := range validShippingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingStatus converts a raw string into a ShippingStatus.
func ParseShippingStatus(value string) (ShippingStatus, error) {
	for _, candidate := range validShippingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping status %q", value)
}
