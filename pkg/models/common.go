package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID string
func NewUUID() string {
	return uuid.New().String()
}

// NewCustomerID generates a random customer token for single predictions,
// e.g. CUST_1A2B3C4D.
func NewCustomerID() string {
	return "CUST_" + strings.ToUpper(uuid.New().String()[:8])
}

// BatchCustomerID returns the sequential position-based token used for batch
// items, e.g. CUST_0001 for index 0.
func BatchCustomerID(index int) string {
	return fmt.Sprintf("CUST_%04d", index+1)
}
