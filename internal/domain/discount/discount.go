package discount

import (
	"fmt"
	"regexp"

	"github.com/go-faster/errors"
)

// Interval is the issuance interval N: a new code may be issued once per
// completed block of N orders, and an unredeemed code lapses once the order
// count advances more than N past its issuance point.
const Interval = 5

// Sentinel errors for discount code validation and issuance.
var (
	// ErrInvalidOrUsed is returned when a supplied code matches no unused
	// registry entry.
	ErrInvalidOrUsed = errors.New("invalid or already used discount code")
	// ErrExpired is returned when a code has lapsed relative to the current
	// order count. Detecting the lapse consumes the code.
	ErrExpired = errors.New("discount code has expired")
	// ErrNoOrders is returned when code generation is requested before any
	// order has been placed.
	ErrNoOrders = errors.New("no orders exist yet, cannot generate discount code")
	// ErrNotAtBoundary is returned when the order count is not a multiple of
	// the issuance interval.
	ErrNotAtBoundary = fmt.Errorf("discount code can only be generated after every %dth order", Interval)
	// ErrInvalidFormat is returned when a custom code violates the allowed
	// character class.
	ErrInvalidFormat = errors.New("discount code must contain only uppercase letters and numbers")
)

// AlreadyAvailableError indicates an unused code is still pending; at most one
// unused code may exist at a time.
type AlreadyAvailableError struct {
	Code string
}

func (e *AlreadyAvailableError) Error() string {
	return fmt.Sprintf("discount code %s is already available", e.Code)
}

// AlreadyExistsError indicates the requested code string was issued before.
// Codes are never reused, even after expiry.
type AlreadyExistsError struct {
	Code string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("discount code %s already exists", e.Code)
}

// Code is an issued discount code. OrderNumber records the order count at the
// moment of issuance and drives lapse detection. Used is the only mutable
// field: it flips to true on redemption or on lapse detection, and the code is
// retained in the registry forever after.
type Code struct {
	Code        string
	Used        bool
	OrderNumber int
}

// DefaultCode returns the deterministic code name for automatic issuance at
// the given order count.
func DefaultCode(orderCount int) string {
	return fmt.Sprintf("DISCOUNT%d", orderCount)
}

var customCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ValidCustomCode reports whether a caller-supplied code matches the allowed
// character class: non-empty, uppercase letters and digits only.
func ValidCustomCode(code string) bool {
	return customCodePattern.MatchString(code)
}
