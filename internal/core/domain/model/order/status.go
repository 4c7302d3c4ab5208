package order

import (
	"fmt"

	"msosihub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	    │            │             │           │              │
//	    └────────────┴─────────────┴───────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no further transitions are allowed.
// Wallet checkout creates orders directly in Confirmed; Pending exists for
// payment methods that require external confirmation.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status for orders awaiting payment confirmation.
	// The wallet payment path never produces it; it exists for other payment rails.
	StatusPending

	// StatusConfirmed indicates payment succeeded and the restaurant should start.
	// Wallet checkout creates orders directly in this status.
	StatusConfirmed

	// StatusPreparing indicates the restaurant is preparing the order.
	StatusPreparing

	// StatusReady indicates the order awaits pickup by a driver.
	StatusReady

	// StatusOutForDelivery indicates a driver has claimed the order.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the order was abandoned before delivery.
	// Reachable from any non-terminal state; terminal itself.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusPreparing:      "preparing",
		StatusReady:          "ready",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusPreparing:      "preparing",
		StatusReady:          "ready",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// StatusFromString parses a status from its persisted string representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// AdvancePreparation transitions the status one preparation step forward.
//
// Valid transitions:
//   - Confirmed -> Preparing (restaurant starts cooking)
//   - Preparing -> Ready (order awaits pickup)
//
// Returns the next status, or an error if the current status is not a
// preparation stage.
func (s Status) AdvancePreparation() (Status, error) {
	switch s {
	case StatusConfirmed:
		return StatusPreparing, nil
	case StatusPreparing:
		return StatusReady, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to advance preparation", s.String()),
		)
	}
}

// Claim transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Ready -> OutForDelivery (driver picked up the order)
//
// Returns the next status, or an error for any other current status.
func (s Status) Claim() (Status, error) {
	if s != StatusReady {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}

	return StatusOutForDelivery, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered (driver handed over the order)
//
// Delivered is a terminal state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != StatusOutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}

	return StatusCancelled, nil
}
