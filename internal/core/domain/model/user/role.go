package user

import (
	"fmt"

	"msosihub/internal/pkg/errs"
)

// Role represents the actor role attached to a user account.
// The role scopes which workflow transitions the user may perform:
// customers check out and cancel their own orders, restaurant owners advance
// preparation, drivers claim and deliver, and admins override.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and pays from the prepaid wallet.
	RoleCustomer

	// RoleRestaurant owns a restaurant and advances order preparation.
	RoleRestaurant

	// RoleDriver claims ready orders and completes deliveries.
	RoleDriver

	// RoleAdmin may override order state and manage users and restaurants.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleCustomer:   "customer",
		RoleRestaurant: "restaurant",
		RoleDriver:     "driver",
		RoleAdmin:      "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:   "customer",
		RoleRestaurant: "restaurant",
		RoleDriver:     "driver",
		RoleAdmin:      "admin",
	}
}

// RoleFromString parses a role from its string representation.
// Used when reconstructing users from persistence or parsing API input.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are: customer, restaurant, driver, admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements the fmt.Stringer interface and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
