// Package order contains the Order aggregate and its fulfillment lifecycle.
//
// An order is created from cart snapshot data at checkout and carries its own
// copies of item titles and prices, so catalog edits never affect past orders.
// The Status state machine owns all transition and authorization rules:
// restaurants advance preparation, drivers claim and complete deliveries,
// customers cancel, and admins override through dedicated methods.
package order
