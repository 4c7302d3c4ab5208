// Package services contains domain services that span multiple aggregates.
package services
