// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The wallet balance lives on the user row so wallet mutations are single
// conditional updates.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Email         string `gorm:"uniqueIndex"`
	Phone         string
	Role          string `gorm:"index"`
	WalletBalance int64  `gorm:"not null;default:0"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		Role:          aggregate.Role().String(),
		WalletBalance: aggregate.WalletBalance().Amount(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.WalletBalance)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone, role, balance)
}
