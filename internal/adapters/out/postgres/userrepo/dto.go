package userrepo

import (
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/account"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is a data transfer object for the User aggregate.
type UserDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"type:varchar(255);uniqueIndex"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex"`
	HashedPassword string    `gorm:"type:varchar(255)"`
	Status         int       `gorm:"index"`
}

// TableName overrides the table name used by GORM.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:             aggregate.ID().Bytes(),
		Username:       aggregate.Username(),
		Email:          aggregate.Email(),
		HashedPassword: aggregate.HashedPassword(),
		Status:         int(aggregate.Status()),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(
		id,
		dto.Username,
		dto.Email,
		dto.HashedPassword,
		account.Status(dto.Status),
	)
}
