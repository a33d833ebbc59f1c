package mapping

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:    d.UserID,
		Name:      d.Name,
		Email:     d.Email,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
	}
}
