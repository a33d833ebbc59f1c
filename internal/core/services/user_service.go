package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/homeledger-backend/internal/apperrors"
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// userService resolves household member ids to user records.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// EnsureHouseholdUser resolves a member id to its user record, creating the
// record on first use. When the roster's canonical name has changed since the
// record was created, the stored name is patched. At most one insert or one
// patch happens per call.
func (s *userService) EnsureHouseholdUser(ctx context.Context, memberID string) (*domain.User, error) {
	member, ok := domain.MemberByID(memberID)
	if !ok {
		return nil, fmt.Errorf("member %q: %w", memberID, apperrors.ErrUnknownMember)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, member.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up household user: %w", err)
	}

	if existing != nil {
		if existing.Name != member.Name {
			if err := s.userRepo.UpdateUserName(ctx, existing.UserID, member.Name); err != nil {
				return nil, fmt.Errorf("failed to update household user name: %w", err)
			}
			existing.Name = member.Name
		}
		return existing, nil
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Name:      member.Name,
		Email:     member.Email,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create household user: %w", err)
	}
	return &user, nil
}

// GetHouseholdUser is the read-only resolver used by pure queries; it never
// writes.
func (s *userService) GetHouseholdUser(ctx context.Context, memberID string) (*domain.User, error) {
	member, ok := domain.MemberByID(memberID)
	if !ok {
		return nil, fmt.Errorf("member %q: %w", memberID, apperrors.ErrUnknownMember)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, member.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up household user: %w", err)
	}
	return user, nil
}
