package services

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// HouseholdResolverSvc resolves household member identifiers to user records.
type HouseholdResolverSvc interface {
	// EnsureHouseholdUser maps a member id to its user record, creating the
	// record on first use and patching the name when the roster changed.
	// Returns apperrors.ErrUnknownMember for ids outside the household.
	EnsureHouseholdUser(ctx context.Context, memberID string) (*domain.User, error)

	// GetHouseholdUser is the read-only variant used by pure queries: it
	// never creates or patches anything.
	GetHouseholdUser(ctx context.Context, memberID string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	HouseholdResolverSvc
}
