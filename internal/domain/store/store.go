package store

import (
	"regexp"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// Status represents the lifecycle status of a store
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended" // Hidden from shoppers, kept for the merchant
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended:
		return true
	}
	return false
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Store represents one merchant's storefront within the platform.
// It is the aggregate root for store-related operations and the unit
// of data isolation: every catalog record and cart is scoped to a store.
type Store struct {
	shared.BaseAggregateRoot
	Slug        string `gorm:"type:varchar(63);not null;uniqueIndex"` // Subdomain label / path segment
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	LogoURL     string `gorm:"type:varchar(500)"`
	Currency    string `gorm:"type:varchar(3);not null;default:'USD'"`
	Status      Status `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store with required fields
func NewStore(slug, name string) (*Store, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Slug:              strings.ToLower(slug),
		Name:              name,
		Currency:          "USD",
		Status:            StatusActive,
	}, nil
}

// IsActive reports whether the store is visible to shoppers
func (s *Store) IsActive() bool {
	return s.Status == StatusActive
}

// Suspend hides the store from shoppers
func (s *Store) Suspend() {
	s.Status = StatusSuspended
	s.IncrementVersion()
}

// Activate makes the store visible to shoppers again
func (s *Store) Activate() {
	s.Status = StatusActive
	s.IncrementVersion()
}

// ValidateSlug checks that a candidate identifier is usable as a
// subdomain label or path segment
func ValidateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Store slug cannot be empty")
	}
	if len(slug) > 63 {
		return shared.NewDomainError("INVALID_SLUG", "Store slug cannot exceed 63 characters")
	}
	if !slugPattern.MatchString(strings.ToLower(slug)) {
		return shared.NewDomainError("INVALID_SLUG", "Store slug can only contain lowercase letters, digits and hyphens")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Store name cannot exceed 200 characters")
	}
	return nil
}
