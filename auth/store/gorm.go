package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ishwor/authcookbook/auth"
	"github.com/ishwor/authcookbook/database"
)

// User is the persisted credential record. The unique index on email is
// what serializes concurrent registrations: of two racing creates for the
// same identity, exactly one commits and the other sees a duplicate-key
// violation.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// BeforeCreate generates a UUID if not already set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// GormStore is the persisted, appendable credential store used by the jwt
// strategy's register flow.
type GormStore struct {
	db *database.DB
}

// NewGormStore creates a credential store over the users table.
func NewGormStore(db *database.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the users table.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&User{})
}

// FindByIdentity returns the record for an identity or auth.ErrNotFound.
func (s *GormStore) FindByIdentity(ctx context.Context, identity string) (auth.Record, error) {
	var user User
	err := s.db.WithContext(ctx).First(&user, "email = ?", identity).Error
	if err != nil {
		if database.IsNotFoundError(err) {
			return auth.Record{}, auth.ErrNotFound
		}
		return auth.Record{}, fmt.Errorf("store: find %q: %w", identity, err)
	}
	return toRecord(user)
}

// ExistsByIdentity reports whether a record exists for an identity.
func (s *GormStore) ExistsByIdentity(ctx context.Context, identity string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&User{}).Where("email = ?", identity).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("store: exists %q: %w", identity, err)
	}
	return count > 0, nil
}

// Create stores a new credential record. Identity uniqueness is enforced by
// the database constraint, not application-level locking.
func (s *GormStore) Create(ctx context.Context, identity, passwordHash string, role auth.Role) (auth.Record, error) {
	user := User{
		Email:        identity,
		PasswordHash: passwordHash,
		Role:         string(role),
	}
	err := s.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		if database.IsDuplicateError(err) {
			return auth.Record{}, auth.ErrDuplicateIdentity
		}
		return auth.Record{}, fmt.Errorf("store: create %q: %w", identity, err)
	}
	return toRecord(user)
}

// toRecord converts a persisted user into a credential record, rejecting
// rows whose role is no longer a defined enum value.
func toRecord(user User) (auth.Record, error) {
	role, err := auth.ParseRole(user.Role)
	if err != nil {
		return auth.Record{}, fmt.Errorf("store: record %q: %w", user.Email, err)
	}
	return auth.Record{
		Identity:     user.Email,
		PasswordHash: user.PasswordHash,
		Role:         role,
	}, nil
}
