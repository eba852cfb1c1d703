package userstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
	"github.com/fizikfinito/fizikfinito/internal/app/system/normalize"
	"github.com/fizikfinito/fizikfinito/internal/domain/models"
)

const collection = "kullanicilar"

// ErrNotFound is returned when no user record matches the lookup.
var ErrNotFound = errors.New("user not found")

type Store struct {
	cms *cms.Client
}

func New(c *cms.Client) *Store {
	return &Store{cms: c}
}

// FindByEmail looks a user up by email. Returns ErrNotFound when the
// collection has no matching record.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var recs []models.User
	err := s.cms.ListFilter(ctx, collection, "email", normalize.Email(email), &recs)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return &recs[0], nil
}

// Create inserts a fresh user record with consent not yet accepted.
func (s *Store) Create(ctx context.Context, email, firstName, lastName string) (*models.User, error) {
	in := models.User{
		Email:     normalize.Email(email),
		FirstName: normalize.Name(firstName),
		LastName:  normalize.Name(lastName),
	}
	var created models.User
	if err := s.cms.Create(ctx, collection, in, &created); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

// FindOrCreate is the login upsert: look the email up, create the record on
// first sight. Repeated logins always return the same record; names are
// only seeded at creation, later logins never overwrite them.
//
// Known gap: two truly concurrent first logins for the same email can race
// past the lookup and both create. The repository enforces no uniqueness
// on email; subsequent lookups return the first record.
func (s *Store) FindOrCreate(ctx context.Context, email, firstName, lastName string) (*models.User, error) {
	u, err := s.FindByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return s.Create(ctx, email, firstName, lastName)
}

// SetConsent marks the personal-data terms accepted on the record.
func (s *Store) SetConsent(ctx context.Context, id models.ID, accepted bool) error {
	patch := map[string]any{"termsAccepted": accepted}
	if err := s.cms.Patch(ctx, collection, id.String(), patch); err != nil {
		return fmt.Errorf("set consent: %w", err)
	}
	return nil
}

// SetRole records the profile type picked on the feedback form without
// touching the role-dependent fields.
func (s *Store) SetRole(ctx context.Context, id models.ID, role string) error {
	if !models.IsValidRole(role) {
		return fmt.Errorf("set role: unknown role %q", role)
	}
	if err := s.cms.Patch(ctx, collection, id.String(), map[string]any{"role": role}); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}

// Profile is the role-dependent field set saved from the profile form.
type Profile struct {
	Role  string
	Sinif string
	Alan  string
	Brans string
}

// UpdateProfile patches the role fields onto the record. Inapplicable
// fields are sent as explicit nulls so a role change clears stale values.
func (s *Store) UpdateProfile(ctx context.Context, id models.ID, p Profile) error {
	if !models.IsValidRole(p.Role) {
		return fmt.Errorf("update profile: unknown role %q", p.Role)
	}

	patch := map[string]any{
		"role":  p.Role,
		"sinif": nil,
		"alan":  nil,
		"brans": nil,
	}
	switch p.Role {
	case models.RoleStudent:
		patch["sinif"] = p.Sinif
		if models.TrackRequired(p.Sinif) {
			patch["alan"] = p.Alan
		}
	case models.RoleTeacher:
		patch["brans"] = p.Brans
	}

	if err := s.cms.Patch(ctx, collection, id.String(), patch); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
