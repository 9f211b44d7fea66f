// Package services contains server-side business logic. This file implements
// UserService: registration, login, profile lookup, account deletion, and
// per-field updates of username, email, and password.
//
// Every operation is stateless and independently invocable; each one re-reads
// current state before mutating and raises a typed *apperror.Error as soon as
// a precondition fails, so no partial mutation ever precedes a failure.
// Uniqueness races between the pre-check and the write are closed by the
// store's unique constraints, which the repository reports as
// common.ErrorAlreadyExists.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Toxic209/noteForge/internal/apperror"
	"github.com/Toxic209/noteForge/internal/common"
	"github.com/Toxic209/noteForge/internal/server/config"
	"github.com/Toxic209/noteForge/internal/server/models"
	"github.com/Toxic209/noteForge/internal/server/repositories/repomanager"
)

// loginFailedMessage is shared by the no-such-user and wrong-password paths
// so a caller cannot tell which check failed.
const loginFailedMessage = "username or password is incorrect"

// Registration is the safe projection returned after a successful
// registration. It never contains the password hash.
type Registration struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
}

// Profile is the projection returned by Lookup, including the user's notes.
type Profile struct {
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FirstName string        `json:"fname"`
	LastName  string        `json:"lname"`
	Notes     []models.Note `json:"notes"`
}

// UserService enforces the account-level business rules over the user record
// store. It holds no per-request state; the pool is the only shared resource.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BCryptCost,
	}
}

// Register hashes the password and inserts a new user record, returning the
// safe projection. A unique-constraint violation surfaces as CONFLICT.
func (s *UserService) Register(ctx context.Context, username, email, password, firstName, lastName string) (*Registration, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, apperror.Conflict("username or email already taken")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &Registration{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}

// Login resolves the identifier (email when it contains "@", username
// otherwise), verifies the password, and returns the matched user's id.
// Both failure paths return UNAUTHORIZED with an identical message.
func (s *UserService) Login(ctx context.Context, identifier, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	var user *models.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = repo.GetByEmail(ctx, identifier)
	} else {
		user, err = repo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", apperror.Unauthorized(loginFailedMessage)
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if !s.checkPassword(user.PasswordHash, password) {
		return "", apperror.Unauthorized(loginFailedMessage)
	}

	return user.ID, nil
}

// GetProfile returns the profile projection for the given id, with the
// user's notes attached.
func (s *UserService) GetProfile(ctx context.Context, id string) (*Profile, error) {

	if id == "" {
		return nil, apperror.NotFound("no user id")
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	userNotes, err := s.repomanager.Notes(s.db).ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching notes: %w", err)
	}

	return &Profile{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Notes:     userNotes,
	}, nil
}

// Delete permanently removes the target record. Only the owner may delete
// their own account.
func (s *UserService) Delete(ctx context.Context, requesterID, targetID string) error {

	if requesterID != targetID {
		return apperror.Forbidden("cannot delete another user's account")
	}

	if err := s.repomanager.Users(s.db).Delete(ctx, targetID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return apperror.NotFound("user not found")
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

// UpdateUsername overwrites the username after checking the record exists,
// the new value differs, and no other record owns it.
func (s *UserService) UpdateUsername(ctx context.Context, id, newUsername string) error {

	repo := s.repomanager.Users(s.db)

	current, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return apperror.NotFound("user not found")
		}
		return fmt.Errorf("error fetching user: %w", err)
	}

	if newUsername == current.Username {
		return apperror.Validation("new username must be different from the current username")
	}

	if _, err := repo.GetByUsername(ctx, newUsername); err == nil {
		return apperror.Conflict("username already taken")
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking username: %w", err)
	}

	if err := repo.UpdateUsername(ctx, id, newUsername); err != nil {
		return s.mapUpdateError(err, "username already taken")
	}

	return nil
}

// UpdateEmail overwrites the email after verifying the current password and
// checking no other record owns the new value.
func (s *UserService) UpdateEmail(ctx context.Context, id, newEmail, currentPassword string) error {

	repo := s.repomanager.Users(s.db)

	current, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return apperror.NotFound("user not found")
		}
		return fmt.Errorf("error fetching user: %w", err)
	}

	if !s.checkPassword(current.PasswordHash, currentPassword) {
		return apperror.Unauthorized("incorrect password")
	}

	if _, err := repo.GetByEmail(ctx, newEmail); err == nil {
		return apperror.Conflict("email already taken")
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking email: %w", err)
	}

	if err := repo.UpdateEmail(ctx, id, newEmail); err != nil {
		return s.mapUpdateError(err, "email already taken")
	}

	return nil
}

// UpdatePassword rehashes and overwrites the password after verifying the
// current one. The unchanged check compares the two plaintext inputs; this is
// the only update check that needs no hash comparison.
func (s *UserService) UpdatePassword(ctx context.Context, id, newPassword, currentPassword string) error {

	repo := s.repomanager.Users(s.db)

	current, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return apperror.NotFound("user not found")
		}
		return fmt.Errorf("error fetching user: %w", err)
	}

	if !s.checkPassword(current.PasswordHash, currentPassword) {
		return apperror.Unauthorized("incorrect password")
	}

	if newPassword == currentPassword {
		return apperror.Validation("new password must not match the old password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return s.mapUpdateError(err, "")
	}

	return nil
}

// mapUpdateError translates repository sentinels on the mutating call itself:
// a unique violation means the pre-check lost a race (CONFLICT), zero rows
// means the record vanished between the read and the write (NOT_FOUND).
func (s *UserService) mapUpdateError(err error, conflictMessage string) error {
	if conflictMessage != "" && errors.Is(err, common.ErrorAlreadyExists) {
		return apperror.Conflict(conflictMessage)
	}
	if errors.Is(err, common.ErrorNotFound) {
		return apperror.NotFound("user not found")
	}
	return fmt.Errorf("error updating user: %w", err)
}

func (s *UserService) checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
