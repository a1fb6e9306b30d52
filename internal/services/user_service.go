package services

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/secureauth/secure-auth-be/internal/auth"
	"github.com/secureauth/secure-auth-be/internal/models"
)

// emailPattern matches standard addresses and rejects leading or trailing
// dots and dashes in the local and domain parts.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id string) (models.User, error)
	CreateUser(name, email, password string) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
}

// UserService provides registration, login and lookup over the credential
// store.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// NormalizeEmail lowercases and trims an address so lookups and the unique
// index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetUserByID retrieves a single user by their ID. The password hash is
// never selected.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// getUserByEmail retrieves a user including the password hash. Login-only;
// callers must blank the hash before the record leaves the service.
func (s *UserService) getUserByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", NormalizeEmail(email))
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func validateRegistration(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return &models.ValidationError{Field: "body", Message: "Please enter all fields"}
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return &models.ValidationError{Field: "name", Message: "Name must be between 2 and 50 characters"}
	}
	if !emailPattern.MatchString(email) {
		return &models.ValidationError{Field: "email", Message: "Please add a valid email"}
	}
	if len(password) < 6 {
		return &models.ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	return nil
}

// CreateUser validates input, hashes the password and persists a new user.
// The duplicate pre-check produces a clean error; the unique index on email
// remains the tie-breaker if two registrations race past it.
func (s *UserService) CreateUser(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if err := validateRegistration(name, email, password); err != nil {
		return models.User{}, err
	}

	if _, err := s.getUserByEmail(email); err == nil {
		return models.User{}, models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.Exec("INSERT INTO users(id, name, email, password_hash, created_at) VALUES(?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials. An unknown email and a
// wrong password both return ErrInvalidCredentials so a caller cannot probe
// which addresses are registered.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.User{}, &models.ValidationError{Field: "body", Message: "Please enter all fields"}
	}

	user, err := s.getUserByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, models.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return models.User{}, models.ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}
