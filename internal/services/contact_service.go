package services

import (
	"database/sql"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/secureauth/secure-auth-be/internal/models"
)

// contactEmailPattern is looser than the registration pattern: the inquiry
// address is stored for a human to reply to, not used as an account key.
var contactEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactServiceProvider defines the interface for contact services.
type ContactServiceProvider interface {
	CreateContact(name, email, subject, message string) (models.Contact, error)
}

// ContactService persists contact-form inquiries.
type ContactService struct {
	db *sql.DB
}

// NewContactService creates a new ContactService.
func NewContactService(db *sql.DB) *ContactService {
	return &ContactService{db: db}
}

func validateContact(name, email, subject, message string) error {
	if name == "" || email == "" || subject == "" || message == "" {
		return &models.ValidationError{Field: "body", Message: "Please fill all fields"}
	}
	if len(name) < 2 || len(name) > 50 {
		return &models.ValidationError{Field: "name", Message: "Name must be between 2 and 50 characters"}
	}
	if !contactEmailPattern.MatchString(email) {
		return &models.ValidationError{Field: "email", Message: "Please enter a valid email"}
	}
	if len(message) < 10 {
		return &models.ValidationError{Field: "message", Message: "Message must be at least 10 characters"}
	}
	return nil
}

// CreateContact validates and stores a new inquiry with status "new".
// Status transitions happen in the support workflow, outside this API.
func (s *ContactService) CreateContact(name, email, subject, message string) (models.Contact, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	subject = strings.TrimSpace(subject)

	if err := validateContact(name, email, subject, message); err != nil {
		return models.Contact{}, err
	}

	contact := models.Contact{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Status:    models.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec("INSERT INTO contacts(id, name, email, subject, message, status, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)",
		contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message, contact.Status, contact.CreatedAt)
	if err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}
