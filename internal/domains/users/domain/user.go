package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 6 characters")
)

// User represents an account that places orders.
type User struct {
	ID          string
	Email       string
	Password    string
	CompanyName string
	Phone       string
}

// NewUser builds a user ensuring required invariants.
func NewUser(id, email, password string) (*User, error) {
	user := &User{ID: id}
	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetEmail trims and validates the email address.
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// SetPassword validates basic password strength.
func (u *User) SetPassword(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 6 {
		return ErrWeakPassword
	}
	u.Password = password
	return nil
}

// CheckPassword compares the stored password with the supplied credentials.
func (u *User) CheckPassword(password string) bool {
	return strings.TrimSpace(password) != "" && u.Password == strings.TrimSpace(password)
}

// Validate re-applies core invariants for persistence.
func (u *User) Validate() error {
	if err := u.SetEmail(u.Email); err != nil {
		return err
	}
	return u.SetPassword(u.Password)
}
