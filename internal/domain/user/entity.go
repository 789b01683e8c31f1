package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyName    = errors.New("name cannot be empty")
)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Email{}, ErrInvalidEmail
	}
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}

// User is the session identity. The identity provider is mocked: every
// login resolves to the same fixed profile, so the id must stay stable
// for the whole process lifetime.
type User struct {
	id       uuid.UUID
	name     string
	email    Email
	photoURL string
}

func NewUser(id uuid.UUID, name string, email Email, photoURL string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:       id,
		name:     strings.TrimSpace(name),
		email:    email,
		photoURL: photoURL,
	}, nil
}

func (u *User) ID() uuid.UUID    { return u.id }
func (u *User) Name() string     { return u.name }
func (u *User) Email() Email     { return u.email }
func (u *User) PhotoURL() string { return u.photoURL }
