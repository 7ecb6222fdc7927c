package user

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("name must not be blank")
	ErrInvalidEmail = errors.New("invalid email address")
)

type User struct {
	id    int64
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, ErrEmptyName
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	return &User{name: name, email: email}, nil
}

func ReconstructUser(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// ValidateEmail accepts any address with a non-empty local part and domain.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
