package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Password  string
}

func NewUser(name, email, password string) *User {
	return &User{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      name,
		Email:     email,
		Password:  password,
	}
}

func (u *User) validate() error {
	if len(u.Name) < 3 {
		return errors.New("name must be at least 3 characters")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

// HashPassword replaces the plaintext password with its bcrypt hash.
// bcrypt embeds a fresh random salt, so two calls with the same plaintext
// never produce the same hash.
func (u *User) HashPassword() error {
	if len(u.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a plaintext candidate against the stored hash.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) UpdateProfile(name, email string) error {
	u.Name = name
	u.Email = email
	u.UpdatedAt = time.Now()
	return u.validate()
}

func (u *User) ChangePassword(password string) {
	u.Password = password
	u.UpdatedAt = time.Now()
}
