package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Tutorial struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Content   string
}

func NewTutorial(title, content string) *Tutorial {
	return &Tutorial{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Title:     title,
		Content:   content,
	}
}

func (t *Tutorial) validate() error {
	if t.Title == "" {
		return errors.New("title must not be empty")
	}
	if t.Content == "" {
		return errors.New("content must not be empty")
	}
	if t.CreatedAt.After(t.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (t *Tutorial) Update(title, content string) error {
	if title != "" {
		t.Title = title
	}
	if content != "" {
		t.Content = content
	}
	t.UpdatedAt = time.Now()
	return t.validate()
}
