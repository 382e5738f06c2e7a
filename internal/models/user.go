// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered DevConnector member.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email,omitempty"`
	Password string    `gorm:"not null" json:"-"`
	Avatar   string    `json:"avatar"`
	Date     time.Time `gorm:"autoCreateTime" json:"date,omitzero"`
}

// BeforeCreate assigns a fresh identifier when the caller did not set one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// AuthorSnapshot is the author name and avatar copied onto posts and comments
// when they are written. It is never refreshed from the user afterwards.
type AuthorSnapshot struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// SnapshotOf captures the current name and avatar of u.
func SnapshotOf(u *User) AuthorSnapshot {
	return AuthorSnapshot{Name: u.Name, Avatar: u.Avatar}
}
