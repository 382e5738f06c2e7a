package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a feed entry. Name and avatar are a snapshot of the author taken at
// creation time so the post stays displayable after the author is removed.
type Post struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	AuthorSnapshot `gorm:"embedded"`
	Likes          []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments       []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	Date           time.Time `gorm:"autoCreateTime;index" json:"date"`
}

func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Like records that a user liked a post.
// The combination of PostID and UserID must be unique.
type Like struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	PostID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_post_user" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_post_user" json:"user"`
	Date   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (l *Like) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Comment is a reply on a post, carrying its own author snapshot.
type Comment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	PostID         uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	UserID         uuid.UUID `gorm:"type:uuid;not null" json:"user"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	AuthorSnapshot `gorm:"embedded"`
	Date           time.Time `gorm:"autoCreateTime" json:"date"`
}

func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
