package models

import "time"

// Post represents a blog post written by a user.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Tags      []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WriteDate renders created_at as "January 02, 2006 at 3:04PM":
// zero-padded day, 12-hour clock without a leading zero.
func (p Post) WriteDate() string {
	return p.CreatedAt.Format("January 02, 2006 at 3:04PM")
}

// AuthorName returns the full name of the preloaded author.
// Callers are responsible for loading the User association first; the
// repository's GetByID fails with NotFound when the author row is gone.
func (p Post) AuthorName() string {
	return p.User.FullName()
}
