// Package models contains data structures for the application's domain models.
package models

import "time"

// DefaultImageURL is the placeholder image applied when a user is created
// without supplying one. image_url is never stored empty.
const DefaultImageURL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

// User represents a Blogly user.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// FullName returns "first_name last_name".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
