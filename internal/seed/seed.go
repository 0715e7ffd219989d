// Package seed populates the database with sample data for manual testing
// and development.
package seed

import (
	"fmt"
	"log"

	"blogly/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int // extra generated users beyond the fixed sample set
	NumPosts    int // extra generated posts beyond the fixed sample set
	ShouldClean bool
}

// loremContent is the body shared by the fixed sample posts.
const loremContent = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
	"Est velit egestas dui id ornare. Eu facilisis sed odio morbi."

// fixedUsers are the canonical sample users. Referenced by index from fixedPosts.
var fixedUsers = []models.User{
	{FirstName: "Billy", LastName: "Bob", ImageURL: models.DefaultImageURL},
	{FirstName: "Jamie", LastName: "Joe", ImageURL: models.DefaultImageURL},
	{FirstName: "Peggy", LastName: "Sue", ImageURL: models.DefaultImageURL},
}

// fixedPosts maps post titles to the index of their author in fixedUsers.
var fixedPosts = []struct {
	Title  string
	Author int
}{
	{"Post 1", 0},
	{"Post 2", 1},
	{"Post 3", 2},
	{"Post 4", 1},
	{"Post 5", 1},
	{"Post 6", 0},
	{"Post 7", 2},
}

var fixedTags = []string{"cool", "fun", "serious"}

// Seed populates the database with the fixed sample rows plus optional
// generated filler.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database (extra users=%d, extra posts=%d, clean=%v)",
		opts.NumUsers, opts.NumPosts, opts.ShouldClean)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := createFixedUsers(db)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}

	posts, err := createFixedPosts(db, users)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}

	tags, err := createFixedTags(db)
	if err != nil {
		return fmt.Errorf("failed to create tags: %w", err)
	}

	// Attach each fixed tag to one of the first posts for browsable sample data.
	for i, tag := range tags {
		if i >= len(posts) {
			break
		}
		link := models.PostTag{PostID: posts[i].ID, TagID: tag.ID}
		if err := db.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag.Name, err)
		}
	}

	if err := createFillerUsers(db, opts.NumUsers, opts.NumPosts); err != nil {
		return err
	}

	log.Printf("Seeding complete: %d users, %d posts, %d tags (plus filler)",
		len(users), len(posts), len(tags))
	return nil
}

func clearData(db *gorm.DB) error {
	// Association rows first, then children, then parents.
	for _, model := range []interface{}{
		&models.PostTag{},
		&models.Post{},
		&models.Tag{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createFixedUsers(db *gorm.DB) ([]models.User, error) {
	users := make([]models.User, len(fixedUsers))
	copy(users, fixedUsers)
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			return nil, err
		}
	}
	return users, nil
}

func createFixedPosts(db *gorm.DB, users []models.User) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(fixedPosts))
	for _, fp := range fixedPosts {
		post := models.Post{
			Title:   fp.Title,
			Content: loremContent,
			UserID:  users[fp.Author].ID,
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createFixedTags(db *gorm.DB) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(fixedTags))
	for _, name := range fixedTags {
		tag := models.Tag{Name: name}
		if err := db.Create(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// createFillerUsers generates extra users and spreads extra posts across them.
func createFillerUsers(db *gorm.DB, numUsers, numPosts int) error {
	if numUsers <= 0 {
		return nil
	}

	users := make([]models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := models.User{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			ImageURL:  models.DefaultImageURL,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create filler user: %w", err)
		}
		users = append(users, user)
	}

	for i := 0; i < numPosts; i++ {
		post := models.Post{
			Title:   gofakeit.Sentence(4),
			Content: gofakeit.Paragraph(1, 3, 8, "\n"),
			UserID:  users[i%len(users)].ID,
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to create filler post: %w", err)
		}
	}

	return nil
}
