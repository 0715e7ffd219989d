package database

import "blogly/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// post_tags is created through the join-table registration in Migrate.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Tag{},
	}
}
