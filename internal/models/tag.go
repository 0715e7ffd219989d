package models

// Tag is a label that can be attached to any number of posts.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}

// PostTag is the join row linking a post to a tag. It is modeled explicitly
// (rather than letting GORM manage an implicit join table) so that tag-set
// replacement is a visible delete-then-insert inside one transaction.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}

// TableName pins the join table name shared with the many2many declarations.
func (PostTag) TableName() string {
	return "post_tags"
}
