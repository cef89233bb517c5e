package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the movies bounded context. Intended to replace
// adapter-level automigrate in deployments that manage DDL explicitly.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&movieRecord{})
}

// Movie schema mirrors the movies Postgres adapter. The owner/created_at
// composite index backs both the listing and the month-window count query.
type movieRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:36"`
	OwnerID   int64     `gorm:"column:owner_id;index:idx_movies_owner_created"`
	Title     string    `gorm:"column:title"`
	Released  string    `gorm:"column:released"`
	Genre     string    `gorm:"column:genre"`
	Director  string    `gorm:"column:director"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_movies_owner_created"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (movieRecord) TableName() string { return "movies" }
