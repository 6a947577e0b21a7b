// Package postgres implements the domain repositories on top of gorm.
package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and syncs the schema. AutoMigrate creates the
// unique indexes on users.email and tutorials.title, which enforce the
// uniqueness invariants under concurrent writes.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&UserModel{}, &TutorialModel{}); err != nil {
		return nil, err
	}

	return db, nil
}
