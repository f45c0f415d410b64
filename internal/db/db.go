package db

import (
	"time" // Connection lifetime settings

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Connect opens a pooled connection to the database
func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err // Connection failed
	}
	sqlDB, err := db.DB() // Underlying database/sql handle
	if err != nil {
		return nil, err
	}
	// Bounded pool shared across all requests; excess callers queue inside database/sql
	sqlDB.SetMaxOpenConns(10)                  // Fixed pool size
	sqlDB.SetMaxIdleConns(5)                   // Idle connections kept around
	sqlDB.SetConnMaxLifetime(30 * time.Minute) // Recycle stale connections
	return db, nil
}
