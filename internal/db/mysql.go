package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// WaitForMySQL probes the database until it answers a ping, retrying with a
// fixed backoff. It runs once at startup, before the server accepts traffic;
// the request path never retries.
func WaitForMySQL(dsn string, attempts int, backoff time.Duration) (*gorm.DB, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		gormDB, err := NewMySQL(dsn)
		if err == nil {
			sqlDB, err := gormDB.DB()
			if err == nil {
				if err = sqlDB.Ping(); err == nil {
					return gormDB, nil
				}
			}
			lastErr = err
		} else {
			lastErr = err
		}
		log.Printf("database not ready (attempt %d/%d): %v", i, attempts, lastErr)
		time.Sleep(backoff)
	}
	return nil, fmt.Errorf("database unavailable after %d attempts: %w", attempts, lastErr)
}
