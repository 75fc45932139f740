package db

import (
	"fmt"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// NewTest opens an isolated in-memory SQLite database for tests. The single
// connection keeps concurrent transactions serialized the same way the
// production pool does under contention.
func NewTest() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if err := conn.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		return nil, err
	}
	return conn, nil
}
