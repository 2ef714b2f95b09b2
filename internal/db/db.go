package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a connected GORM DB instance. A DSN containing a tcp address
// (user:pass@tcp(host)/name) selects MySQL, anything else is treated as a
// SQLite file path. TranslateError is enabled so unique-constraint violations
// surface as gorm.ErrDuplicatedKey on both drivers.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	var (
		conn *gorm.DB
		err  error
	)
	if strings.Contains(dsn, "@tcp(") {
		conn, err = gorm.Open(mysql.Open(dsn), cfg)
	} else {
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return conn, nil
}
