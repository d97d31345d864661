package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Schema files live in one directory per dialect and are applied in name order.
// Every statement is idempotent so Migrate can run on each start.
//
//go:embed migrations
var migrationsFS embed.FS

// Migrate creates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(ctx context.Context, db *gorm.DB) error {
	dialect := db.Dialector.Name()
	names, err := fs.Glob(migrationsFS, "migrations/"+dialect+"/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	if len(names) == 0 {
		return fmt.Errorf("no migrations for dialect %q", dialect)
	}
	sort.Strings(names)

	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(sqlBytes)) {
			if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
				return fmt.Errorf("apply migration %s: %w", name, err)
			}
		}
		log.WithFields(logrus.Fields{
			"migration": name,
			"dialect":   dialect,
		}).Info("Migration applied")
	}
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
