package database

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// TableStatus reports whether the table of one persistent model exists.
type TableStatus struct {
	Table  string
	Exists bool
}

// SchemaStatus lists every persistent model table in migration order.
func SchemaStatus(db *gorm.DB) ([]TableStatus, error) {
	out := make([]TableStatus, 0, len(PersistentModels()))
	for _, m := range PersistentModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse %T: %w", m, err)
		}
		out = append(out, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: db.Migrator().HasTable(m),
		})
	}
	return out, nil
}

// Reset drops every persistent model table, children first, and migrates
// the schema again.
func Reset(db *gorm.DB) error {
	models := PersistentModels()
	slices.Reverse(models)
	if err := db.Migrator().DropTable(models...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Migrate(db)
}
