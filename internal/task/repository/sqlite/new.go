package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"voice-task-management/pkg/log"
)

// Repository implements repository.TaskRepository and
// repository.VoiceLogRepository on SQLite.
type Repository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New wraps an opened database. Use Open to create one.
func New(db *sql.DB, l log.Logger) *Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &Repository{db: db, l: l, now: time.Now}
}

func (r *Repository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
