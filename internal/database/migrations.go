package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/flowboard/flowboard-api/internal/models"
)

var indexes = []struct {
	model   interface{}
	table   string
	name    string
	columns string
}{
	// Task filter columns
	{&models.Task{}, "tasks", "idx_tasks_assignee_id", "assignee_id"},
	{&models.Task{}, "tasks", "idx_tasks_project_id", "project_id"},
	{&models.Task{}, "tasks", "idx_tasks_status", "status"},
	{&models.Task{}, "tasks", "idx_tasks_created_at", "created_at"},

	// Chat history lookup
	{&models.ChatMessage{}, "chat_messages", "idx_chat_messages_user_created", "user_id, created_at"},
}

// AddIndexes creates the secondary indexes that AutoMigrate does not declare.
// Existing indexes are skipped, so it runs on every start.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
