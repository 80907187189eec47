package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskpilot/internal/model"
)

// TaskRepository persists the task collection in SQLite. The collection is
// small and always handled whole: Load reads a full snapshot, Replace writes
// one back.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Load returns the whole collection, oldest first.
func (r *TaskRepository) Load(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

// Replace swaps the stored collection for the given one in a single
// transaction, so a reader never sees a half-applied tick.
func (r *TaskRepository) Replace(ctx context.Context, tasks []model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
	if err != nil {
		return fmt.Errorf("replace tasks: %w", err)
	}
	return nil
}
