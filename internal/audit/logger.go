package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/meeting-scheduler/internal/models"
)

// writeTimeout bounds a single audit insert. Writes run on the dispatcher
// goroutine, detached from any request context.
const writeTimeout = 5 * time.Second

// Logger stores audit events in the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	row := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}

	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("encode audit metadata for %s: %w", action, err)
		}
		row.Metadata = string(b)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	return l.db.WithContext(ctx).Create(&row).Error
}
