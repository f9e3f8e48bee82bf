package publishers

import (
	"strconv"
	"time"

	"github.com/tempora-hq/everhour-go/pkg/everhour"
)

// Event is the payload published downstream for one exported time record.
type Event struct {
	RecordID   string              `json:"record_id"`
	UserID     int                 `json:"user_id"`
	ProjectID  string              `json:"project_id,omitempty"`
	TaskID     string              `json:"task_id,omitempty"`
	Date       string              `json:"date"`
	Seconds    int                 `json:"seconds"`
	Record     everhour.TimeRecord `json:"record"`
	ExportedAt time.Time           `json:"exported_at"`
}

// NewEvent constructs an Event from a time record.
func NewEvent(record everhour.TimeRecord) Event {
	evt := Event{
		RecordID:   strconv.Itoa(record.ID),
		UserID:     record.User,
		Date:       record.Date,
		Seconds:    record.Time,
		Record:     record,
		ExportedAt: time.Now().UTC(),
	}
	if record.Task != nil {
		evt.TaskID = record.Task.ID
		if len(record.Task.Projects) > 0 {
			evt.ProjectID = record.Task.Projects[0]
		}
	}
	return evt
}
