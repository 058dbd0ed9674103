package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeStatsReconcile      = "stats:reconcile"
	TypeStatsReconcileDaily = "stats:reconcile_daily"
	TypeNotificationDrain   = "notification:drain"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// DayLayout is the wire format of calendar days in job payloads.
const DayLayout = "2006-01-02"

// ReconcileJobPayload asks for one affiliate's daily row to be rebuilt.
type ReconcileJobPayload struct {
	AffiliateID uuid.UUID `json:"affiliate_id"`
	Day         string    `json:"day"`
}

// ParseDay resolves the payload day in loc.
func (p ReconcileJobPayload) ParseDay(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, p.Day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", p.Day, err)
	}
	return day, nil
}

// ReconcileTaskID names the single pending reconcile task of an affiliate-day.
func ReconcileTaskID(payload ReconcileJobPayload) string {
	return "reconcile:" + payload.AffiliateID.String() + ":" + payload.Day
}

// NewReconcileTask creates a stats reconciliation task that runs no earlier than processAt.
func NewReconcileTask(payload ReconcileJobPayload, processAt time.Time) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeStatsReconcile, data,
		asynq.Queue(QueueMedium),
		asynq.MaxRetry(5),
		asynq.TaskID(ReconcileTaskID(payload)),
		asynq.ProcessAt(processAt),
	), nil
}

// NewReconcileDailyTask creates the periodic sweep over yesterday's active affiliates
func NewReconcileDailyTask() *asynq.Task {
	return asynq.NewTask(TypeStatsReconcileDaily, nil, asynq.Queue(QueueLow), asynq.MaxRetry(1))
}

// NewNotificationDrainTask creates the periodic notification queue drain
func NewNotificationDrainTask() *asynq.Task {
	return asynq.NewTask(TypeNotificationDrain, nil, asynq.Queue(QueueHigh), asynq.MaxRetry(0))
}
