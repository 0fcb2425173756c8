package model

import (
	"time"
)

const (
	EntityName = "maintenance task"

	TypeCleaning    = "cleaning"
	TypeRepair      = "repair"
	TypeMaintenance = "maintenance"
	TypeInspection  = "inspection"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Task struct {
	ID            string
	PropertyID    string
	Title         string
	Description   string
	Type          string
	Status        string
	ScheduledDate *time.Time
	CompletedDate *time.Time
	AssignedTo    string
	Cost          string
	Notes         string
	CreatedAt     time.Time
}
