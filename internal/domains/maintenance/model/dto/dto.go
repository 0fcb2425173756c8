package dto

import (
	"time"

	"casa/internal/domains/maintenance/model"
	"casa/shared/constant"
	"casa/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	PropertyID    string `json:"property_id"    validate:"required"`
	Title         string `json:"title"          validate:"required,max=200"`
	Description   string `json:"description"    validate:"omitempty"`
	Type          string `json:"type"           validate:"required,oneof=cleaning repair maintenance inspection"`
	Status        string `json:"status"         validate:"omitempty,oneof=pending in_progress completed cancelled"`
	ScheduledDate string `json:"scheduled_date" validate:"omitempty"`
	AssignedTo    string `json:"assigned_to"    validate:"omitempty,max=100"`
	Cost          string `json:"cost"           validate:"omitempty"`
	Notes         string `json:"notes"          validate:"omitempty"`
}

func (c *CreateTaskRequest) ToModel() (model.Task, error) {
	var scheduledDate *time.Time

	if c.ScheduledDate != "" {
		parsed, err := timezone.Parse(constant.DateFormat, c.ScheduledDate)
		if err != nil {
			return model.Task{}, err
		}

		scheduledDate = &parsed
	}

	status := c.Status
	if status == "" {
		status = model.StatusPending
	}

	return model.Task{
		ID:            uuid.NewString(),
		PropertyID:    c.PropertyID,
		Title:         c.Title,
		Description:   c.Description,
		Type:          c.Type,
		Status:        status,
		ScheduledDate: scheduledDate,
		AssignedTo:    c.AssignedTo,
		Cost:          c.Cost,
		Notes:         c.Notes,
		CreatedAt:     timezone.Now(),
	}, nil
}

type UpdateTaskRequest struct {
	Title         *string `json:"title"          validate:"omitempty,max=200"`
	Description   *string `json:"description"    validate:"omitempty"`
	Type          *string `json:"type"           validate:"omitempty,oneof=cleaning repair maintenance inspection"`
	Status        *string `json:"status"         validate:"omitempty,oneof=pending in_progress completed cancelled"`
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty"`
	CompletedDate *string `json:"completed_date" validate:"omitempty"`
	AssignedTo    *string `json:"assigned_to"    validate:"omitempty,max=100"`
	Cost          *string `json:"cost"           validate:"omitempty"`
	Notes         *string `json:"notes"          validate:"omitempty"`
}

// ApplyTo merges the supplied fields over the existing record. The id and
// creation timestamp are never part of the merge.
func (u *UpdateTaskRequest) ApplyTo(task *model.Task) error {
	if u.Title != nil {
		task.Title = *u.Title
	}

	if u.Description != nil {
		task.Description = *u.Description
	}

	if u.Type != nil {
		task.Type = *u.Type
	}

	if u.Status != nil {
		task.Status = *u.Status
	}

	if u.ScheduledDate != nil {
		parsed, err := timezone.Parse(constant.DateFormat, *u.ScheduledDate)
		if err != nil {
			return err
		}

		task.ScheduledDate = &parsed
	}

	if u.CompletedDate != nil {
		parsed, err := timezone.Parse(constant.DateFormat, *u.CompletedDate)
		if err != nil {
			return err
		}

		task.CompletedDate = &parsed
	}

	if u.AssignedTo != nil {
		task.AssignedTo = *u.AssignedTo
	}

	if u.Cost != nil {
		task.Cost = *u.Cost
	}

	if u.Notes != nil {
		task.Notes = *u.Notes
	}

	return nil
}

type TaskResponse struct {
	ID            string `json:"id"`
	PropertyID    string `json:"property_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	CompletedDate string `json:"completed_date,omitempty"`
	AssignedTo    string `json:"assigned_to"`
	Cost          string `json:"cost"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"created_at"`
}

func (r *TaskResponse) FromModel(mod model.Task) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Type = mod.Type
	r.Status = mod.Status

	if mod.ScheduledDate != nil {
		r.ScheduledDate = mod.ScheduledDate.Format(constant.DateFormat)
	}

	if mod.CompletedDate != nil {
		r.CompletedDate = mod.CompletedDate.Format(constant.DateFormat)
	}

	r.AssignedTo = mod.AssignedTo
	r.Cost = mod.Cost
	r.Notes = mod.Notes
	r.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task) {
	r.TotalData = len(models)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
