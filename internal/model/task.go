package model

import (
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending     TaskStatus = "pending"
	StatusInProgress  TaskStatus = "in_progress"
	StatusCompleted   TaskStatus = "completed"
	StatusNeedsReview TaskStatus = "needs_review"
)

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Comment is a message left on a task. AuthorName is a snapshot taken at
// write time and is never re-derived from the user record.
type Comment struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// Task is a unit of household work assigned to one or more employees.
// Comments are owned exclusively by their task and are append-only.
type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	SectionID      string       `json:"sectionId"`
	ProjectID      *string      `json:"projectId,omitempty"`
	AssignedTo     []string     `json:"assignedTo"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	DueDate        *string      `json:"dueDate,omitempty"` // YYYY-MM-DD
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	Comments       []Comment    `json:"comments"`
	IsRecurring    bool         `json:"isRecurring"`
	RecurrenceRule *string      `json:"recurrenceRule,omitempty"`
	CompletedByID  *string      `json:"completedById,omitempty"`
	CompletedAt    *time.Time   `json:"completedAt,omitempty"`
}
