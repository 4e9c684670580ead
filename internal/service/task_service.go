package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"hometasks/internal/model"
	"hometasks/internal/repository"
)

// TaskInput carries the editable fields of a task. Lifecycle fields
// (status, comments, completion) are owned by the service.
type TaskInput struct {
	Title          string
	Description    string
	SectionID      string
	ProjectID      *string
	AssignedTo     []string
	Priority       model.TaskPriority
	DueDate        *string
	IsRecurring    bool
	RecurrenceRule *string
}

type TaskService interface {
	Create(ctx context.Context, input TaskInput) (*model.Task, error)
	Update(ctx context.Context, id string, input TaskInput) (*model.Task, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id, userID string) (*model.Task, error)
	AddComment(ctx context.Context, taskID, authorID, authorName, content string) (*model.Task, error)
	GetByID(ctx context.Context, id string) (*model.Task, error)
	All(ctx context.Context) ([]model.Task, error)
	MyTasks(ctx context.Context, userID string) ([]model.Task, error)
	Calendar(ctx context.Context) ([]model.Task, error)
	TasksPerProject(ctx context.Context) (map[string]int, error)
}

type taskService struct {
	tasks         repository.TaskRepository
	sections      repository.SectionRepository
	notifications NotificationService
	logger        *slog.Logger
}

var _ TaskService = (*taskService)(nil)

func NewTaskService(
	tasks repository.TaskRepository,
	sections repository.SectionRepository,
	notifications NotificationService,
	logger *slog.Logger,
) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		tasks:         tasks,
		sections:      sections,
		notifications: notifications,
		logger:        logger,
	}
}

// Create stores a new pending task and broadcasts an assignment
// notification. The notification is best-effort: a failure to record it
// never rolls the task back.
func (s *taskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if _, err := s.sections.GetByID(ctx, input.SectionID); err != nil {
		return nil, ErrSectionRequired
	}

	now := time.Now()
	task := model.Task{
		ID:             model.NewID("task"),
		Title:          input.Title,
		Description:    input.Description,
		SectionID:      input.SectionID,
		ProjectID:      input.ProjectID,
		AssignedTo:     input.AssignedTo,
		Status:         model.StatusPending,
		Priority:       input.Priority,
		DueDate:        input.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
		Comments:       []model.Comment{},
		IsRecurring:    input.IsRecurring,
		RecurrenceRule: input.RecurrenceRule,
	}
	if task.AssignedTo == nil {
		task.AssignedTo = []string{}
	}
	if err := s.tasks.Append(ctx, task); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Nueva tarea asignada: %q", task.Title)
	if err := s.notifications.Notify(ctx, model.AudienceAll, msg, &task.ID); err != nil {
		s.logger.Error("failed to record task notification",
			slog.String("task_id", task.ID), slog.Any("error", err))
	}
	return &task, nil
}

// Update replaces a task's editable fields. Status, comments and
// completion state survive the edit untouched.
func (s *taskService) Update(ctx context.Context, id string, input TaskInput) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.sections.GetByID(ctx, input.SectionID); err != nil {
		return nil, ErrSectionRequired
	}

	task.Title = input.Title
	task.Description = input.Description
	task.SectionID = input.SectionID
	task.ProjectID = input.ProjectID
	task.AssignedTo = input.AssignedTo
	task.Priority = input.Priority
	task.DueDate = input.DueDate
	task.IsRecurring = input.IsRecurring
	task.RecurrenceRule = input.RecurrenceRule
	task.UpdatedAt = time.Now()
	if task.AssignedTo == nil {
		task.AssignedTo = []string{}
	}

	if err := s.tasks.Update(ctx, *task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and broadcasts a deletion notice.
func (s *taskService) Delete(ctx context.Context, id string) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	msg := fmt.Sprintf("La tarea %q ha sido eliminada.", task.Title)
	if err := s.notifications.Notify(ctx, model.AudienceAll, msg, nil); err != nil {
		s.logger.Error("failed to record deletion notification",
			slog.String("task_id", id), slog.Any("error", err))
	}
	return nil
}

// Complete marks the task as done by userID. The first completion wins:
// a task that is already completed is returned unchanged.
func (s *taskService) Complete(ctx context.Context, id, userID string) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == model.StatusCompleted {
		return task, nil
	}

	now := time.Now()
	task.Status = model.StatusCompleted
	task.CompletedByID = &userID
	task.CompletedAt = &now
	task.UpdatedAt = now

	if err := s.tasks.Update(ctx, *task); err != nil {
		return nil, err
	}
	return task, nil
}

// AddComment appends a comment with an author snapshot. Blank content is
// ignored and returns the task unchanged.
func (s *taskService) AddComment(ctx context.Context, taskID, authorID, authorName, content string) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return task, nil
	}

	task.Comments = append(task.Comments, model.Comment{
		ID:         model.NewID("comment"),
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		Timestamp:  time.Now(),
	})
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, *task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// All returns every task in creation order.
func (s *taskService) All(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// MyTasks returns the tasks assigned to userID in creation order.
func (s *taskService) MyTasks(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	mine := []model.Task{}
	for _, t := range tasks {
		for _, assignee := range t.AssignedTo {
			if assignee == userID {
				mine = append(mine, t)
				break
			}
		}
	}
	return mine, nil
}

// Calendar returns the tasks that carry a due date, ordered by date.
func (s *taskService) Calendar(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	dated := []model.Task{}
	for _, t := range tasks {
		if t.DueDate != nil && *t.DueDate != "" {
			dated = append(dated, t)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return *dated[i].DueDate < *dated[j].DueDate
	})
	return dated, nil
}

// TasksPerProject counts tasks by project reference.
func (s *taskService) TasksPerProject(ctx context.Context) (map[string]int, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, t := range tasks {
		if t.ProjectID != nil && *t.ProjectID != "" {
			counts[*t.ProjectID]++
		}
	}
	return counts, nil
}
