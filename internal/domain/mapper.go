package domain

import (
	"task-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:        domainTask.ID,
		Title:     domainTask.Title,
		Detail:    domainTask.Detail,
		CreatedAt: domainTask.CreatedAt,
		DueDate:   domainTask.DueDate,
		Priority:  int(domainTask.Priority),
		Tags:      domainTask.Tags,
		Done:      domainTask.Done,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:        dbTask.ID,
		Title:     dbTask.Title,
		Detail:    dbTask.Detail,
		CreatedAt: dbTask.CreatedAt,
		DueDate:   dbTask.DueDate,
		Priority:  Priority(dbTask.Priority),
		Tags:      dbTask.Tags,
		Done:      dbTask.Done,
	}
}

// ToNewTask converts the user-supplied fields of a domain Task into an insert request.
func (m *TaskMapper) ToNewTask(domainTask Task) sqlite.NewTask {
	return sqlite.NewTask{
		Title:    domainTask.Title,
		Detail:   domainTask.Detail,
		DueDate:  domainTask.DueDate,
		Priority: int(domainTask.Priority),
		Tags:     domainTask.Tags,
	}
}

// FromDatabaseSlice converts database Tasks to domain Task pointers, preserving order.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromDatabase(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
