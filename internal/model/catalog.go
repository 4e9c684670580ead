package model

// Section is a named area of the house used to categorize tasks,
// e.g. "Cocina" or "Jardín y Exteriores".
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JobPosition is a named role assigned to an employee. It carries no
// permission semantics.
type JobPosition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is an optional grouping of related tasks. A project cannot be
// deleted while any task still references it.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
