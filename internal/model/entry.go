package model

import "strings"

// Status is the progress state of a course week.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusUpcoming   Status = "upcoming"
	StatusExam       Status = "exam"
)

// Label returns the badge text shown for the status.
// Values outside the known set render as "Sin estado".
func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "Completado"
	case StatusInProgress:
		return "En progreso"
	case StatusUpcoming:
		return "Próximo"
	case StatusExam:
		return "Examen"
	default:
		return "Sin estado"
	}
}

// Known returns true if s is one of the defined statuses.
func (s Status) Known() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusUpcoming, StatusExam:
		return true
	}
	return false
}

// Entry represents one course week of the journal.
type Entry struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Subtitle    string   `json:"subtitle" yaml:"subtitle"`
	Description string   `json:"description" yaml:"description"`
	Content     string   `json:"content" yaml:"content"` // HTML fragment
	Tags        []string `json:"tags" yaml:"tags"`
	Status      Status   `json:"status" yaml:"status"`
	Icon        string   `json:"icon" yaml:"icon"`
	Color       string   `json:"color" yaml:"color"`
}

// Info holds the journal metadata shown around the entry grid.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Role        string `json:"role" yaml:"role"`
	Institution string `json:"institution" yaml:"institution"`
	Term        string `json:"term" yaml:"term"`
	Footer      string `json:"footer" yaml:"footer"`
}

// Profile joins role, institution and term with " · ", skipping empty parts.
func (i Info) Profile() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{i.Role, i.Institution, i.Term} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

// Journal is the serialized form of a catalog.
type Journal struct {
	Info    Info    `json:"info" yaml:"info"`
	Entries []Entry `json:"entries" yaml:"entries"`
}
