package model

import (
	"strconv"
	"time"
)

// DateLayout is the on-disk and user-facing form of a due date.
const DateLayout = "2006-01-02"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(s); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, true
	}
	return "", false
}

// Field names a mutable task attribute. The set is closed; anything outside
// it is ignored by updates.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldPriority    Field = "priority"
	FieldDueDate     Field = "due_date"
	FieldCategory    Field = "category"
)

// Fields lists the mutable attributes in persisted column order.
var Fields = []Field{FieldTitle, FieldDescription, FieldPriority, FieldDueDate, FieldCategory}

func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	Category    string
}

// Set assigns value to the named field and reports whether the name was
// recognized. Unknown names leave the task untouched.
func (t *Task) Set(name, value string) bool {
	f, ok := ParseField(name)
	if !ok {
		return false
	}
	switch f {
	case FieldTitle:
		t.Title = value
	case FieldDescription:
		t.Description = value
	case FieldPriority:
		t.Priority = Priority(value)
	case FieldDueDate:
		t.DueDate = value
	case FieldCategory:
		t.Category = value
	}
	return true
}

// Record returns the task as persisted text, in column order.
func (t Task) Record() []string {
	return []string{
		strconv.FormatInt(t.ID, 10),
		t.Title,
		t.Description,
		string(t.Priority),
		t.DueDate,
		t.Category,
	}
}

// ValidDueDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDueDate(s string) bool {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return d.Year() >= 1
}
