package respond

import (
	"fmt"
	"io"

	"github.com/BuzzLyutic/task-planner/internal/model"
)

func Task(w io.Writer, t model.Task) {
	fmt.Fprintf(w, "ID: %d | Title: %s | Description: %s | Priority: %s | Due: %s | Category: %s\n",
		t.ID, t.Title, t.Description, t.Priority, t.DueDate, t.Category)
}

func Tasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		Message(w, "No tasks found.")
		return
	}
	for _, t := range tasks {
		Task(w, t)
	}
}

func Message(w io.Writer, message string) {
	fmt.Fprintln(w, message)
}

func NotFound(w io.Writer, id string) {
	fmt.Fprintf(w, "No task found with ID: %s.\n", id)
}

func Error(w io.Writer, message string) {
	fmt.Fprintf(w, "Error: %s\n", message)
}
