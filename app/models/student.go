package models

import "time"

// Student represents an enrolled student. The NEMIS number is the natural
// key used everywhere the UI or API refers to a student; the id is internal.
type Student struct {
	ID             string    `json:"id"`
	StudentName    string    `json:"student_name" validate:"required"`
	NemisNumber    string    `json:"nemis_number" validate:"required"`
	Grade          string    `json:"grade" validate:"required"`
	ParentGuardian string    `json:"parent_guardian" validate:"required"`
	Contact        string    `json:"contact" validate:"required"`
	DateEnrolled   time.Time `json:"date_enrolled"`
}
