package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ProfStephanos/school-finance-management-system/app/models"
)

// CreateStudent enrolls a new student. The NEMIS number must be unique;
// a duplicate fails with ErrDuplicateKey and writes nothing.
func CreateStudent(db *sql.DB, student *models.Student) error {
	if student.StudentName == "" || student.NemisNumber == "" || student.Grade == "" ||
		student.ParentGuardian == "" || student.Contact == "" {
		return fmt.Errorf("%w: all enrollment fields are required", ErrInvalidInput)
	}

	student.ID = uuid.NewString()
	student.DateEnrolled = time.Now()

	query := `INSERT INTO students (id, student_name, nemis_number, grade, parent_guardian, contact, date_enrolled)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := db.Exec(query,
		student.ID, student.StudentName, student.NemisNumber,
		student.Grade, student.ParentGuardian, student.Contact, student.DateEnrolled,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a student with NEMIS number %q already exists", ErrDuplicateKey, student.NemisNumber)
		}
		return fmt.Errorf("failed to enroll student: %w", err)
	}
	return nil
}

// GetStudents returns all students ordered by name.
func GetStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, student_name, nemis_number, grade, parent_guardian, contact, date_enrolled
			  FROM students
			  ORDER BY student_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(
			&s.ID, &s.StudentName, &s.NemisNumber,
			&s.Grade, &s.ParentGuardian, &s.Contact, &s.DateEnrolled,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByNemis returns a single student by NEMIS number.
func GetStudentByNemis(db *sql.DB, nemisNumber string) (*models.Student, error) {
	query := `SELECT id, student_name, nemis_number, grade, parent_guardian, contact, date_enrolled
			  FROM students
			  WHERE nemis_number = $1`

	s := &models.Student{}
	err := db.QueryRow(query, nemisNumber).Scan(
		&s.ID, &s.StudentName, &s.NemisNumber,
		&s.Grade, &s.ParentGuardian, &s.Contact, &s.DateEnrolled,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: student with NEMIS number %q", ErrReferenceNotFound, nemisNumber)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
