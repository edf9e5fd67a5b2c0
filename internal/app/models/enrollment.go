package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a user to a course (N-N pivot).
type Enrollment struct {
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	CourseID  uuid.UUID `json:"courseId" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// EnrolledUser is a listing row for the users enrolled in a course.
type EnrolledUser struct {
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
