package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a course offered on the platform.
type Course struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"` // Nullable
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CourseWithEnrollments is a listing row carrying the aggregated
// enrollment count for the course.
type CourseWithEnrollments struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Enrollments int64     `json:"enrollments"`
}
