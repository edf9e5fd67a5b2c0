package dto

import "time"

// CreateCourseRequest represents the course creation payload
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required" example:"Node.js Basics"`
	Description *string `json:"description" example:"Curso introdutório"`
}

// CreateCourseResponse is returned when a course is created
type CreateCourseResponse struct {
	CourseID string `json:"courseId"`
}

// CourseDetail is the single-course representation.
// Description serializes as null when the course has none.
type CourseDetail struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// CourseResponse wraps a single course
type CourseResponse struct {
	Course CourseDetail `json:"course"`
}

// CourseListItem is one row of the course listing with its aggregated
// enrollment count.
type CourseListItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Enrollments int64  `json:"enrollments"`
}

// CourseListResponse carries the listing page plus the total number of
// courses matching the search filter before pagination.
type CourseListResponse struct {
	Total   int64            `json:"total"`
	Courses []CourseListItem `json:"courses"`
}

// EnrolledUserItem is one row of a course's enrollment listing
type EnrolledUserItem struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnrollmentListResponse carries a page of a course's enrollments
type EnrollmentListResponse struct {
	Total       int64              `json:"total"`
	Enrollments []EnrolledUserItem `json:"enrollments"`
}
