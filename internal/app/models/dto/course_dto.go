package dto

// CreateCourseRequest represents course creation data. Duration is in months.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	Status      string `json:"status"`
}

// UpdateCourseRequest represents a partial course update. Only non-nil
// fields are applied.
type UpdateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration"`
	Status      *string `json:"status"`
}
