package dto

// CreateStudentRequest represents student creation data. EnrollmentDate
// accepts "2006-01-02" or RFC3339.
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Course         string `json:"course" binding:"required"`
	EnrollmentDate string `json:"enrollmentDate" binding:"required"`
	Status         string `json:"status"`
}

// UpdateStudentRequest represents a partial student update. Only non-nil
// fields are applied.
type UpdateStudentRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Course         *string `json:"course"`
	EnrollmentDate *string `json:"enrollmentDate"`
	Status         *string `json:"status"`
}
