package dto

type UserRegisteredEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type ApplicationSubmittedEvent struct {
	ApplicationID uint   `json:"application_id"`
	JobID         uint   `json:"job_id"`
	JobTitle      string `json:"job_title"`
	ApplicantID   uint   `json:"applicant_id"`
	EmployerID    uint   `json:"employer_id"`
}

type ApplicationStatusChangedEvent struct {
	ApplicationID uint   `json:"application_id"`
	JobID         uint   `json:"job_id"`
	ApplicantID   uint   `json:"applicant_id"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
}
