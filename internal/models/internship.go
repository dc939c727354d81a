package models

// ValidationStatus tracks whether an internship placement was approved.
type ValidationStatus string

const (
	ValidationPending   ValidationStatus = "Pending"
	ValidationValidated ValidationStatus = "Validated"
	ValidationRejected  ValidationStatus = "Rejected"
)

// Internship assigns one student to one service for one periode de stage.
type Internship struct {
	ID               int64            `db:"id" json:"id"`
	StudentID        int64            `db:"student_id" json:"studentId"`
	ServiceID        int64            `db:"service_id" json:"serviceId"`
	PeriodeDeStageID int64            `db:"periode_de_stage_id" json:"periodeDeStageId"`
	StartDate        string           `db:"start_date" json:"startDate"`
	EndDate          string           `db:"end_date" json:"endDate"`
	ValidationStatus ValidationStatus `db:"validation_status" json:"validationStatus"`
}

// InternshipFilter holds the single-equality filters honored when listing.
// Only one filter is applied at a time, first match wins.
type InternshipFilter struct {
	StudentID *int64
	ServiceID *int64
	PeriodeID *int64
}
