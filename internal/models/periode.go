package models

// PeriodeDeStage is a named internship window shared across placements.
// Dates are ISO "YYYY-MM-DD" strings; start < end is enforced client-side.
type PeriodeDeStage struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	StartDate string `db:"start_date" json:"startDate"`
	EndDate   string `db:"end_date" json:"endDate"`
}
