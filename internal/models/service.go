package models

// Service is an external clinical site hosting student internships.
type Service struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Location *string `db:"location" json:"location"`
}
