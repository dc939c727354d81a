package models

// Class is a cohort of students within a filiere.
type Class struct {
	ID           int64  `db:"id" json:"id"`
	FiliereID    int64  `db:"filiere_id" json:"filiereId"`
	Name         string `db:"name" json:"name"`
	Abbreviation string `db:"abbreviation" json:"abbreviation"`
}

// ClassFilter narrows class listings to a single filiere.
type ClassFilter struct {
	FiliereID *int64
}
