package models

// Filiere is a nursing specialization track (e.g. Infirmier Polyvalent).
type Filiere struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Abbreviation string `db:"abbreviation" json:"abbreviation"`
	NumYears     int    `db:"num_years" json:"numYears"`
}
