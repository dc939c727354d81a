package models

// Teacher is the staff record linked to a user account. Creating a user
// with the teacher role does not create this record; it is a separate step.
type Teacher struct {
	ID       int64   `db:"id" json:"id"`
	UserID   int64   `db:"user_id" json:"userId"`
	FullName string  `db:"full_name" json:"fullName"`
	Subject  *string `db:"subject" json:"subject"`
}
