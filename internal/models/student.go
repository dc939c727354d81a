package models

// StudentStatus is the lifecycle state of a student record.
type StudentStatus string

const (
	StudentActive    StudentStatus = "Actif"
	StudentSuspended StudentStatus = "Suspendu"
	StudentGraduated StudentStatus = "Diplômé"
	StudentExcluded  StudentStatus = "Exclu"
)

// Student represents a learner registered at the school. Filiere and class
// assignments are optional; a student may be created before enrollment.
type Student struct {
	ID           int64         `db:"id" json:"id"`
	FullName     string        `db:"full_name" json:"fullName"`
	IDCardNumber *string       `db:"id_card_number" json:"idCardNumber"`
	Phone        *string       `db:"phone" json:"phone"`
	Address      *string       `db:"address" json:"address"`
	Email        *string       `db:"email" json:"email"`
	FiliereID    *int64        `db:"filiere_id" json:"filiereId"`
	ClassID      *int64        `db:"class_id" json:"classId"`
	Status       StudentStatus `db:"status" json:"status"`
	Documents    *string       `db:"documents" json:"documents"`
}

// StudentFilter narrows student listings to a single class.
type StudentFilter struct {
	ClassID *int64
}
