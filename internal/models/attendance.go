package models

// AttendanceStatus marks a student's presence for one day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
)

// Attendance is a classroom attendance record for one student and day.
type Attendance struct {
	ID        int64            `db:"id" json:"id"`
	StudentID int64            `db:"student_id" json:"studentId"`
	Date      string           `db:"date" json:"date"`
	Status    AttendanceStatus `db:"status" json:"status"`
	Remarks   *string          `db:"remarks" json:"remarks"`
}

// AttendanceFilter narrows attendance listings by student or day.
type AttendanceFilter struct {
	StudentID *int64
	Date      *string
}

// InternshipAttendance is an attendance record taken at the clinical site.
type InternshipAttendance struct {
	ID           int64            `db:"id" json:"id"`
	InternshipID int64            `db:"internship_id" json:"internshipId"`
	StudentID    int64            `db:"student_id" json:"studentId"`
	Date         string           `db:"date" json:"date"`
	Status       AttendanceStatus `db:"status" json:"status"`
	Remarks      *string          `db:"remarks" json:"remarks"`
}

// InternshipAttendanceFilter narrows internship attendance listings.
type InternshipAttendanceFilter struct {
	InternshipID *int64
	StudentID    *int64
	Date         *string
}
