package models

// Subject is a taught course, name only.
type Subject struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Room is a physical classroom, name only.
type Room struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Timetable is a weekly recurring slot binding a class, subject, teacher
// and room. Times are "HH:MM" strings, dayOfWeek 0-6.
type Timetable struct {
	ID        int64  `db:"id" json:"id"`
	ClassID   int64  `db:"class_id" json:"classId"`
	SubjectID int64  `db:"subject_id" json:"subjectId"`
	TeacherID int64  `db:"teacher_id" json:"teacherId"`
	RoomID    int64  `db:"room_id" json:"roomId"`
	DayOfWeek int    `db:"day_of_week" json:"dayOfWeek"`
	StartTime string `db:"start_time" json:"startTime"`
	EndTime   string `db:"end_time" json:"endTime"`
}

// TimetableFilter narrows timetable listings by class, teacher or day.
type TimetableFilter struct {
	ClassID   *int64
	TeacherID *int64
	DayOfWeek *int
}
