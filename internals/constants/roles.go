package constants

// Account roles. There is no admin tier; course ownership is keyed on the
// teacher's name.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)
