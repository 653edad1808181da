package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LessonModel is embedded in its course's JSONB lesson list; it never has a
// row of its own. The id is generated when the lesson is appended.
type LessonModel struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	File   string `json:"file"`
	Link   string `json:"link"`
}

// CourseModel owns an ordered list of embedded lessons. Teacher is the
// owning key: only the named teacher may mutate the list. Courses are only
// created by the seeder.
type CourseModel struct {
	ID         uuid.UUID                        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string                           `gorm:"size:255;not null" json:"name"`
	Department string                           `gorm:"size:100" json:"department"`
	Year       string                           `gorm:"size:20" json:"year"`
	Semester   string                           `gorm:"size:20" json:"semester"`
	Teacher    string                           `gorm:"size:100;not null;index" json:"teacher"`
	Lessons    datatypes.JSONSlice[LessonModel] `gorm:"type:jsonb;not null;default:'[]'" json:"lessons"`
}

func (CourseModel) TableName() string {
	return "courses"
}

// NewLessonID generates the stable external id of an embedded lesson.
func NewLessonID() string {
	return uuid.NewString()
}

// FindLessonIndex locates a lesson by id within a course's list. Linear
// scan; lesson counts stay small.
func FindLessonIndex(lessons []LessonModel, id string) int {
	for i := range lessons {
		if lessons[i].ID == id {
			return i
		}
	}
	return -1
}
