package courses

import (
	"log"

	"gorm.io/gorm"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/courses/model"
)

// SeedCourses inserts the initial course catalogue once. Guarded by a count
// check so restarts are idempotent; courses are never created via the API.
func SeedCourses(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.CourseModel{}).Count(&count).Error; err != nil {
		log.Printf("[ERROR] course seed count: %v", err)
		return
	}
	if count > 0 {
		log.Printf("[INFO] course table already contains %d rows, skipping seed", count)
		return
	}

	seed := []model.CourseModel{
		{Name: "E 41011 English", Teacher: "Daw Khin Win Myint", Department: "it", Year: "iv", Semester: "2"},
		{Name: "EM 41007 Engineering Mathematics", Teacher: "Daw Nyein Su Mon Htwe", Department: "it", Year: "iv", Semester: "2"},
		{Name: "IT 41017 Modern Control System", Teacher: "Daw Ei Myat Mon", Department: "it", Year: "iv", Semester: "2"},
		{Name: "IT 41023 Computer Architecture and Organization", Teacher: "Daw Khin Moh Moh Win", Department: "it", Year: "iv", Semester: "2"},
		{Name: "IT 41026 Advanced Data Management Techniques", Teacher: "Daw Than Win", Department: "it", Year: "iv", Semester: "2"},
		{Name: "Advanced Computer Networks", Teacher: "Daw Ei Thet Mon", Department: "it", Year: "iv", Semester: "2"},
		{Name: "Operating System", Teacher: "U Hein Thet Aung", Department: "it", Year: "iv", Semester: "2"},
	}
	for i := range seed {
		seed[i].Lessons = []model.LessonModel{}
	}

	if err := db.Create(&seed).Error; err != nil {
		log.Printf("[ERROR] course seed insert: %v", err)
		return
	}
	log.Println("[INFO] database seeded with initial course data")
}
