package seeds

import (
	"gorm.io/gorm"

	courses "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/seeds/courses"
)

// RunAllSeeds runs every idempotent seeder once at process start.
func RunAllSeeds(db *gorm.DB) {
	courses.SeedCourses(db)
}
