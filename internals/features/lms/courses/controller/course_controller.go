package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/courses/model"
	helper "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers"
)

// CourseController serves the read-only course lookups. Courses are seeded;
// there is no create/delete surface.
type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GetByNameAndTeacher handles GET /api/courses/course?name=&teacher=.
func (cc *CourseController) GetByNameAndTeacher(c *fiber.Ctx) error {
	name := c.Query("name")
	teacher := c.Query("teacher")
	if name == "" || teacher == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing course name or teacher")
	}

	var course model.CourseModel
	err := cc.DB.Where("name = ? AND teacher = ?", name, teacher).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Course not found in database.")
	}
	if err != nil {
		log.Printf("[ERROR] course lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during course lookup.")
	}

	return helper.Success(c, fiber.Map{"course": course})
}

// GetByID handles GET /api/courses/id/:courseId.
func (cc *CourseController) GetByID(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course not found.")
	}

	var course model.CourseModel
	err = cc.DB.First(&course, "id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Course not found.")
	}
	if err != nil {
		log.Printf("[ERROR] course lookup by id: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error.")
	}

	return helper.Success(c, fiber.Map{"course": course})
}

// GetByTeacher handles GET /api/courses/teacher/:name, returning every
// course (and so every lesson) of that teacher.
func (cc *CourseController) GetByTeacher(c *fiber.Ctx) error {
	teacher := c.Params("name")

	courses := []model.CourseModel{}
	if err := cc.DB.Where("teacher = ?", teacher).Find(&courses).Error; err != nil {
		log.Printf("[ERROR] courses by teacher: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error.")
	}

	return helper.Success(c, fiber.Map{"courses": courses})
}
