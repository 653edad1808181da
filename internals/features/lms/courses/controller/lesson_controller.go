package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/courses/dto"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/courses/model"
	helper "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers/storage"
	authMw "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/middlewares/auth"
)

// LessonController mutates the embedded lesson list of a course. Every
// mutation is restricted to the course's recorded teacher, and any stored
// attachment is cleaned up when the request fails after the file was
// written.
type LessonController struct {
	DB    *gorm.DB
	Files *storage.Store
}

func NewLessonController(db *gorm.DB, files *storage.Store) *LessonController {
	return &LessonController{DB: db, Files: files}
}

// ingestAttachment pulls the optional lessonFile part. A disallowed type is
// observable only as "no file attached"; an oversized file aborts with 400
// before any lesson record is touched.
func (lc *LessonController) ingestAttachment(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("lessonFile")
	if err != nil {
		// No file part in the form.
		return "", nil
	}
	return lc.Files.Ingest(fh)
}

// Add handles POST /api/courses/:id/lessons.
func (lc *LessonController) Add(c *fiber.Ctx) error {
	courseID := c.Params("id")
	form := dto.ParseLessonForm(c)

	fileName, err := lc.ingestAttachment(c)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			return helper.Error(c, fiber.StatusBadRequest, "Uploaded file is too large.")
		}
		log.Printf("[ERROR] attachment ingest: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson addition.")
	}

	if !form.Complete() {
		lc.Files.Remove(fileName)
		return helper.Error(c, fiber.StatusBadRequest, "Missing lesson title or number.")
	}

	lesson := model.LessonModel{
		ID:     model.NewLessonID(),
		Number: form.Number,
		Title:  form.Title,
		Desc:   form.Desc,
		File:   fileName,
		Link:   form.Link,
	}

	course, err := lc.findCourse(courseID)
	if err != nil {
		lc.Files.Remove(fileName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "Authorization failed. You are not the instructor of this course.")
		}
		log.Printf("[ERROR] lesson add lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson addition.")
	}

	course.Lessons = append(course.Lessons, lesson)
	ok, err := lc.saveLessonsAsOwner(course, authMw.GetUserName(c))
	if err != nil {
		lc.Files.Remove(fileName)
		log.Printf("[ERROR] lesson add update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson addition.")
	}
	if !ok {
		lc.Files.Remove(fileName)
		return helper.Error(c, fiber.StatusForbidden, "Authorization failed. You are not the instructor of this course.")
	}

	return helper.Success(c, fiber.Map{"msg": "Lesson added", "course": course})
}

// Update handles PUT /api/courses/:courseId/lessons/:lessonId. All four text
// fields are overwritten from the form; the attachment is swapped only when
// a new file was uploaded, and the superseded file is removed only after the
// course row is durably saved.
func (lc *LessonController) Update(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	lessonID := c.Params("lessonId")
	form := dto.ParseLessonForm(c)

	newFile, err := lc.ingestAttachment(c)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			return helper.Error(c, fiber.StatusBadRequest, "Uploaded file is too large.")
		}
		log.Printf("[ERROR] attachment ingest: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson update.")
	}

	course, err := lc.findCourseOwnedBy(courseID, authMw.GetUserName(c))
	if err != nil {
		lc.Files.Remove(newFile)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "Authorization failed. Course not found or you are not the instructor.")
		}
		log.Printf("[ERROR] lesson update lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson update.")
	}

	idx := model.FindLessonIndex(course.Lessons, lessonID)
	if idx < 0 {
		lc.Files.Remove(newFile)
		return helper.Error(c, fiber.StatusNotFound, "Lesson not found within the course.")
	}

	oldFile := course.Lessons[idx].File
	course.Lessons[idx].Title = form.Title
	course.Lessons[idx].Number = form.Number
	course.Lessons[idx].Desc = form.Desc
	course.Lessons[idx].Link = form.Link
	if newFile != "" {
		course.Lessons[idx].File = newFile
	}

	if err := lc.DB.Model(&model.CourseModel{}).
		Where("id = ?", course.ID).
		Update("lessons", course.Lessons).Error; err != nil {
		lc.Files.Remove(newFile)
		log.Printf("[ERROR] lesson update save: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson update.")
	}

	if newFile != "" && oldFile != "" {
		lc.Files.Remove(oldFile)
	}

	return helper.Success(c, fiber.Map{"msg": "Lesson updated successfully", "course": course})
}

// Delete handles DELETE /api/courses/:courseId/lessons/:lessonId. The course
// is read first to learn the attachment name, then the lesson is pulled with
// the owner guard in the WHERE clause; the file is removed last, best-effort.
func (lc *LessonController) Delete(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	lessonID := c.Params("lessonId")

	course, err := lc.findCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found.")
		}
		log.Printf("[ERROR] lesson delete lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson deletion.")
	}

	idx := model.FindLessonIndex(course.Lessons, lessonID)
	if idx < 0 {
		return helper.Error(c, fiber.StatusNotFound, "Lesson not found.")
	}
	fileName := course.Lessons[idx].File

	course.Lessons = append(course.Lessons[:idx], course.Lessons[idx+1:]...)
	ok, err := lc.saveLessonsAsOwner(course, authMw.GetUserName(c))
	if err != nil {
		log.Printf("[ERROR] lesson delete update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during lesson deletion.")
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Authorization failed. You are not the instructor of this course.")
	}

	if fileName != "" {
		lc.Files.Remove(fileName)
	}

	return helper.Success(c, fiber.Map{"msg": "Lesson deleted successfully", "course": course})
}

func (lc *LessonController) findCourse(courseID string) (*model.CourseModel, error) {
	id, err := uuid.Parse(courseID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var course model.CourseModel
	if err := lc.DB.First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (lc *LessonController) findCourseOwnedBy(courseID, teacher string) (*model.CourseModel, error) {
	id, err := uuid.Parse(courseID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var course model.CourseModel
	if err := lc.DB.Where("id = ? AND teacher = ?", id, teacher).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// saveLessonsAsOwner writes the lesson list with the teacher name in the
// WHERE clause, so ownership is enforced by the row update itself. Reports
// false when no row matched (wrong teacher, or course vanished).
func (lc *LessonController) saveLessonsAsOwner(course *model.CourseModel, teacher string) (bool, error) {
	res := lc.DB.Model(&model.CourseModel{}).
		Where("id = ? AND teacher = ?", course.ID, teacher).
		Update("lessons", course.Lessons)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
