package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/discussions/dto"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/discussions/model"
	helper "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers"
)

var validate = validator.New()

type DiscussionController struct {
	DB *gorm.DB
}

func NewDiscussionController(db *gorm.DB) *DiscussionController {
	return &DiscussionController{DB: db}
}

// Create handles POST /api/discussion.
func (dc *DiscussionController) Create(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing post fields")
	}

	post := model.DiscussionModel{
		AuthorName: req.AuthorName,
		AuthorRole: req.AuthorRole,
		PostText:   req.PostText,
	}
	if err := dc.DB.Create(&post).Error; err != nil {
		log.Printf("[ERROR] discussion insert: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error.")
	}

	return helper.Success(c, fiber.Map{"post": post})
}

// List handles GET /api/discussion, newest first.
func (dc *DiscussionController) List(c *fiber.Ctx) error {
	posts := []model.DiscussionModel{}
	if err := dc.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		log.Printf("[ERROR] discussion list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error.")
	}
	return helper.Success(c, fiber.Map{"posts": posts})
}
