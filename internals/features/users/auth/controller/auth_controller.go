package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/configs"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/dto"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/model"
	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/service"
	helper "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Signup creates a new account and logs it in. Name is the unique key; a
// duplicate yields 400 with no new record.
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.AuthMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.AuthMessage(c, fiber.StatusBadRequest, "Missing or invalid signup fields")
	}

	var existing model.UserModel
	err := ac.DB.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return helper.AuthMessage(c, fiber.StatusBadRequest, "User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] signup lookup: %v", err)
		return helper.AuthMessage(c, fiber.StatusInternalServerError, "Server error")
	}

	user := model.UserModel{
		Role:       req.Role,
		Department: req.Department,
		Year:       req.Year,
		Semester:   req.Semester,
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] signup insert: %v", err)
		return helper.AuthMessage(c, fiber.StatusInternalServerError, "Server error")
	}

	token, err := service.GenerateAccessToken(configs.JWTSecret, user.Role, user.Name, user.ID)
	if err != nil {
		log.Printf("[ERROR] signup token: %v", err)
		return helper.AuthMessage(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"msg":   "Signup successful. Logged in.",
		"user":  user,
		"token": token,
	})
}

// Login authenticates by the (name, role, email) triple and plain password
// equality.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.AuthMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.AuthMessage(c, fiber.StatusBadRequest, "Missing or invalid login fields")
	}

	var user model.UserModel
	err := ac.DB.Where("name = ? AND role = ? AND email = ?", req.Name, req.Role, req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.AuthMessage(c, fiber.StatusBadRequest, "User not found")
	}
	if err != nil {
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.AuthMessage(c, fiber.StatusInternalServerError, "Server error")
	}

	if user.Password != req.Password {
		return helper.AuthMessage(c, fiber.StatusBadRequest, "Incorrect password")
	}

	token, err := service.GenerateAccessToken(configs.JWTSecret, user.Role, user.Name, user.ID)
	if err != nil {
		log.Printf("[ERROR] login token: %v", err)
		return helper.AuthMessage(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"msg":   "Login successful",
		"user":  user,
		"token": token,
	})
}
