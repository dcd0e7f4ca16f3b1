package controllers

import (
	"log"

	"coursecatalog/backend/config"
	"coursecatalog/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Cfg    *config.Config
	Logger *log.Logger
}

func NewAuthController(cfg *config.Config, logger *log.Logger) *AuthController {
	return &AuthController{Cfg: cfg, Logger: logger}
}

// Login checks the admin credentials and returns a JWT for catalog mutations.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Username != ac.Cfg.AdminUsername {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ac.Cfg.AdminPasswordHash), []byte(input.Password)); err != nil {
		ac.Logger.Printf("failed login for %q", input.Username)
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(input.Username, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token":     token,
		"username":  input.Username,
		"expiresIn": int(ac.Cfg.TokenTTL.Seconds()),
	})
}
