package utils

import (
	"strings"
	"time"

	"coursecatalog/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func GenerateJWTToken(username string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(cfg.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractSubjectFromToken validates the Authorization header and returns the token subject.
// A "Bearer " prefix is optional.
func ExtractSubjectFromToken(c *fiber.Ctx, cfg *config.Config) (string, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer "))
	if tokenString == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid subject in token")
	}

	return subject, nil
}
