package controller

import (
	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/internal/repository"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/logger"
	"reisemlak_backend/pkg/utils/jwt"
)

type LoginInput struct {
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type AuthController struct {
	credentials repository.CredentialRepository
}

func NewAuthController(credentials repository.CredentialRepository) *AuthController {
	return &AuthController{credentials: credentials}
}

// Login yönetici girişi; doğru parola için admin token döner
func (ac *AuthController) Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := parseBody(c, input); err != nil {
		return respondError(c, err)
	}

	cred, err := ac.credentials.Load(c.UserContext())
	if err != nil {
		if apperrors.Is(err, "NOT_FOUND") {
			return respondError(c, apperrors.Unauthorized("Invalid credentials", nil))
		}
		return respondError(c, err)
	}

	if !cred.CheckPassword(input.Password) {
		logger.WithFields(map[string]interface{}{"ip": c.IP()}).Warn("Failed admin login attempt")
		return respondError(c, apperrors.Unauthorized("Invalid credentials", nil))
	}

	token, err := jwt.GenerateToken(jwt.AdminRole)
	if err != nil {
		return respondError(c, apperrors.Internal("Could not generate token", err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  jwt.AdminRole,
	})
}

// GetMe oturumun hâlâ geçerli olduğunu doğrular
func (ac *AuthController) GetMe(c *fiber.Ctx) error {
	claims := c.Locals("admin").(*jwt.Claims)

	return c.JSON(fiber.Map{
		"role":      claims.Role,
		"expiresAt": claims.ExpiresAt.Time,
	})
}

// ChangePassword mevcut parolayı doğrulayıp yenisini kaydeder
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	input := new(ChangePasswordInput)
	if err := parseBody(c, input); err != nil {
		return respondError(c, err)
	}

	cred, err := ac.credentials.Load(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	if !cred.CheckPassword(input.CurrentPassword) {
		return respondError(c, apperrors.Unauthorized("Current password is incorrect", nil))
	}

	if err := cred.SetPassword(input.NewPassword); err != nil {
		return respondError(c, apperrors.Internal("Could not hash password", err))
	}
	if err := ac.credentials.Save(c.UserContext(), cred); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Password updated successfully",
	})
}
