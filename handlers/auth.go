package handlers

import (
	"time"

	"github.com/edustack/school-fees-api/config"
	"github.com/edustack/school-fees-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// GenerateToken signs the JWT carried by every authenticated request. The
// claims are the principal fields the role middleware consumes.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID.Hex(),
		"role":   user.Role,
		"email":  user.Email,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET")))
}

// @Summary Log a user in.
// @Description verify credentials and issue a JWT.
// @Tags auth
// @Accept json
// @Param credentials body LoginRequest true "Login credentials"
// @Produce json
// @Success 200 {object} LoginResponse
// @Router /api/auth/login [post]
func Login(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(LoginRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}
		if err := validateStruct(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid login request", err.Error())
		}

		var user models.User
		if err := h.Db.FindOne(h.C, bson.M{"email": req.Email}).Decode(&user); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid credentials", nil)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid credentials", nil)
		}

		token, err := GenerateToken(&user)
		if err != nil {
			h.L.Error("[Auth] Error signing token ", err)
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to issue token", err.Error())
		}

		now := time.Now()
		_, _ = h.Db.UpdateOne(h.C, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"lastLogin": now}})
		user.LastLogin = now

		return FiberJsonResponse(c, fiber.StatusOK, "success", "logged in", LoginResponse{User: user, Token: token})
	}
}
