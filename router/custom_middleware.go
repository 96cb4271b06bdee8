package router

import (
	"os"
	"strings"

	"github.com/edustack/school-fees-api/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Protected parses the Bearer token and stores the caller as a Principal in
// the request locals. With roles given, callers outside that set get a 403.
func Protected(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "missing or malformed token", nil)
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "invalid or expired token", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "invalid token claims", nil)
		}
		userIdHex, _ := claims["userId"].(string)
		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)
		userId, err := primitive.ObjectIDFromHex(userIdHex)
		if err != nil {
			return handlers.FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "invalid token claims", nil)
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if r == role {
					allowed = true
					break
				}
			}
			if !allowed {
				return handlers.FiberJsonResponse(c, fiber.StatusForbidden, "error", "insufficient permissions", nil)
			}
		}

		c.Locals(handlers.PrincipalKey, handlers.Principal{UserId: userId, Role: role, Email: email})
		return c.Next()
	}
}
