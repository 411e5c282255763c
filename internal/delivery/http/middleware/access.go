package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tourism-directory/internal/domain"
)

const sessionLocalsKey = "session"

// AccessChecker - то, что нужно guard-у от AccessUseCase
type AccessChecker interface {
	ResolveSession(ctx context.Context, token string) domain.Session
	Decide(route string, session domain.Session) domain.AccessDecision
	SignInRoute() domain.Route
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(c *fiber.Ctx) string {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// RequireRoute пропускает запрос, только если сессия может открыть экран route.
// Pending - 202, отказ гостю - 401, отказ по роли - 403; в теле только redirect.
func RequireRoute(checker AccessChecker, route domain.Route) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := checker.ResolveSession(c.UserContext(), BearerToken(c))
		decision := checker.Decide(route.String(), session)

		switch {
		case decision.Allowed():
			c.Locals(sessionLocalsKey, session)
			return c.Next()
		case decision.Pending():
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
				"status": string(domain.OutcomePending),
			})
		}

		status := fiber.StatusForbidden
		if decision.Redirect == checker.SignInRoute() {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(fiber.Map{
			"redirect": decision.Redirect.String(),
		})
	}
}

// SessionFromCtx - сессия, сохранённая RequireRoute
func SessionFromCtx(c *fiber.Ctx) (domain.Session, bool) {
	s, ok := c.Locals(sessionLocalsKey).(domain.Session)
	return s, ok
}
