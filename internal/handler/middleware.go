package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ContextUserID ключ идентификатора пользователя в контексте echo.
const ContextUserID = "user_id"

// IdentityResolver определяет пользователя по токену доступа.
type IdentityResolver interface {
	Resolve(token string) (userID string, authenticated bool)
}

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// AuthMiddleware проверяет Bearer токен и кладет пользователя в контекст.
// Пути из skip пропускаются без проверки.
func AuthMiddleware(resolver IdentityResolver, logger *logrus.Logger, skip ...string) echo.MiddlewareFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skipped[c.Request().URL.Path]; ok {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.WithField("path", c.Request().URL.Path).Warn("Missing bearer token")
				return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "missing or invalid authorization header"))
			}

			userID, ok := resolver.Resolve(parts[1])
			if !ok {
				logger.WithField("path", c.Request().URL.Path).Warn("Invalid bearer token")
				return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "invalid or expired token"))
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}

func userIDFrom(c echo.Context) string {
	userID, _ := c.Get(ContextUserID).(string)
	return userID
}
