// Package middleware contiene los middlewares HTTP propios de la aplicación.
package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"

	"gestion_forestal/internal/common"
	"gestion_forestal/internal/global"
	"gestion_forestal/internal/logger"
)

// CronGuard protege los disparos GET tipo cron de los jobs de sincronización
// con un secreto compartido por bearer token. Si CRON_SECRET no está
// configurado el guard es pasante (entornos de desarrollo).
func CronGuard() fiber.Handler {
	return func(c fiber.Ctx) error {
		secreto := ""
		if global.ServerConfig != nil {
			secreto = global.ServerConfig.CronSecret
		}
		if secreto == "" {
			return c.Next()
		}

		recibido := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(recibido), []byte(secreto)) != 1 {
			logger.GetErrorLogger().WithField("path", c.Path()).Warn("Disparo de sincronización rechazado: secreto inválido")
			return c.Status(common.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Disparo de sincronización no autorizado",
				"code":    common.ErrCodeSyncAuth.Code,
			})
		}

		return c.Next()
	}
}
