package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soportec/gestor-api/pkg/logger"
)

// HeaderRequestID cabecera con el id de correlación de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un id de correlación a cada petición (respetando el que
// venga del cliente) y la registra al terminar con método, ruta, código y
// duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals("request_id", requestID)
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
