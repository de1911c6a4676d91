package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerPassesThroughAndLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Get("/users/bob", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/bob", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "request", entries[0].Message)
	require.Equal(t, "http", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/users/bob", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
}
