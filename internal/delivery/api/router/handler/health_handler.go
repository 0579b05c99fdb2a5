package handler

import (
	"net/http"

	"payverify/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const healthMessage = "Backend is running!"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Message(c, http.StatusOK, healthMessage)
}
