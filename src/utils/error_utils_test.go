package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"Backend-Hostel-Billing/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		message string
		want    string
	}{
		{"custom message", fiber.StatusUnauthorized, "Not logged in", "Not logged in"},
		{"empty message uses status text", fiber.StatusNotFound, "", "Not Found"},
		{"unknown status", 599, "", "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return HandleError(c, tc.status, tc.message)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var got models.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.want, got.Message)
		})
	}
}
