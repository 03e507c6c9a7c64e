package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestValidationFailed_CarriesFieldErrors(t *testing.T) {
	app := fiber.New()
	app.Post("/demo", func(c *fiber.Ctx) error {
		return ValidationFailed(c, map[string]string{
			"title":    "Title is required",
			"location": "Location is required",
		})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/demo", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Success {
		t.Fatal("validation failure must not report success")
	}
	if body.Errors["title"] != "Title is required" || body.Errors["location"] != "Location is required" {
		t.Fatalf("field errors missing: %+v", body.Errors)
	}
}
