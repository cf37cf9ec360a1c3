package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// getIntParam parses an integer query parameter, falling back to the
// default on absent or malformed input.
func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// getDateParam parses a query parameter as either RFC 3339 or a plain
// YYYY-MM-DD calendar date.
func getDateParam(c echo.Context, name string) (time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return time.Time{}, fmt.Errorf("missing %s parameter", name)
	}

	if t, err := time.Parse(time.RFC3339, param); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", param)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s parameter: %s", name, param)
	}
	return t, nil
}
