package handler

import (
	"strconv"
	"time"

	domainerrors "dealzpark/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// parseID reads the positive integer :id path parameter.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewFieldError("id", "gt", "id must be a positive integer")
	}

	return id, nil
}

// parseTimestamp reads an RFC 3339 timestamp for the named body field.
func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domainerrors.NewFieldError(field, "datetime", field+" must be an RFC 3339 timestamp")
	}

	return t, nil
}
