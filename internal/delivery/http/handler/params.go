package handler

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/supply-route-service/internal/pkg/errors"
)

// parseID разбирает положительный целочисленный идентификатор
func parseID(raw, name string) (int64, error) {
	if raw == "" {
		return 0, invalidParam(name, "required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidParam(name, "must be a positive integer")
	}
	return id, nil
}

func parseDialogID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidParam("id", "must be a UUID")
	}
	return id, nil
}

func invalidParam(name, reason string) error {
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{name: reason})
}
