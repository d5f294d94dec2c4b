package http

import (
	"fmt"
	"strconv"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
)

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q, expected RFC 3339", raw)
	}

	return &parsed, nil
}

func parseUserIDParam(raw string) (kernel.UserID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return kernel.UserID{}, fmt.Errorf("invalid user id %q", raw)
	}

	return kernel.NewUserID(id)
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
