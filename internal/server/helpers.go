package server

import (
	"strings"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/internal/common"
)

// parseID validates a required UUID request field.
func parseID(raw, name string) (uuid.UUID, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", name)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", name)
	}
	return id, nil
}
