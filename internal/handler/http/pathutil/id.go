package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID parses an integer ID from a URL path after removing the
// given prefix. Returns ErrInvalidID when the remainder is not a
// positive integer.
//
// Example:
//
//	id, err := ExtractID("/data/123", "/data/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
