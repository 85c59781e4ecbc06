package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/storefront/internal/errors"
)

const (
	// DefaultPageLimit is used when the request carries no limit parameter.
	DefaultPageLimit = 50
	// MaxPageLimit caps the number of items a single list request may return.
	MaxPageLimit = 100
)

var (
	errInvalidOffset = apperrors.Wrap(apperrors.ErrInvalidInput, "offset must be a non-negative integer")
	errInvalidLimit  = apperrors.Wrap(apperrors.ErrInvalidInput, "limit must be between 1 and 100")
)

// ParsePagination parses the offset and limit query parameters of list endpoints.
// Errors wrap ErrInvalidInput so they can go straight through HandleErrorGin.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, errInvalidOffset
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageLimit)))
	if err != nil || limit < 1 || limit > MaxPageLimit {
		return 0, 0, errInvalidLimit
	}

	return offset, limit, nil
}
