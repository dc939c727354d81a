package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

// QueryID reads an int64 query parameter, nil when absent.
func QueryID(c *gin.Context, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("query parameter %q must be an integer", key))
	}
	return &v, nil
}

// QueryInt reads an int query parameter, nil when absent.
func QueryInt(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("query parameter %q must be an integer", key))
	}
	return &v, nil
}

// QueryString reads a string query parameter, nil when absent.
func QueryString(c *gin.Context, key string) *string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	return &raw
}
