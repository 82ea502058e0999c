package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"sisauth/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func validationFailed(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"error":  "validation failed",
		"fields": validation.FieldErrors(err),
	})
}

// bindPartial binds a partial-update body. An empty body is an update that
// changes nothing.
func bindPartial(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// internalError logs the cause and answers with a generic body.
func internalError(c *gin.Context, err error, msg string) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

// pathID parses a positive int64 path parameter. On failure it writes a 404
// and returns false.
func pathID(c *gin.Context, name, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
		return 0, false
	}
	return id, true
}
