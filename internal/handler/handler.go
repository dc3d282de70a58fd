package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// respondError writes err to the client. Taxonomy errors keep their status and
// message; anything else becomes a 500 naming the failed action, with the
// detail only in the log.
func respondError(c *gin.Context, err error, action string) {
	if appErr, ok := utils.AsAppError(err); ok && appErr.Status() != http.StatusInternalServerError {
		utils.Error(c, appErr.Status(), appErr.Message)
		return
	}

	message := "Failed to " + action
	log.Error().
		Err(err).
		Str("request_id", utils.RequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg(message)
	utils.Error(c, http.StatusInternalServerError, message)
}
