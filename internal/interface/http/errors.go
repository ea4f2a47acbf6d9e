package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vespasoft/taskhub/pkg/apierrors"
	"github.com/vespasoft/taskhub/pkg/response"
)

// respondError maps a domain failure onto the wire: coded 4xx conditions
// become 409 responses carrying {errorCode, errorMessage}; everything else is
// a 500 with the failure's message.
func respondError(c *gin.Context, err error) {
	var ae *apierrors.Error
	if errors.As(err, &ae) && apierrors.IsConflictClass(ae) {
		response.Error[any](c, http.StatusConflict, ae.Message, ae)
		return
	}
	response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
}
