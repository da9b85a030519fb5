package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared"
)

// Result renders a business outcome envelope: success payloads keep the
// operation message, failures map their kind onto an HTTP status.
func Result(c *gin.Context, res shared.Result, successStatus int, data interface{}) {
	if res.Success {
		if data == nil {
			data = gin.H{"message": res.Message}
		}
		Success(c, successStatus, data)
		return
	}

	switch res.Kind {
	case shared.KindValidation:
		BadRequest(c, res.Message)
	case shared.KindNotFound:
		NotFound(c, res.Message)
	case shared.KindConflict:
		Conflict(c, res.Message)
	case shared.KindGateway:
		BadGateway(c, res.Message)
	default:
		ErrorResponse(c, http.StatusUnprocessableEntity, "OPERATION_FAILED", res.Message)
	}
}
