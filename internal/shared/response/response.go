package response

import (
	"github.com/gin-gonic/gin"
)

// OData v2 response envelope. Lists go out as {"d":{"results":[...]}},
// single entities as {"d":{...}}, errors as {"error":{"code","message"}}.

type Envelope struct {
	D any `json:"d"`
}

type ResultSet struct {
	Results any `json:"results"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// Metadata is the __metadata block SAP clients expect on each entity.
type Metadata struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
}

func List(c *gin.Context, status int, results any) {
	c.JSON(status, Envelope{D: ResultSet{Results: results}})
}

func Single(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{D: data})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// ODataCode maps internal apperror codes to the PascalCase codes the legacy
// OData v2 error body uses.
func ODataCode(code string) string {
	switch code {
	case "NOT_FOUND":
		return "NotFound"
	case "INVALID_INPUT":
		return "BadRequest"
	case "UNAUTHORIZED":
		return "Unauthorized"
	case "FORBIDDEN":
		return "Forbidden"
	case "CONFLICT":
		return "Conflict"
	case "INVALID_STATE":
		return "InvalidState"
	default:
		return "InternalError"
	}
}
