package user

import (
	"net/http"
	"strconv"

	"go-sapmock/internal/shared/apperror"
	"go-sapmock/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, response.ODataCode(httpErr.Code), httpErr.Message)
}

func (h *Handler) GetUsers(c *gin.Context) {
	ctx := c.Request.Context()

	skip, err := strconv.Atoi(c.DefaultQuery("$skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	top, err := strconv.Atoi(c.DefaultQuery("$top", "10"))
	if err != nil || top < 1 {
		top = 10
	}
	filter := c.Query("$filter")

	h.logger.Debug("http get users",
		zap.Int("skip", skip),
		zap.Int("top", top),
		zap.String("filter", filter),
	)

	resp, err := h.service.GetUsers(ctx, skip, top, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, resp)
}

func (h *Handler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	resp, err := h.service.GetUser(ctx, userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Single(c, http.StatusOK, resp)
}
