package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smsbridge/internal/models"
	"smsbridge/internal/service"
)

type Handler struct {
	Service *service.MessageService
	logger  *zap.Logger
}

func NewAPIHandler(service *service.MessageService, logger *zap.Logger) *Handler {
	return &Handler{
		Service: service,
		logger:  logger,
	}
}

// Index godoc
// @Summary Liveness greeting
// @Produce plain
// @Success 200 {string} string "OK"
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ReceiveSMS godoc
// @Summary Inbound SMS webhook
// @Description The provider retries anything other than 204, so delivery problems never change the status.
// @Accept json
// @Produce plain
// @Param message body models.InboundMessage true "Inbound SMS"
// @Success 204 {string} string "Accepted"
// @Failure 400 {string} string "Invalid request"
// @Router /sms [post]
func (h *Handler) ReceiveSMS(c *gin.Context) {
	var msg models.InboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.logger.Debug("rejected inbound body", zap.Error(err))
		c.String(http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.Service.Process(c.Request.Context(), msg); err != nil {
		if errors.Is(err, service.ErrInvalidTimestamp) {
			c.String(http.StatusBadRequest, "Invalid request")
			return
		}
		h.logger.Error("processing inbound message", zap.Error(err))
	}
	c.String(http.StatusNoContent, "Accepted")
}

// MethodNotAllowed godoc
// @Summary Any method other than POST on /sms
// @Produce plain
// @Failure 405 {string} string "Unsupported method."
// @Router /sms [get]
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, "Unsupported method.")
}
