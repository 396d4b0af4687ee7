package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wagate/internal/application/gateway/usecases"
	"wagate/internal/domain/gateway"
	"wagate/internal/domain/order"
	apperrors "wagate/internal/shared/errors"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/utils"
)

type CheckoutHandler struct {
	processPaymentUC *usecases.ProcessPaymentUseCase
	logger           logger.Interface
}

func NewCheckoutHandler(processPaymentUC *usecases.ProcessPaymentUseCase, logger logger.Interface) *CheckoutHandler {
	return &CheckoutHandler{
		processPaymentUC: processPaymentUC,
		logger:           logger,
	}
}

type ProcessPaymentRequest struct {
	CartID string `json:"cart_id"`
}

type ProcessPaymentResponse struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect"`
}

// ProcessPayment is the host checkout's entry point for this gateway.
func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.AppErrorResponse(c, apperrors.NewBadRequestError("invalid request", err.Error()))
		return
	}

	result, err := h.processPaymentUC.Execute(c.Request.Context(), usecases.ProcessPaymentCommand{
		OrderNumber: orderNumber,
		CartID:      req.CartID,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			utils.AppErrorResponse(c, apperrors.NewNotFoundError("order not found"))
		case errors.Is(err, gateway.ErrGatewayDisabled):
			utils.AppErrorResponse(c, apperrors.NewConflictError("whatsapp payment is disabled"))
		default:
			h.logger.Errorw("failed to process payment", "error", err, "order_number", orderNumber)
			utils.AppErrorResponse(c, apperrors.NewInternalError("failed to process payment"))
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment processed", ProcessPaymentResponse{
		Result:   "success",
		Redirect: result.RedirectURL,
	})
}
