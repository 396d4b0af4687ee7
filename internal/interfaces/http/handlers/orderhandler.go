package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wagate/internal/application/gateway/usecases"
	"wagate/internal/domain/order"
	apperrors "wagate/internal/shared/errors"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/utils"
)

// OrderHandler serves the two customer-facing display surfaces: the
// order-received (thank-you) block and the order-detail payment block.
type OrderHandler struct {
	thankYouUC     *usecases.RenderThankYouUseCase
	orderDetailsUC *usecases.RenderOrderDetailsUseCase
	logger         logger.Interface
}

func NewOrderHandler(
	thankYouUC *usecases.RenderThankYouUseCase,
	orderDetailsUC *usecases.RenderOrderDetailsUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		thankYouUC:     thankYouUC,
		orderDetailsUC: orderDetailsUC,
		logger:         logger,
	}
}

func (h *OrderHandler) ThankYou(c *gin.Context) {
	orderNumber := c.Param("order_number")

	view, err := h.thankYouUC.Execute(c.Request.Context(), orderNumber)
	if err != nil {
		h.renderError(c, err, orderNumber)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

func (h *OrderHandler) PaymentDetails(c *gin.Context) {
	orderNumber := c.Param("order_number")

	view, err := h.orderDetailsUC.Execute(c.Request.Context(), orderNumber)
	if err != nil {
		h.renderError(c, err, orderNumber)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

func (h *OrderHandler) renderError(c *gin.Context, err error, orderNumber string) {
	if errors.Is(err, order.ErrOrderNotFound) {
		utils.AppErrorResponse(c, apperrors.NewNotFoundError("order not found"))
		return
	}
	h.logger.Errorw("failed to render payment block", "error", err, "order_number", orderNumber)
	utils.AppErrorResponse(c, apperrors.NewInternalError("failed to render payment block"))
}
