package usecases

import (
	"context"
	"fmt"

	"wagate/internal/application/gateway/message"
	"wagate/internal/domain/gateway"
	"wagate/internal/domain/order"
	"wagate/internal/shared/logger"
)

// RenderOrderDetailsUseCase builds the payment reminder block on the
// customer's order-detail page. It only renders for orders paid via this
// gateway that still await payment, and lazily regenerates the cached
// message when absent.
type RenderOrderDetailsUseCase struct {
	orderRepo    order.Repository
	settingsRepo gateway.SettingsRepository
	formatter    *message.Formatter
	// regenerateOnView forces regeneration on every view so the link
	// reflects post-placement order edits. Default is off: the cached
	// message is authoritative once written.
	regenerateOnView bool
	logger           logger.Interface
}

func NewRenderOrderDetailsUseCase(
	orderRepo order.Repository,
	settingsRepo gateway.SettingsRepository,
	formatter *message.Formatter,
	regenerateOnView bool,
	logger logger.Interface,
) *RenderOrderDetailsUseCase {
	return &RenderOrderDetailsUseCase{
		orderRepo:        orderRepo,
		settingsRepo:     settingsRepo,
		formatter:        formatter,
		regenerateOnView: regenerateOnView,
		logger:           logger,
	}
}

func (uc *RenderOrderDetailsUseCase) Execute(ctx context.Context, orderNumber string) (*PaymentBlockView, error) {
	o, err := uc.orderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	view := &PaymentBlockView{}

	if !o.IsPaidVia(gateway.GatewayID) || !o.Status().IsAwaitingPayment() {
		return view, nil
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load gateway settings: %w", err)
	}

	msg, present := o.WhatsAppMessage()
	if !present || uc.regenerateOnView {
		msg = uc.formatter.Render(o, settings)
		if err := o.SetWhatsAppMessage(msg); err != nil {
			return nil, err
		}
		if err := uc.orderRepo.UpdateWhatsAppMessage(ctx, o); err != nil {
			// Render anyway; the regenerated message is still valid for
			// this view.
			uc.logger.Warnw("failed to persist regenerated message", "error", err, "order_number", orderNumber)
		}
	}

	if url, ok := message.BuildLink(settings.WhatsAppNumber(), msg); ok {
		view.ShowLink = true
		view.LinkURL = url
		view.LinkHTML = renderLinkBlock(url, orderDetailsCopy)
	}

	return view, nil
}
