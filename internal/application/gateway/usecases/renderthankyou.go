package usecases

import (
	"context"
	"fmt"

	"wagate/internal/application/gateway/message"
	"wagate/internal/domain/gateway"
	"wagate/internal/domain/order"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/services/markdown"
)

// RenderThankYouUseCase builds the order-received page block: the deep
// link when both the cached message and the merchant number are present,
// and the instructions text regardless.
type RenderThankYouUseCase struct {
	orderRepo    order.Repository
	settingsRepo gateway.SettingsRepository
	markdown     markdown.MarkdownService
	logger       logger.Interface
}

func NewRenderThankYouUseCase(
	orderRepo order.Repository,
	settingsRepo gateway.SettingsRepository,
	markdown markdown.MarkdownService,
	logger logger.Interface,
) *RenderThankYouUseCase {
	return &RenderThankYouUseCase{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		markdown:     markdown,
		logger:       logger,
	}
}

func (uc *RenderThankYouUseCase) Execute(ctx context.Context, orderNumber string) (*PaymentBlockView, error) {
	o, err := uc.orderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load gateway settings: %w", err)
	}

	view := &PaymentBlockView{}

	msg, _ := o.WhatsAppMessage()
	if url, ok := message.BuildLink(settings.WhatsAppNumber(), msg); ok {
		view.ShowLink = true
		view.LinkURL = url
		view.LinkHTML = renderLinkBlock(url, thankYouCopy)
	}

	if instructions := settings.Instructions(); instructions != "" {
		htmlBody, err := uc.markdown.ToHTMLSanitized(instructions)
		if err != nil {
			// Degrade to no instructions rather than failing the page.
			uc.logger.Warnw("failed to render instructions", "error", err)
		} else {
			view.InstructionsHTML = htmlBody
		}
	}

	return view, nil
}
