package usecases

import (
	"context"
	"fmt"

	"wagate/internal/application/gateway/hostservices"
	"wagate/internal/application/gateway/message"
	"wagate/internal/domain/gateway"
	"wagate/internal/domain/order"
	vo "wagate/internal/domain/order/valueobjects"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/services/markdown"
)

// EmailInstructionsUseCase renders the instructions block for order
// emails and sends the on-hold notification to the customer.
type EmailInstructionsUseCase struct {
	email    hostservices.EmailService
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewEmailInstructionsUseCase(
	email hostservices.EmailService,
	markdown markdown.MarkdownService,
	logger logger.Interface,
) *EmailInstructionsUseCase {
	return &EmailInstructionsUseCase{
		email:    email,
		markdown: markdown,
		logger:   logger,
	}
}

// Render returns the instructions block for an order email, or ok=false
// when the block must be omitted: admin copies never carry payment
// instructions, and only on-hold orders paid via this gateway qualify.
func (uc *EmailInstructionsUseCase) Render(o *order.Order, settings *gateway.Settings, sentToAdmin, plainText bool) (string, bool) {
	if sentToAdmin {
		return "", false
	}
	if !o.IsPaidVia(gateway.GatewayID) || o.Status() != vo.StatusOnHold {
		return "", false
	}
	instructions := settings.Instructions()
	if instructions == "" {
		return "", false
	}

	if plainText {
		return instructions + "\n", true
	}

	htmlBody, err := uc.markdown.ToHTMLSanitized(instructions)
	if err != nil {
		uc.logger.Warnw("failed to render email instructions", "error", err)
		return "", false
	}
	return htmlBody, true
}

// Send delivers the on-hold email to the billing address, including the
// instructions block and the deep link when available.
func (uc *EmailInstructionsUseCase) Send(ctx context.Context, o *order.Order, settings *gateway.Settings) error {
	if uc.email == nil {
		return nil
	}

	to := o.Billing().Email
	if to == "" {
		return nil
	}

	textBody, ok := uc.Render(o, settings, false, true)
	if !ok {
		return nil
	}
	htmlBody, _ := uc.Render(o, settings, false, false)

	msg, _ := o.WhatsAppMessage()
	if url, linkOK := message.BuildLink(settings.WhatsAppNumber(), msg); linkOK {
		textBody += fmt.Sprintf("\n%s\n", url)
		htmlBody += renderLinkBlock(url, thankYouCopy)
	}

	subject := fmt.Sprintf("Your order %s is awaiting payment", o.OrderNumber())
	return uc.email.SendOnHoldInstructions(ctx, to, subject, htmlBody, textBody)
}
