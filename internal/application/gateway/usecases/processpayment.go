package usecases

import (
	"context"
	"fmt"

	"wagate/internal/application/gateway/hostservices"
	"wagate/internal/application/gateway/message"
	"wagate/internal/domain/gateway"
	"wagate/internal/domain/order"
	"wagate/internal/shared/logger"
)

// onHoldNote is the status note recorded when payment processing parks
// the order.
const onHoldNote = "Awaiting WhatsApp payment"

type ProcessPaymentCommand struct {
	OrderNumber string
	// CartID identifies the customer's cart to clear; empty means the
	// host manages the cart itself.
	CartID string
}

type ProcessPaymentResult struct {
	RedirectURL string
}

// TransactionRunner executes fn atomically; the gorm-backed manager in
// infrastructure/db satisfies it.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProcessPaymentUseCase struct {
	orderRepo    order.Repository
	settingsRepo gateway.SettingsRepository
	formatter    *message.Formatter
	stock        hostservices.StockService
	cart         hostservices.CartService
	tx           TransactionRunner
	notifier     *EmailInstructionsUseCase
	site         hostservices.SiteInfo
	logger       logger.Interface
}

func NewProcessPaymentUseCase(
	orderRepo order.Repository,
	settingsRepo gateway.SettingsRepository,
	formatter *message.Formatter,
	stock hostservices.StockService,
	cart hostservices.CartService,
	tx TransactionRunner,
	notifier *EmailInstructionsUseCase,
	site hostservices.SiteInfo,
	logger logger.Interface,
) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		formatter:    formatter,
		stock:        stock,
		cart:         cart,
		tx:           tx,
		notifier:     notifier,
		site:         site,
		logger:       logger,
	}
}

// Execute parks the order on hold, reduces stock, caches the generated
// message and returns the order-received redirect. Cart clearing and the
// instructions email are best-effort; their failures are logged only.
func (uc *ProcessPaymentUseCase) Execute(ctx context.Context, cmd ProcessPaymentCommand) (*ProcessPaymentResult, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load gateway settings", "error", err)
		return nil, fmt.Errorf("failed to load gateway settings: %w", err)
	}
	if !settings.Enabled() {
		return nil, gateway.ErrGatewayDisabled
	}

	o, err := uc.orderRepo.GetByOrderNumber(ctx, cmd.OrderNumber)
	if err != nil {
		uc.logger.Errorw("failed to load order", "error", err, "order_number", cmd.OrderNumber)
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := o.PlaceOnHold(onHoldNote); err != nil {
			return fmt.Errorf("failed to place order on hold: %w", err)
		}

		if err := uc.stock.ReduceLevels(txCtx, o); err != nil {
			return fmt.Errorf("failed to reduce stock levels: %w", err)
		}

		msg := uc.formatter.Render(o, settings)
		if err := o.SetWhatsAppMessage(msg); err != nil {
			return err
		}

		return uc.orderRepo.Update(txCtx, o)
	})
	if err != nil {
		uc.logger.Errorw("payment processing failed", "error", err, "order_number", cmd.OrderNumber)
		return nil, err
	}

	if cmd.CartID != "" {
		if err := uc.cart.Clear(ctx, cmd.CartID); err != nil {
			uc.logger.Warnw("failed to clear cart", "error", err, "cart_id", cmd.CartID)
		}
	}

	if uc.notifier != nil {
		if err := uc.notifier.Send(ctx, o, settings); err != nil {
			uc.logger.Warnw("failed to send on-hold email", "error", err, "order_number", o.OrderNumber())
		}
	}

	uc.logger.Infow("payment processed",
		"order_number", o.OrderNumber(),
		"status", o.Status().String(),
		"total", o.Total().Amount())

	return &ProcessPaymentResult{
		RedirectURL: fmt.Sprintf("%s/order-received/%s", uc.site.URL, o.OrderNumber()),
	}, nil
}
