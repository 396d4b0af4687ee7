package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wagate/internal/application/gateway/hostservices"
	"wagate/internal/application/gateway/message"
	"wagate/internal/domain/gateway"
	"wagate/internal/domain/order"
	vo "wagate/internal/domain/order/valueobjects"
	"wagate/internal/shared/logger"
	"wagate/internal/shared/services/markdown"
)

// --- test fixtures ---

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testSite() hostservices.SiteInfo {
	return hostservices.SiteInfo{Name: "Toko Maju", URL: "https://tokomaju.example"}
}

func testSettings(t *testing.T, number string) *gateway.Settings {
	t.Helper()
	s := gateway.DefaultSettings()
	require.NoError(t, s.Update(gateway.UpdateParams{
		Enabled:        true,
		Title:          gateway.DefaultTitle,
		WhatsAppNumber: number,
		Instructions:   "Transfer lalu kirim bukti via WhatsApp.",
	}))
	return s
}

func testUpdateParamsWithInstructions(instructions string) gateway.UpdateParams {
	return gateway.UpdateParams{
		Enabled:        true,
		WhatsAppNumber: "6281234567890",
		Instructions:   instructions,
	}
}

func pendingOrder(orderNumber string) *order.Order {
	return orderWithStatus(orderNumber, vo.StatusPending, nil)
}

func orderWithStatus(orderNumber string, status vo.Status, cachedMsg *string) *order.Order {
	return order.Reconstruct(order.ReconstructParams{
		ID:          1,
		OrderNumber: orderNumber,
		Status:      status,
		Items: []order.Item{
			order.NewItem(10, "Kaos Polos", 2, vo.NewMoney(150000, "IDR")),
		},
		Total: vo.NewMoney(300000, "IDR"),
		Billing: vo.BillingContact{
			FirstName: "Budi",
			LastName:  "Santoso",
			Email:     "budi@example.com",
			Phone:     "628111222333",
			Address:   "Jl. Merdeka 1",
		},
		PaymentMethod:   gateway.GatewayID,
		WhatsAppMessage: cachedMsg,
		Version:         1,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	})
}

// --- mocks ---

type mockOrderRepo struct {
	orders map[string]*order.Order

	getErr             error
	updateErr          error
	updateMsgErr       error
	updateCalls        int
	updateMessageCalls int
}

func newMockOrderRepo(orders ...*order.Order) *mockOrderRepo {
	m := &mockOrderRepo{orders: make(map[string]*order.Order)}
	for _, o := range orders {
		m.orders[o.OrderNumber()] = o
	}
	return m
}

func (m *mockOrderRepo) Create(ctx context.Context, o *order.Order) error {
	m.orders[o.OrderNumber()] = o
	return nil
}

func (m *mockOrderRepo) Update(ctx context.Context, o *order.Order) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.orders[o.OrderNumber()] = o
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range m.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (m *mockOrderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	o, ok := m.orders[orderNumber]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) UpdateWhatsAppMessage(ctx context.Context, o *order.Order) error {
	m.updateMessageCalls++
	if m.updateMsgErr != nil {
		return m.updateMsgErr
	}
	return nil
}

type mockSettingsRepo struct {
	settings *gateway.Settings
	getErr   error
	saved    *gateway.Settings
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*gateway.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.settings, nil
}

func (m *mockSettingsRepo) Save(ctx context.Context, s *gateway.Settings) error {
	m.saved = s
	return nil
}

type mockStockService struct {
	err   error
	calls int
}

func (m *mockStockService) ReduceLevels(ctx context.Context, o *order.Order) error {
	m.calls++
	return m.err
}

type mockCartService struct {
	err     error
	cleared []string
}

func (m *mockCartService) Clear(ctx context.Context, cartID string) error {
	m.cleared = append(m.cleared, cartID)
	return m.err
}

type mockEmailService struct {
	err      error
	to       string
	subject  string
	htmlBody string
	textBody string
	calls    int
}

func (m *mockEmailService) SendOnHoldInstructions(ctx context.Context, to, subject, htmlBody, textBody string) error {
	m.calls++
	m.to = to
	m.subject = subject
	m.htmlBody = htmlBody
	m.textBody = textBody
	return m.err
}

// mockTxRunner runs the function inline, which is all the use cases need.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func testFormatter() *message.Formatter {
	return message.NewFormatter(testSite())
}

func testMarkdown() markdown.MarkdownService {
	return markdown.NewMarkdownService()
}
