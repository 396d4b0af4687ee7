package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wagate/internal/domain/order"
	vo "wagate/internal/domain/order/valueobjects"
)

func newOrderDetailsFixture(repo *mockOrderRepo, settingsRepo *mockSettingsRepo, regenerateOnView bool) *RenderOrderDetailsUseCase {
	return NewRenderOrderDetailsUseCase(repo, settingsRepo, testFormatter(), regenerateOnView, testLogger())
}

func TestRenderOrderDetails_CachedMessage(t *testing.T) {
	cached := "Halo, pesanan 1001"
	o := orderWithStatus("1001", vo.StatusOnHold, &cached)
	repo := newMockOrderRepo(o)
	uc := newOrderDetailsFixture(repo, &mockSettingsRepo{settings: testSettings(t, "6281234567890")}, false)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)

	assert.True(t, view.ShowLink)
	assert.Contains(t, view.LinkURL, "https://wa.me/6281234567890?text=")
	assert.Contains(t, view.LinkURL, "Halo%2C%20pesanan%201001")
	assert.Contains(t, view.LinkHTML, "Chat via WhatsApp to Pay")
	assert.Contains(t, view.LinkHTML, "If you already paid via WhatsApp")
	assert.Zero(t, repo.updateMessageCalls, "cached message must not be regenerated")
}

func TestRenderOrderDetails_RegeneratesWhenAbsent(t *testing.T) {
	o := orderWithStatus("1001", vo.StatusOnHold, nil)
	repo := newMockOrderRepo(o)
	uc := newOrderDetailsFixture(repo, &mockSettingsRepo{settings: testSettings(t, "6281234567890")}, false)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)

	assert.True(t, view.ShowLink)
	assert.Equal(t, 1, repo.updateMessageCalls)

	msg, present := o.WhatsAppMessage()
	assert.True(t, present)
	assert.NotEmpty(t, msg)
}

func TestRenderOrderDetails_RegenerateOnView(t *testing.T) {
	cached := "stale message"
	o := orderWithStatus("1001", vo.StatusOnHold, &cached)
	repo := newMockOrderRepo(o)
	uc := newOrderDetailsFixture(repo, &mockSettingsRepo{settings: testSettings(t, "6281234567890")}, true)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)

	assert.True(t, view.ShowLink)
	assert.Equal(t, 1, repo.updateMessageCalls)

	msg, _ := o.WhatsAppMessage()
	assert.NotEqual(t, "stale message", msg)
}

func TestRenderOrderDetails_PersistFailureStillRenders(t *testing.T) {
	o := orderWithStatus("1001", vo.StatusOnHold, nil)
	repo := newMockOrderRepo(o)
	repo.updateMsgErr = errors.New("db gone")
	uc := newOrderDetailsFixture(repo, &mockSettingsRepo{settings: testSettings(t, "6281234567890")}, false)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)
	assert.True(t, view.ShowLink)
}

func TestRenderOrderDetails_OtherPaymentMethod(t *testing.T) {
	o := order.Reconstruct(order.ReconstructParams{
		ID:            3,
		OrderNumber:   "1003",
		Status:        vo.StatusOnHold,
		Total:         vo.NewMoney(100000, "IDR"),
		PaymentMethod: "bank_transfer",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	})
	settingsRepo := &mockSettingsRepo{settings: testSettings(t, "6281234567890")}
	uc := newOrderDetailsFixture(newMockOrderRepo(o), settingsRepo, false)

	view, err := uc.Execute(context.Background(), "1003")
	require.NoError(t, err)
	assert.False(t, view.ShowLink)
	assert.Empty(t, view.LinkHTML)
}

func TestRenderOrderDetails_SettledStatuses(t *testing.T) {
	for _, status := range []vo.Status{vo.StatusProcessing, vo.StatusCompleted, vo.StatusCancelled, vo.StatusRefunded} {
		t.Run(status.String(), func(t *testing.T) {
			cached := "Halo"
			o := orderWithStatus("1001", status, &cached)
			uc := newOrderDetailsFixture(newMockOrderRepo(o), &mockSettingsRepo{settings: testSettings(t, "6281234567890")}, false)

			view, err := uc.Execute(context.Background(), "1001")
			require.NoError(t, err)
			assert.False(t, view.ShowLink)
		})
	}
}

func TestRenderOrderDetails_NoNumberStillRegenerates(t *testing.T) {
	o := orderWithStatus("1001", vo.StatusOnHold, nil)
	repo := newMockOrderRepo(o)
	uc := newOrderDetailsFixture(repo, &mockSettingsRepo{settings: testSettings(t, "")}, false)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)

	assert.False(t, view.ShowLink)
	assert.Equal(t, 1, repo.updateMessageCalls, "message is cached even when the link is suppressed")
}
