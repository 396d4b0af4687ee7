package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "wagate/internal/domain/order/valueobjects"
)

func TestRenderThankYou_WithLinkAndInstructions(t *testing.T) {
	cached := "Halo, saya ingin memesan"
	o := orderWithStatus("1001", vo.StatusOnHold, &cached)
	uc := NewRenderThankYouUseCase(
		newMockOrderRepo(o),
		&mockSettingsRepo{settings: testSettings(t, "6281234567890")},
		testMarkdown(),
		testLogger(),
	)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)

	assert.True(t, view.ShowLink)
	assert.Contains(t, view.LinkURL, "https://wa.me/6281234567890?text=")
	assert.Contains(t, view.LinkHTML, view.LinkURL)
	assert.Contains(t, view.LinkHTML, "Chat via WhatsApp")
	assert.Contains(t, view.InstructionsHTML, "Transfer lalu kirim bukti")
}

func TestRenderThankYou_NoNumberSuppressesLink(t *testing.T) {
	cached := "Halo"
	o := orderWithStatus("1001", vo.StatusOnHold, &cached)
	uc := NewRenderThankYouUseCase(
		newMockOrderRepo(o),
		&mockSettingsRepo{settings: testSettings(t, "")},
		testMarkdown(),
		testLogger(),
	)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)

	assert.False(t, view.ShowLink)
	assert.Empty(t, view.LinkURL)
	assert.Empty(t, view.LinkHTML)
	assert.NotEmpty(t, view.InstructionsHTML, "instructions render even without a link")
}

func TestRenderThankYou_NoCachedMessageSuppressesLink(t *testing.T) {
	o := orderWithStatus("1001", vo.StatusOnHold, nil)
	uc := NewRenderThankYouUseCase(
		newMockOrderRepo(o),
		&mockSettingsRepo{settings: testSettings(t, "6281234567890")},
		testMarkdown(),
		testLogger(),
	)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)
	assert.False(t, view.ShowLink)
}

func TestRenderThankYou_SanitizesInstructions(t *testing.T) {
	cached := "Halo"
	o := orderWithStatus("1001", vo.StatusOnHold, &cached)
	settings := testSettings(t, "6281234567890")
	require.NoError(t, settings.Update(testUpdateParamsWithInstructions("**Penting** <script>alert(1)</script>")))

	uc := NewRenderThankYouUseCase(
		newMockOrderRepo(o),
		&mockSettingsRepo{settings: settings},
		testMarkdown(),
		testLogger(),
	)

	view, err := uc.Execute(context.Background(), "1001")
	require.NoError(t, err)

	assert.Contains(t, view.InstructionsHTML, "<strong>Penting</strong>")
	assert.NotContains(t, view.InstructionsHTML, "<script>")
}
