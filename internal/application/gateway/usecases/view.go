package usecases

import (
	"fmt"
	"html"
)

// PaymentBlockView is what a display surface renders. When ShowLink is
// false only the instructions (if any) are shown; a missing number or
// message never fails the surrounding page.
type PaymentBlockView struct {
	ShowLink         bool   `json:"show_link"`
	LinkURL          string `json:"link_url,omitempty"`
	LinkHTML         string `json:"link_html,omitempty"`
	InstructionsHTML string `json:"instructions_html,omitempty"`
}

type linkBlockCopy struct {
	heading    string
	body       string
	buttonText string
	footnote   string
}

var thankYouCopy = linkBlockCopy{
	heading:    "Complete Your Payment via WhatsApp",
	body:       "Please click the button below to contact us via WhatsApp and complete your payment:",
	buttonText: "Chat via WhatsApp",
}

var orderDetailsCopy = linkBlockCopy{
	heading:    "Complete Your Payment via WhatsApp",
	body:       "You haven't completed your payment yet. Click the button below to contact us via WhatsApp and complete your payment:",
	buttonText: "\U0001F4AC Chat via WhatsApp to Pay",
	footnote:   "If you already paid via WhatsApp, please wait for confirmation.",
}

const (
	blockStyle  = "background: #f8f8f8; padding: 20px; border-radius: 5px; margin: 20px 0; border-left: 4px solid #25D366;"
	buttonStyle = "background: #25D366; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block; border: none;"
)

// renderLinkBlock builds the call-to-action anchor block. The URL is
// composed of percent-encoded parts only; the copy is escaped here.
func renderLinkBlock(url string, c linkBlockCopy) string {
	var b string
	b += fmt.Sprintf(`<div class="whatsapp-payment-block" style="%s">`, blockStyle)
	b += fmt.Sprintf("<h3>%s</h3>", html.EscapeString(c.heading))
	b += fmt.Sprintf("<p>%s</p>", html.EscapeString(c.body))
	b += fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener" style="%s">%s</a>`,
		url, buttonStyle, html.EscapeString(c.buttonText))
	if c.footnote != "" {
		b += fmt.Sprintf(`<p style="margin-top: 10px; font-size: 0.9em; color: #666;">%s</p>`, html.EscapeString(c.footnote))
	}
	b += "</div>"
	return b
}
