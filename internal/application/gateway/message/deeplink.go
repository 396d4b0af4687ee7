package message

import (
	"net/url"
	"strings"
)

// WhatsAppBaseURL is the deep-link host; a GET on
// https://wa.me/<number>?text=<encoded> opens a pre-filled chat.
const WhatsAppBaseURL = "https://wa.me/"

// EncodeText percent-encodes a message for use as the text query value.
// CRLF sequences are collapsed to LF first; WhatsApp renders %0D%0A as a
// double break. Spaces are encoded as %20, not "+", so the link survives
// clients that do not apply form decoding.
func EncodeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// BuildLink assembles the wa.me deep link. A missing number or empty
// message yields no link at all; the caller suppresses the block.
func BuildLink(number, text string) (string, bool) {
	if number == "" || text == "" {
		return "", false
	}
	return WhatsAppBaseURL + number + "?text=" + EncodeText(text), true
}
