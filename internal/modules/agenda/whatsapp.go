package agenda

import (
	"net/url"

	"weddingdesk/internal/pkg/phone"
)

const chatLinkBase = "https://wa.me/"

// BuildChatLink produces a WhatsApp pre-filled chat deep link for the given
// phone number. The number is normalized to international dialing form; an
// unusable number yields no link.
func BuildChatLink(rawPhone, text string) (string, bool) {
	intl, ok := phone.Normalize(rawPhone)
	if !ok {
		return "", false
	}
	return chatLinkBase + intl + "?text=" + url.QueryEscape(text), true
}
