package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultGreeting is the fixed message pre-filled when a visitor opens a
// chat with site staff.
const DefaultGreeting = "مرحباً، أريد الاستفسار عن خدماتكم"

var ErrNoNumber = errors.New("no whatsapp number configured")

// Link builds a wa.me deep link for the given phone number with the given
// greeting (DefaultGreeting when empty). The number keeps digits only; a
// leading + is tolerated.
func Link(phone, greeting string) (string, error) {
	number := normalize(phone)
	if number == "" {
		return "", ErrNoNumber
	}
	if greeting == "" {
		greeting = DefaultGreeting
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(greeting)), nil
}

func normalize(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
