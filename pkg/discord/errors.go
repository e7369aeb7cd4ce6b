package discord

import "eduhack/internal/domain"

// DomainErrorMessage resolves err to a user-facing message through the
// error.<code> catalog keys. Errors without a domain code give error.internal.
func DomainErrorMessage(t Text, err error) string {
	if err == nil {
		return ""
	}
	code := domain.Code(err)
	if code == "" {
		code = "internal"
	}
	msg := t.get("error."+code, nil)
	if details := domain.ValidationMessages(err); len(details) > 0 {
		msg += ": " + list(details)
	}
	return msg
}
