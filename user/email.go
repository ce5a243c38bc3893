package user

import (
	"net/mail"
	"strings"
)

// IsEmail reports whether email is a plain address such as
// "jane.doe@example.com".
//
// The address must be accepted by net/mail and must not carry a display name
// or angle brackets. Its domain must contain at least one dot, and every label
// must be a non-empty ASCII hostname label: letters, digits and hyphens, not
// starting or ending with a hyphen.
func IsEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || strings.Contains(domain, "@") {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}

	for label := range strings.SplitSeq(domain, ".") {
		if !isHostnameLabel(label) {
			return false
		}
	}

	return true
}

func isHostnameLabel(label string) bool {
	if label == "" || label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}

	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-':
		default:
			return false
		}
	}

	return true
}
