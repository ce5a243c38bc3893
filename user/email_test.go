package user

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{name: "simple address", email: "jane.doe@example.com", expected: true},
		{name: "plus tag and subdomain", email: "user+tag@mail.example.co.uk", expected: true},
		{name: "surrounding whitespace", email: "  jane@example.com\n", expected: true},
		{name: "empty", email: "", expected: false},
		{name: "blank", email: "   ", expected: false},
		{name: "no at sign", email: "plainaddress", expected: false},
		{name: "missing domain", email: "jane@", expected: false},
		{name: "missing local part", email: "@example.com", expected: false},
		{name: "dotless domain", email: "jane@localhost", expected: false},
		{name: "domain starting with dot", email: "jane@.example.com", expected: false},
		{name: "domain ending with dot", email: "jane@example.com.", expected: false},
		{name: "empty domain label", email: "jane@example..com", expected: false},
		{name: "double at sign", email: "jane@@example.com", expected: false},
		{name: "display name", email: "Jane <jane@example.com>", expected: false},
		{name: "angle brackets", email: "<jane@example.com>", expected: false},
		{name: "space in local part", email: "jane doe@example.com", expected: false},
		{name: "hyphen inside label", email: "jane@my-example.com", expected: true},
		{name: "digits in labels", email: "jane@123.example.org", expected: true},
		{name: "label starting with hyphen", email: "a@-example.com", expected: false},
		{name: "label ending with hyphen", email: "a@example-.com", expected: false},
		{name: "tld ending with hyphen", email: "a@example.com-", expected: false},
		{name: "non ascii domain", email: "a@exämple.com", expected: false},
		{name: "underscore in domain", email: "a@ex_ample.com", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, IsEmail(tt.email), tt.expected, "email %q", tt.email)
		})
	}
}
