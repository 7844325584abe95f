package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		name      string
		remoteURL string
		expected  string
	}{
		{name: "https url", remoteURL: "https://github.com/acme/myapp.git", expected: "myapp"},
		{name: "ssh url", remoteURL: "ssh://git@github.com/acme/myapp.git", expected: "myapp"},
		{name: "scp-like url", remoteURL: "git@github.com:acme/myapp.git", expected: "myapp"},
		{name: "scp-like url without org", remoteURL: "git@github.com:myapp.git", expected: "myapp"},
		{name: "no archive suffix", remoteURL: "https://github.com/acme/myapp", expected: "myapp"},
		{name: "trailing slash", remoteURL: "https://github.com/acme/myapp/", expected: "myapp"},
		{name: "surrounding whitespace", remoteURL: " https://github.com/acme/myapp.git\n", expected: "myapp"},
		{name: "empty url", remoteURL: "", expected: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, BaseName(test.remoteURL))
		})
	}
}
