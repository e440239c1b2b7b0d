package util

import (
	"strings"
)

// SplitEnvStyle splits a comma or colon separated list the way environment
// overrides are encoded, dropping empty tokens and surrounding whitespace.
func SplitEnvStyle(str string) []string {
	var tokens []string
	tokenStart := 0
	for i := 0; i < len(str); i++ {
		ch := str[i]
		if ch == ',' || ch == ':' {
			if token := strings.TrimSpace(str[tokenStart:i]); len(token) > 0 {
				tokens = append(tokens, token)
			}
			tokenStart = i + 1
		}
	}
	if token := strings.TrimSpace(str[tokenStart:]); len(token) > 0 {
		tokens = append(tokens, token)
	}
	return tokens
}
