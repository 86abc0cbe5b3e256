package common

// WipeByteArray overwrites b with zeros. Used for passwords read from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerValue formats an Authorization header value for token.
func BearerValue(token string) string {
	return BearerPrefix + token
}
