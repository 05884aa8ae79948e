package util

import "powersuit-server/internal/rng"

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomCode returns an upper-case alphanumeric code of length n
func RandomCode(g rng.Generator, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[g.Intn(len(codeAlphabet))]
	}

	return string(b)
}
