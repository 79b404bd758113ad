package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// Registry is the part of the lobby store code generation needs
type Registry interface {
	Exists(code string) bool
}

// GenerateCode creates a random lobby code
func GenerateCode() string {
	code := make([]byte, LobbyCodeLength)
	for i := 0; i < LobbyCodeLength; i++ {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(LobbyCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = LobbyCodeChars[rand.Intn(len(LobbyCodeChars))]
			continue
		}
		code[i] = LobbyCodeChars[n.Int64()]
	}
	return string(code)
}

// UniqueCode generates a lobby code not present in the registry
func UniqueCode(reg Registry) string {
	for {
		code := GenerateCode()
		if !reg.Exists(code) {
			return code
		}
	}
}
