package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	snapshotIDLength = 12
)

// GenerateID gera o identificador de um snapshot de vendas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, snapshotIDLength)
}
