package tables

import "github.com/unitext/nls-engine/internal/binary"

func wordsToBytes(words []uint16) []byte {
	return binary.Bytes(words)
}
