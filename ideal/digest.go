package ideal

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Digest returns a 16-byte SHAKE-256 fingerprint of the ideal, hex encoded.
// It hashes the ring's variable list together with the formatted reduced
// Groebner basis, so two ideals collide exactly when they are equal as
// ideals of identically presented rings.
func (I *Ideal) Digest() string {
	var b strings.Builder
	b.WriteString(strings.Join(I.Ring.Vars(), ","))
	b.WriteByte('|')
	b.WriteString(I.Ring.Order().Name())
	b.WriteByte('|')
	b.WriteString(I.FormatGroebner())
	sum := shake16([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func shake16(data []byte) [16]byte {
	var out [16]byte
	h := sha3.NewShake256()
	_, _ = h.Write(data)
	_, _ = h.Read(out[:])
	return out
}
