package order

import "strings"

// idAlphabet is every uppercase letter and digit minus the visually
// ambiguous {0, O, 1, I}. 32 characters.
const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Hash is the djb2-style rolling hash the order-ID scheme is built on:
// h starts at 5381 and each character folds in as h*33 + code, truncated to
// a signed 32-bit value; the absolute value is returned. Chosen for speed
// and determinism, not collision resistance.
func Hash(s string) int64 {
	h := int32(5381)
	for _, r := range s {
		h = int32(int64(h<<5) + int64(h) + int64(r))
	}
	if h < 0 {
		return -int64(h)
	}
	return int64(h)
}

// EncodeID renders a hash as a fixed-length code over idAlphabet. Each
// output position mixes the accumulator with i*7919, a fixed prime offset
// that decorrelates adjacent character choices; the accumulator then
// advances by num/len plus a fresh Hash of the partial output. Feeding the
// partial output back in prevents the short repeating cycles a plain modulo
// chain produces.
func EncodeID(hash int64, length int) string {
	var b strings.Builder
	b.Grow(length)

	num := hash
	for i := 0; i < length; i++ {
		mixed := (num + int64(i*7919)) % int64(len(idAlphabet))
		if mixed < 0 {
			mixed = -mixed
		}
		b.WriteByte(idAlphabet[mixed])
		num = num/int64(len(idAlphabet)) + Hash(b.String())
	}
	return b.String()
}
