package nanoid

import "crypto/rand"

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// New genera un identificador corto aleatorio (alfanumérico) de la longitud indicada.
// Se usa para referencias de producto (PRD-xxxxxxxxxx).
func New(size int) string {
	if size <= 0 {
		size = 21
	}
	return fromAlphabet(alphabet, size)
}

// Numeric genera un identificador de solo dígitos. Se usa como número de factura.
func Numeric(size int) string {
	if size <= 0 {
		size = 10
	}
	return fromAlphabet(digits, size)
}

func fromAlphabet(chars string, size int) string {
	// Máscara de bits para muestrear con rechazo: tomar el byte módulo
	// len(chars) sesgaría hacia los primeros caracteres del alfabeto.
	mask := 1
	for mask < len(chars)-1 {
		mask = mask<<1 | 1
	}

	out := make([]byte, 0, size)
	buf := make([]byte, size*2)
	for len(out) < size {
		_, _ = rand.Read(buf)
		for _, b := range buf {
			idx := int(b) & mask
			if idx >= len(chars) {
				continue
			}
			out = append(out, chars[idx])
			if len(out) == size {
				break
			}
		}
	}
	return string(out)
}
