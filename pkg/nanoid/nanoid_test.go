package nanoid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/facturacion-api/pkg/nanoid"
)

func TestNew_LongitudYAlfabeto(t *testing.T) {
	id := nanoid.New(10)
	assert.Len(t, id, 10)
	for _, ch := range id {
		assert.Contains(t,
			"0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
			string(ch))
	}
}

func TestNumeric_SoloDigitos(t *testing.T) {
	n := nanoid.Numeric(10)
	assert.Len(t, n, 10)
	for _, ch := range n {
		assert.Contains(t, "0123456789", string(ch))
	}
}

func TestNew_SinColisionesTriviales(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := nanoid.New(10)
		assert.False(t, seen[id], "no deben repetirse IDs en 1000 generaciones")
		seen[id] = true
	}
}

// Con byte módulo 62 los primeros 8 caracteres del alfabeto saldrían ~21% más
// seguido que el resto; con muestreo por rechazo la distribución es uniforme.
// La banda del ±15% deja margen de sobra al ruido de muestreo y detecta el sesgo.
func TestNew_DistribucionUniforme(t *testing.T) {
	const (
		alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
		samples  = 2000
		size     = 62
	)

	counts := make(map[rune]int, len(alphabet))
	for i := 0; i < samples; i++ {
		for _, ch := range nanoid.New(size) {
			counts[ch]++
		}
	}

	expected := float64(samples*size) / float64(len(alphabet))
	for _, ch := range alphabet {
		n := float64(counts[ch])
		assert.InDelta(t, expected, n, expected*0.15,
			"frecuencia del carácter %q fuera de la banda uniforme", string(ch))
	}
}
