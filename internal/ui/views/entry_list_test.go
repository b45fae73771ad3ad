package views

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))

	long := "Compra de equipo de cómputo para oficinas centrales"
	cut := truncate(long, 30)
	assert.True(t, utf8.ValidString(cut), "truncation must not split a rune: %q", cut)
	assert.Equal(t, 30, len([]rune(cut)))

	// Cut point lands inside "cómputo"; the accented rune must survive
	// or be dropped whole, never split into bytes.
	accented := "póliza póliza póliza póliza"
	for max := 5; max < len([]rune(accented)); max++ {
		assert.True(t, utf8.ValidString(truncate(accented, max)))
	}
}
