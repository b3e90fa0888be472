package machine_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/enigma/machine"
)

func benchmarkProcess(b *testing.B, n int, detailed bool) {
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", n/35+1)[:n]
	m, err := machine.New(machine.DefaultConfig())
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if detailed {
			_ = m.ProcessStringDetailed(text)
		} else {
			_ = m.ProcessString(text)
		}
	}
}

// BenchmarkProcessString_1K measures the simple mode on 1 000 letters.
func BenchmarkProcessString_1K(b *testing.B) { benchmarkProcess(b, 1000, false) }

// BenchmarkProcessStringDetailed_1K measures the tracing mode on 1 000 letters.
func BenchmarkProcessStringDetailed_1K(b *testing.B) { benchmarkProcess(b, 1000, true) }
