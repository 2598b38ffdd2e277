package param

import (
	"io"
	"testing"
)

func BenchmarkDiscreteEncode(b *testing.B) {
	p := Discrete("SOURCE")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Encode(io.Discard)
	}
}

func BenchmarkStringEncode(b *testing.B) {
	p := String(`a reasonably long string with "embedded quotes" in the middle`)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Encode(io.Discard)
	}
}

func BenchmarkFloatEncode(b *testing.B) {
	p := Float64(1.234567e11)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Encode(io.Discard)
	}
}

func BenchmarkListEncode(b *testing.B) {
	p := Quad(D("TRIG"), F8(0.5), I(42), S("ch1"))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Encode(io.Discard)
	}
}
