package label_test

import (
	"testing"

	"github.com/katalvlaran/lvlabel/label"
)

// BenchmarkGenerate_Letters expands the full A..ZZZ domain.
// Complexity: O(k) for k = 18278 labels.
func BenchmarkGenerate_Letters(b *testing.B) {
	r := label.Range{Start: "A", End: "ZZZ", Step: 1, Scheme: label.Letters}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := label.Generate(r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_Roman expands I..MMMCMXCIX.
func BenchmarkGenerate_Roman(b *testing.B) {
	r := label.Range{Start: "I", End: "MMMCMXCIX", Step: 1, Scheme: label.Roman}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := label.Generate(r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLabelToOrdinal_Alphanumeric measures one validated parse,
// including converter construction.
func BenchmarkLabelToOrdinal_Alphanumeric(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := label.LabelToOrdinal("ZZ0042", label.Alphanumeric, true); err != nil {
			b.Fatal(err)
		}
	}
}
