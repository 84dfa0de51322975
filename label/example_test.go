// File: label/example_test.go
package label_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlabel/label"
)

////////////////////////////////////////////////////////////////////////////////
// Example: GenerateLabels
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerateLabels expands the two compound-scheme modes of a shelving
// aisle: the numeric suffix of "A01" advances while its prefix and zero
// padding stay fixed, then the prefix advances while the suffix stays.
func ExampleGenerateLabels() {
	suffix, _ := label.GenerateLabels("A01", "A05", 1, "alphanumeric", false)
	prefix, _ := label.GenerateLabels("A01", "C01", 1, "alphanumeric", true)
	bays, _ := label.GenerateLabels("02AA", "02AE", 2, "numalpha", true)

	fmt.Println(suffix)
	fmt.Println(prefix)
	fmt.Println(bays)

	// Output:
	// [A01 A02 A03 A04 A05]
	// [A01 B01 C01]
	// [02AA 02AC 02AE]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Generate with letter wraparound
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate_letterWrap shows a Letters range crossing ZZZ. Without
// WithLetterWrap the same request fails with ErrStep.
func ExampleGenerate_letterWrap() {
	r := label.Range{Start: "ZZY", End: "B", Step: 1, Scheme: label.Letters}

	_, err := label.Generate(r)
	fmt.Println("strict:", errors.Is(err, label.ErrStep))

	labels, _ := label.Generate(r, label.WithLetterWrap(true))
	fmt.Println("wrap:", labels)

	// Output:
	// strict: true
	// wrap: [ZZY ZZZ A B]
}

////////////////////////////////////////////////////////////////////////////////
// Example: single values
////////////////////////////////////////////////////////////////////////////////

// ExampleOrdinalToLabel renders stored ordinals in several schemes.
func ExampleOrdinalToLabel() {
	for _, s := range label.Schemes() {
		template := ""
		if s == label.Numalpha {
			template = "3AA"
		}
		out, err := label.OrdinalToLabel(14, s, false, template)
		if err != nil {
			fmt.Println(s, "error:", err)
			continue
		}
		fmt.Printf("%-12s %s\n", s, out)
	}

	// Output:
	// numbers      14
	// letters      N
	// roman        XIV
	// greek        ξ
	// binary       0b1110
	// hex          0x000E
	// alphanumeric 14
	// numalpha     3NN
}

// ExampleLabelToOrdinal decodes a label typed by an operator.
func ExampleLabelToOrdinal() {
	n, _ := label.LabelToOrdinal("aab", label.Letters, false)
	fmt.Println(n)

	_, err := label.LabelToOrdinal("IIX", label.Roman, false)
	fmt.Println(err)

	// Output:
	// 704
	// label: invalid format: roman: "IIX" is not a canonical numeral (did you mean "X"?)
}
