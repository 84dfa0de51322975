// Package lvlabel is a grid-axis label engine: it turns ordinals into the
// labels people write on plans and spreadsheets, and back again.
//
// What is lvlabel?
//
//	A small, deterministic library (plus CLI) that brings together:
//		• Eight labelling schemes: numbers, letters (A..ZZZ), roman (I..MMMCMXCIX),
//		  greek (α..ω), binary (0b…), hex (0x…), alphanumeric (A01) and numalpha (02A)
//		• Range expansion: start..end with signed steps and optional A↔ZZZ wrap
//		• Validation with a typed error taxonomy (format, range, step, static part)
//		• Axes: custom label ranges followed by numeric or letter defaults
//		• Plans: two axes forming a labelled grid with lookup, neighbours and spans
//
// Under the hood, everything is organized under four packages:
//
//	label/  — converters, Generate, Validate, LabelToOrdinal and OrdinalToLabel
//	axis/   — one labelled axis built from label ranges and defaults
//	grid/   — a Plan of two axes: cell addressing, neighbours, blocks
//	config/ — YAML plan files, LVLABEL_ env vars and flags (koanf)
//
// The lvlabel command (cmd/lvlabel) exposes all of it from the shell:
//
//	lvlabel generate I IX --type roman --step 2
//	lvlabel label 14 --type binary
//	lvlabel grid --config plan.yaml
//
// Quick start:
//
//	labels, err := label.GenerateLabels("A01", "E01", 1, "alphanumeric", true)
//	// labels == [A01 B01 C01 D01 E01]
//
// See each package's doc.go for its contract, complexity and error model.
package lvlabel
