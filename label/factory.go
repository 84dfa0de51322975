// SPDX-License-Identifier: MIT

package label

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// New returns a fresh Converter for scheme configured by opts.
// Each call allocates a new instance; converters are never cached.
// Returns ErrUnknownScheme for an invalid scheme.
func New(scheme Scheme, opts ...Option) (Converter, error) {
	return newConverter(scheme, newConfig(opts...))
}

func newConverter(scheme Scheme, cfg config) (Converter, error) {
	switch scheme {
	case Numbers:
		return &numbersConverter{}, nil
	case Letters:
		return lettersConverter{}, nil
	case Roman:
		return romanConverter{}, nil
	case Greek:
		return &greekConverter{lower: newGreekCaser()}, nil
	case Binary:
		return &radixConverter{scheme: Binary, base: 2, prefix: "0b", minDigits: cfg.minDigits}, nil
	case Hex:
		return &radixConverter{scheme: Hex, base: 16, prefix: "0x", minDigits: cfg.minDigits}, nil
	case Alphanumeric:
		return &alphanumericConverter{}, nil
	case Numalpha:
		return &numalphaConverter{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
}

// newGreekCaser returns a Greek-aware lower caser. cases.Caser is stateful,
// so every converter gets its own.
func newGreekCaser() cases.Caser {
	return cases.Lower(language.Greek)
}
