// SPDX-License-Identifier: MIT

// Package label converts grid axis labels to ordinals and back, and expands
// label ranges into the ordered sequences shown along a floor-plan axis.
//
// What:
//
//   - Eight schemes: Numbers, Letters, Roman, Greek, Binary, Hex,
//     Alphanumeric and Numalpha.
//   - A two-method Converter contract: ToNumeric(label) and FromNumeric(n).
//   - Compound schemes (Alphanumeric, Numalpha) capture a static part from the
//     first label they parse and echo it into every label they format.
//   - Generate expands a Range (start, end, step, scheme, increment mode) into
//     an ordered []string, failing fast on any inconsistency.
//
// Schemes and domains:
//
//	Numbers       signed decimal           "1", "01", "-3"
//	Letters       bijective base-26        A=1 … Z=26, AA=27 … ZZZ=18278
//	Roman         subtractive numerals     I=1 … MMMCMXCIX=3999
//	Greek         lowercase alphabet       α=1 … ω=24
//	Binary        "0b" + min-width digits  0b0001
//	Hex           "0x" + min-width digits  0x000F
//	Alphanumeric  letters + digits         A01, A02 … or A01, B01 …
//	Numalpha      digits + letters         02AA, 02AB … or 02AA, 02BB …
//
// Increment mode:
//
//	Alphanumeric  false: digits vary, letter prefix fixed   (A01, A02, A03)
//	              true:  letter prefix varies, digits fixed (A01, B01, C01)
//	Numalpha      true:  last letter varies                 (02AA, 02AB, 02AC)
//	              false: the whole block repeats one letter (02AA, 02BB, 02CC)
//
// Errors:
//
//   - ErrFormat: the label does not match the scheme's surface syntax.
//   - ErrRange: a valid label or ordinal lies outside the scheme's domain.
//   - ErrStep: zero step, step sign against the start/end order, or a step
//     larger than the distance between start and end.
//   - ErrPrefixMismatch: start and end disagree on a compound static part.
//   - ErrUnknownScheme: the scheme identifier is not one of the eight.
//
// Every error wraps exactly one sentinel; branch with errors.Is.
//
// Concurrency:
//
//	Converters hold per-range state and are not safe for concurrent use.
//	New returns a fresh instance on every call and Generate builds its own,
//	so concurrent callers never share one. The package keeps no mutable
//	globals.
package label
