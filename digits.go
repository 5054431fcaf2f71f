package jalali

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// farsiZero is the Extended Arabic-Indic digit zero.
const farsiZero = 0x06F0

// farsiDigits is stateless and safe for concurrent use.
var farsiDigits = DigitTransformer()

// ToFarsiDigits replaces every ASCII digit in text with its Persian numeral.
// All other bytes, including invalid UTF-8, are returned unchanged.
func ToFarsiDigits(text string) string {
	out, _, err := transform.String(farsiDigits, text)
	if err != nil {
		return text
	}
	return out
}

// DigitTransformer returns a transformer performing the same mapping as
// ToFarsiDigits, for use with transform.NewReader or transform.NewWriter.
func DigitTransformer() transform.Transformer {
	return digitTransformer{}
}

// digitTransformer works on bytes: ASCII digits are single bytes and never
// part of a multi-byte sequence, so everything else is copied verbatim.
type digitTransformer struct {
	transform.NopResetter
}

func (digitTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b >= '0' && b <= '9' {
			if nDst+utf8.RuneLen(farsiZero) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], farsiZero+rune(b-'0'))
		} else {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
		}
		nSrc++
	}
	return nDst, nSrc, nil
}
