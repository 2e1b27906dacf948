// Package coder converts short message text between UTF-8 and the
// encodings named by the SMPP data_coding field: the GSM 03.38 default
// alphabet (0), latin1 (3) and UCS2 (8).
package coder

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// utf8GsmChars maps the characters whose GSM 03.38 position differs
	// from ASCII, plus the extension table reached through the 0x1B escape.
	utf8GsmChars = map[rune]string{
		'@': "\x00", '£': "\x01", '$': "\x02", '¥': "\x03",
		'è': "\x04", 'é': "\x05", 'ù': "\x06", 'ì': "\x07",
		'ò': "\x08", 'Ç': "\x09", 'Ø': "\x0b", 'ø': "\x0c",
		'Å': "\x0e", 'å': "\x0f", 'Δ': "\x10", '_': "\x11",
		'Φ': "\x12", 'Γ': "\x13", 'Λ': "\x14", 'Ω': "\x15",
		'Π': "\x16", 'Ψ': "\x17", 'Σ': "\x18", 'Θ': "\x19",
		'Ξ': "\x1a", 'Æ': "\x1c", 'æ': "\x1d", 'ß': "\x1e",
		'É': "\x1f", '¤': "\x24", '¡': "\x40", 'Ä': "\x5b",
		'Ö': "\x5c", 'Ñ': "\x5d", 'Ü': "\x5e", '§': "\x5f",
		'¿': "\x60", 'ä': "\x7b", 'ö': "\x7c", 'ñ': "\x7d",
		'ü': "\x7e", 'à': "\x7f",
		'^': "\x1b\x14", '{': "\x1b\x28", '}': "\x1b\x29",
		'\\': "\x1b\x2f", '[': "\x1b\x3c", '~': "\x1b\x3d",
		']': "\x1b\x3e", '|': "\x1b\x40", '€': "\x1b\x65",
	}

	gsmUtf8Chars = map[rune]string{
		0x00: "@", 0x01: "£", 0x02: "$", 0x03: "¥",
		0x04: "è", 0x05: "é", 0x06: "ù", 0x07: "ì",
		0x08: "ò", 0x09: "Ç", 0x0b: "Ø", 0x0c: "ø",
		0x0e: "Å", 0x0f: "å", 0x10: "Δ", 0x11: "_",
		0x12: "Φ", 0x13: "Γ", 0x14: "Λ", 0x15: "Ω",
		0x16: "Π", 0x17: "Ψ", 0x18: "Σ", 0x19: "Θ",
		0x1a: "Ξ", 0x1c: "Æ", 0x1d: "æ", 0x1e: "ß",
		0x1f: "É", 0x24: "¤", 0x40: "¡", 0x5b: "Ä",
		0x5c: "Ö", 0x5d: "Ñ", 0x5e: "Ü", 0x5f: "§",
		0x60: "¿", 0x7b: "ä", 0x7c: "ö", 0x7d: "ñ",
		0x7e: "ü", 0x7f: "à",
	}

	// gsmExtChars holds the second byte of a 0x1B escape pair.
	gsmExtChars = map[byte]rune{
		0x14: '^', 0x28: '{', 0x29: '}', 0x2f: '\\',
		0x3c: '[', 0x3d: '~', 0x3e: ']', 0x40: '|',
		0x65: '€',
	}
)

func Decode(code uint8, text []byte) string {
	switch code {
	case 8: // UCS2
		es, _, _ := transform.Bytes(
			unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), text)
		return string(es)
	case 3: // latin1 (windows1252)
		es, _, _ := transform.Bytes(charmap.Windows1252.NewDecoder(), text)
		return string(es)
	case 0: // decode from GSM 03.38 format
		var result bytes.Buffer
		for i := 0; i < len(text); i++ {
			b := text[i]
			if b == 0x1b && i+1 < len(text) { // escape to the extension table
				if nr, ok := gsmExtChars[text[i+1]]; ok {
					result.WriteRune(nr)
					i++
					continue
				}
			}
			if nr, ok := gsmUtf8Chars[rune(b)]; ok { // make replacements for known symbols
				result.WriteString(nr)
				continue
			}
			result.WriteByte(b) // add as is
		}
		return result.String()
	default:
		return string(text)
	}
}

func Encode(code uint8, text string) []byte {
	switch code { // depending on the suitable encoding, choose the corresponding encoding method
	case 8: // ucs2
		enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
		es, _, _ := transform.Bytes(enc, []byte(text))
		return es
	case 3: // latin1
		es, _, _ := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(text))
		return es
	case 0: // encode to GSM 03.38
		var result bytes.Buffer
		for _, r := range text {
			if nr, ok := utf8GsmChars[r]; ok { // make replacements for known symbols
				result.WriteString(nr)
				continue
			}
			if r > '\u007F' { // remove everything that doesn't fit the format
				result.WriteRune('?')
				continue
			}
			result.WriteRune(r) // add as is
		}
		return result.Bytes()
	default:
		return []byte(text)
	}
}
