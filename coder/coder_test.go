package coder

import (
	"bytes"
	"testing"
)

func TestGsm(t *testing.T) {
	tests := []struct {
		text string
		wire []byte
	}{
		{"hello", []byte("hello")},
		{"@$_", []byte{0x00, 0x02, 0x11}},
		{"10€", []byte{'1', '0', 0x1b, 0x65}},
		{"[ok]", []byte{0x1b, 0x3c, 'o', 'k', 0x1b, 0x3e}},
		{"über", []byte{0x7e, 'b', 'e', 'r'}},
	}
	for _, tt := range tests {
		if got := Encode(0, tt.text); !bytes.Equal(got, tt.wire) {
			t.Errorf("Encode(0, %q) = % x, want % x", tt.text, got, tt.wire)
		}
		if got := Decode(0, tt.wire); got != tt.text {
			t.Errorf("Decode(0, % x) = %q, want %q", tt.wire, got, tt.text)
		}
	}
	// characters with no GSM position degrade to a question mark
	if got := Encode(0, "∞"); !bytes.Equal(got, []byte{'?'}) {
		t.Errorf("Encode(0, ∞) = % x, want ?", got)
	}
}

func TestUcs2(t *testing.T) {
	text := "Тестовое сообщение"
	wire := Encode(8, text)
	if len(wire) == 0 || len(wire)%2 != 0 {
		t.Fatalf("Encode(8, %q): odd length %d", text, len(wire))
	}
	if got := Decode(8, wire); got != text {
		t.Errorf("Decode(Encode(%q)) = %q", text, got)
	}
}

func TestLatin1(t *testing.T) {
	if got := Decode(3, []byte{0xe9, 't', 0xe9}); got != "été" {
		t.Errorf("Decode(3) = %q, want %q", got, "été")
	}
	if got := Encode(3, "été"); !bytes.Equal(got, []byte{0xe9, 't', 0xe9}) {
		t.Errorf("Encode(3) = % x", got)
	}
}

// unknown data_coding values pass through untouched
func TestUnknownCoding(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	if got := Decode(4, raw); got != string(raw) {
		t.Errorf("Decode(4) = %q", got)
	}
}
