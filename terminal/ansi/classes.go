package ansi

// Byte classes of the ECMA-48 sequence grammar.

// IsPrintable reports whether c is a printable 7-bit character.
func IsPrintable(c uint8) bool {
	return c >= 0x20 && c <= 0x7E
}

// IsC0 reports whether c is a C0 control, including DEL.
func IsC0(c uint8) bool {
	return c <= 0x1F || c == C0.DEL
}

// IsC1 reports whether c is an 8-bit C1 control.
func IsC1(c uint8) bool {
	return c >= 0x80 && c <= 0x9F
}

// IsParameter reports whether c is a CSI/DCS parameter byte
// (digits, ';', ':', and the private markers '<' '=' '>' '?').
func IsParameter(c uint8) bool {
	return c >= 0x30 && c <= 0x3F
}

// IsIntermediate reports whether c is an intermediate byte.
func IsIntermediate(c uint8) bool {
	return c >= 0x20 && c <= 0x2F
}

// IsFinal reports whether c may terminate a CSI or DCS header.
func IsFinal(c uint8) bool {
	return c >= 0x40 && c <= 0x7E
}
