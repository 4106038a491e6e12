package ansi

// we ignore SOH/STX: https://github.com/microsoft/terminal/issues/10786
// and XTERM control sequences don't support them either:
// https://www.x.org/docs/xterm/ctlseqs.pdf
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ENQ uint8 // ENQ is the enquiry character (Caret: ^E).
	EOT uint8 // EOT is the end of transmission character (Caret: ^D).
	ESC uint8 // ESC is the escape character (Caret: ^[).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	SI  uint8 // SI is the shift in character (Caret: ^O).
	SO  uint8 // SO is the shift out character (Caret: ^N).
	VT  uint8 // VT is the vertical tab character (Caret: ^K, Char: \v).
	CAN uint8 // CAN cancels an escape sequence in flight (Caret: ^X).
	SUB uint8 // SUB cancels like CAN (Caret: ^Z).
	DEL uint8 // DEL is the delete character (Caret: ^?).
}

// C0 (7-bit) control characters from ANSI.
//
// see chapter 3 for detailed information about control characters,
// based on VT100, which is compatible with the ANSI standard:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	EOT: 0x04,
	ENQ: 0x05,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	SO:  0x0E,
	SI:  0x0F,
	CAN: 0x18,
	SUB: 0x1A,
	ESC: 0x1b,
	DEL: 0x7F,
}

type c1 struct {
	SS2 uint8 // SS2 is single shift two.
	SS3 uint8 // SS3 is single shift three.
	DCS uint8 // DCS introduces a device control string.
	SOS uint8 // SOS introduces a start-of-string sequence.
	CSI uint8 // CSI introduces a control sequence.
	ST  uint8 // ST terminates OSC/DCS/SOS/PM/APC strings.
	OSC uint8 // OSC introduces an operating system command.
	PM  uint8 // PM introduces a privacy message.
	APC uint8 // APC introduces an application program command.
}

// C1 (8-bit) control characters. Each is also reachable in its 7-bit form
// as ESC followed by the byte minus 0x40.
var C1 = c1{
	SS2: 0x8E,
	SS3: 0x8F,
	DCS: 0x90,
	SOS: 0x98,
	CSI: 0x9B,
	ST:  0x9C,
	OSC: 0x9D,
	PM:  0x9E,
	APC: 0x9F,
}
