package bitfont

import "strconv"

// BufLen is the size of the glyph buffer filled by Decode. Only the first
// window characters of the printed number are examined; the rest of the
// buffer is space fill.
const BufLen = 15

// window is how many characters of the printed number are examined.
const window = 13

// Status is the decode result code. It is deliberately not an error type:
// decoding always yields a best-effort buffer and the caller decides
// whether a non-zero status means fallback rendering or outright failure.
type Status int

const (
	// StatusOK means every character decoded and the end of the number was
	// seen within the window.
	StatusOK Status = 0
	// StatusBadChar means at least one character outside the recognized
	// set appeared; its glyph slot is left as Space.
	StatusBadChar Status = 1
	// StatusUnterminated means the printed number did not end within the
	// window. It takes precedence over StatusBadChar when both occur.
	StatusUnterminated Status = 2
)

// String returns a short description of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBadChar:
		return "unrecognized character"
	case StatusUnterminated:
		return "unterminated number"
	default:
		return "unknown status " + strconv.Itoa(int(s))
	}
}

// Decode formats v in Go's shortest general form ('g') and maps the result
// to glyph indices. See DecodeString for the buffer layout and status
// protocol.
func Decode(v float64) ([BufLen]Index, Status) {
	return DecodeString(strconv.FormatFloat(v, 'g', -1, 64))
}

// DecodeString maps the first 13 characters of a printed number to glyph
// indices. The returned buffer is pre-filled with Space; recognized
// characters overwrite their slot, the end of the string writes Terminator,
// and everything after the terminator stays Space.
//
// A character outside the recognized set ('0'-'9', '.', 'e', '+', '-', ' ')
// yields StatusBadChar. A string that does not end within the window yields
// StatusUnterminated, which wins over StatusBadChar when both occur.
func DecodeString(s string) ([BufLen]Index, Status) {
	var out [BufLen]Index
	for i := range out {
		out[i] = Space
	}

	status := StatusOK
	for i := 0; i < window && i < len(s); i++ {
		g, ok := IndexOf(s[i])
		if !ok {
			status = StatusBadChar
			continue
		}
		out[i] = g
	}

	if len(s) >= window {
		return out, StatusUnterminated
	}
	out[len(s)] = Terminator
	return out, status
}
