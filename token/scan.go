package token

// float returns the length of an optionally signed decimal literal at
// the start of d: sign, digits, optional fraction, optional exponent.
// Returns 0 when d does not start with such a literal.
func float(d []byte) int {
	i := 0
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0
	}
	i += digits
	i += fract(d[i:])
	i += exp(d[i:])
	return i
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	// . must be followed by 1 or more digits
	if len(d) < 2 || d[0] != '.' || !asciiDigit(d[1]) {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// horizSpace covers space, tab and the \r of CRLF line endings, which
// legacy .scl files carry and the format treats as trimmed whitespace.
func horizSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r':
		return true
	default:
		return false
	}
}

func boundary(c byte) bool {
	return horizSpace(c) || c == '\n'
}
