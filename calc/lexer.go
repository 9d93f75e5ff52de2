package calc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokSemi
	tokPlus
	tokMinus
	tokStar
	tokLParen
	tokRParen
	tokComma
	tokAssign
	tokDot
	tokIllegal
)

type token struct {
	kind tokenKind
	text string
	num  float64
	unit byte // 0, 'i', 'j' or 'k'
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		r, n := utf8.DecodeRuneInString(l.s[l.i:])
		if r == '\n' || r == ';' {
			l.i++
			return token{kind: tokSemi, text: ";"}
		}
		if !unicode.IsSpace(r) {
			break
		}
		l.i += n
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		l.i++
		return token{kind: tokStar, text: "*"}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")"}
	case ',':
		l.i++
		return token{kind: tokComma, text: ","}
	case '=':
		l.i++
		return token{kind: tokAssign, text: "="}
	case '.':
		if l.i+1 >= len(l.s) || !isDigit(l.s[l.i+1]) {
			l.i++
			return token{kind: tokDot, text: "."}
		}
	}

	ch, size := utf8.DecodeRuneInString(l.s[l.i:])
	if isIdentStart(ch) {
		start := l.i
		l.i += size
		for l.i < len(l.s) {
			r, n := utf8.DecodeRuneInString(l.s[l.i:])
			if !isIdentContinue(r) {
				break
			}
			l.i += n
		}
		return token{kind: tokIdent, text: l.s[start:l.i]}
	}
	if ch == '.' || isDigit(l.s[l.i]) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokIllegal, text: txt}
		}
		tok := token{kind: tokNumber, text: txt, num: f}
		if u, ok := unitAt(l.s, l.i); ok {
			tok.unit = u
			tok.text += string(u)
			l.i++
		}
		return tok
	}

	l.i += size
	return token{kind: tokIllegal, text: l.s[l.i-size : l.i]}
}

// unitAt reports a lone i, j or k at s[i], i.e. one not starting a longer
// identifier.
func unitAt(s string, i int) (byte, bool) {
	if i >= len(s) {
		return 0, false
	}
	switch s[i] {
	case 'i', 'j', 'k':
	default:
		return 0, false
	}
	if r, _ := utf8.DecodeRuneInString(s[i+1:]); isIdentContinue(r) {
		return 0, false
	}
	return s[i], true
}

func scanNumber(s string, i int) int {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i > start && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
