package calc

import (
	"errors"
	"strings"
	"testing"
)

func TestLexerUnitSuffix(t *testing.T) {
	l := lexer{s: "2.5j 1e+16k 3 in"}
	want := []struct {
		kind tokenKind
		num  float64
		unit byte
	}{
		{tokNumber, 2.5, 'j'},
		{tokNumber, 1e16, 'k'},
		{tokNumber, 3, 0},
		{tokIdent, 0, 0},
		{tokEOF, 0, 0},
	}
	for i, w := range want {
		tok := l.next()
		if tok.kind != w.kind || tok.num != w.num || tok.unit != w.unit {
			t.Fatalf("token %d: got kind=%d num=%v unit=%q, want kind=%d num=%v unit=%q",
				i, tok.kind, tok.num, tok.unit, w.kind, w.num, w.unit)
		}
	}
}

func TestLexerDotVersusNumber(t *testing.T) {
	l := lexer{s: "q.a .5"}
	kinds := []tokenKind{tokIdent, tokDot, tokIdent, tokNumber, tokEOF}
	for i, k := range kinds {
		if tok := l.next(); tok.kind != k {
			t.Fatalf("token %d: got kind %d, want %d", i, tok.kind, k)
		}
	}
}

func TestParseInputStatements(t *testing.T) {
	acts, err := parseInput("q = 1+i; q.a = 2\nq*j; q.b")
	if err != nil {
		t.Fatalf("parseInput: %v", err)
	}
	if len(acts) != 4 {
		t.Fatalf("expected 4 actions, got %d", len(acts))
	}
	if acts[0].kind != actionAssign || acts[0].name != "q" {
		t.Fatalf("action 0: %+v", acts[0])
	}
	if acts[1].kind != actionAssignAttr || acts[1].name != "q" || acts[1].attr != "a" {
		t.Fatalf("action 1: %+v", acts[1])
	}
	if acts[2].kind != actionEval {
		t.Fatalf("action 2: %+v", acts[2])
	}
	if _, ok := acts[3].expr.(nodeAttr); acts[3].kind != actionEval || !ok {
		t.Fatalf("action 3: %+v", acts[3])
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"1 +",
		"(1 + i",
		"quat(1, 2",
		"q.",
		"1 2",
		"2 # 3",
		"*i",
	} {
		if _, err := parseInput(src); !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", src, err)
		}
	}
}

func TestLexerDecodesUTF8(t *testing.T) {
	l := lexer{s: "é ∗ 2iα"}
	want := []struct {
		kind tokenKind
		text string
	}{
		{tokIdent, "é"},
		{tokIllegal, "∗"},
		{tokNumber, "2"},
		{tokIdent, "iα"},
		{tokEOF, ""},
	}
	for i, w := range want {
		tok := l.next()
		if tok.kind != w.kind || tok.text != w.text {
			t.Fatalf("token %d: got kind=%d text=%q, want kind=%d text=%q", i, tok.kind, tok.text, w.kind, w.text)
		}
	}
}

func TestNonASCIIErrorsNameTheCharacter(t *testing.T) {
	if _, err := parseInput("1 ∗ 2"); err == nil || !strings.Contains(err.Error(), `"∗"`) {
		t.Fatalf("expected parse error naming \"∗\", got %v", err)
	}
	if _, err := Eval("é"); !errors.Is(err, ErrUnknownVar) || !strings.Contains(err.Error(), "é") {
		t.Fatalf("expected unknown variable é, got %v", err)
	}
}
