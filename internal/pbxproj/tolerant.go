package pbxproj

import (
	"strings"
)

// parseTolerant walks the raw text as a flat token stream, tracking only
// brace nesting and the isa/name fields of the record currently open at each
// level. No cross-reference resolution and no schema: a truncated or
// future-format file still yields every configuration record it managed to
// declare. It fails only when the input contains no typed records at all.
func parseTolerant(data []byte) (*configList, error) {
	s := scanner{input: string(data)}

	type frame struct {
		isa  string
		name string
	}

	var (
		stack   []frame
		names   []string
		sawType bool
		// Pending field assignment at the current level: "isa = X;" and
		// "name = X;" are the only shapes we care about.
		key string
		eq  bool
	)

	commit := func(f frame) {
		if f.isa == buildConfigType && f.name != "" {
			names = append(names, f.name)
		}
	}

	for {
		tok, kind := s.next()
		if kind == tokenEOF {
			break
		}

		switch kind {
		case tokenOpen:
			stack = append(stack, frame{})
			key, eq = "", false
		case tokenClose:
			if n := len(stack); n > 0 {
				commit(stack[n-1])
				stack = stack[:n-1]
			}
			key, eq = "", false
		case tokenEquals:
			eq = key != ""
		case tokenAtom:
			switch {
			case eq && len(stack) > 0:
				top := &stack[len(stack)-1]
				switch key {
				case "isa":
					top.isa = tok
					sawType = true
				case "name":
					top.name = tok
				}
				key, eq = "", false
			default:
				key, eq = tok, false
			}
		default:
			// Separators reset any half-read assignment.
			key, eq = "", false
		}
	}

	// Unterminated records at EOF still count; truncation is the whole point.
	for i := len(stack) - 1; i >= 0; i-- {
		commit(stack[i])
	}

	if !sawType {
		return nil, ErrNotPBXProject
	}
	return &configList{names: dedupe(names)}, nil
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenAtom
	tokenOpen
	tokenClose
	tokenEquals
	tokenSep
)

// scanner produces atoms and structural punctuation from pbxproj text,
// skipping whitespace and both comment styles.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) next() (string, tokenKind) {
	for s.pos < len(s.input) {
		c := s.input[s.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.pos++

		case strings.HasPrefix(s.input[s.pos:], "//"):
			if i := strings.IndexByte(s.input[s.pos:], '\n'); i >= 0 {
				s.pos += i + 1
			} else {
				s.pos = len(s.input)
			}

		case strings.HasPrefix(s.input[s.pos:], "/*"):
			if i := strings.Index(s.input[s.pos+2:], "*/"); i >= 0 {
				s.pos += i + 4
			} else {
				s.pos = len(s.input)
			}

		case c == '{':
			s.pos++
			return "{", tokenOpen
		case c == '}':
			s.pos++
			return "}", tokenClose
		case c == '=':
			s.pos++
			return "=", tokenEquals
		case c == ';' || c == ',' || c == '(' || c == ')':
			s.pos++
			return string(c), tokenSep

		case c == '"':
			return s.quoted(), tokenAtom

		default:
			return s.bare(), tokenAtom
		}
	}
	return "", tokenEOF
}

func (s *scanner) quoted() string {
	var b strings.Builder
	s.pos++ // opening quote
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c == '\\' && s.pos+1 < len(s.input) {
			b.WriteByte(s.input[s.pos+1])
			s.pos += 2
			continue
		}
		if c == '"' {
			s.pos++
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	return b.String()
}

func (s *scanner) bare() string {
	start := s.pos
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\n', '\r', '{', '}', '=', ';', ',', '(', ')', '"':
			return s.input[start:s.pos]
		}
		s.pos++
	}
	return s.input[start:]
}
