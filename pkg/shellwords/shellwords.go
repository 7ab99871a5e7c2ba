// Package shellwords provides utilities for splitting and escaping shell command strings.
//
// The options loader uses it to read list-valued environment variables such as
// a sequence of quoted jq expressions.
package shellwords

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// Split splits a string into an array of tokens in the same way the UNIX Bourne shell does.
// It returns an error if quotes are unmatched.
func Split(input string) ([]string, error) {
	var words []string
	var field strings.Builder
	s := scanner{input: input}

	for {
		s.skipSpaces()
		if s.eof() {
			return words, nil
		}
		r := s.peek()
		switch {
		case r == '\'':
			body, ok := s.until('\'')
			if !ok {
				return nil, fmt.Errorf("unmatched quote: `%s`", input)
			}
			field.WriteString(body)
		case r == '"':
			body, ok := s.doubleQuoted()
			if !ok {
				return nil, fmt.Errorf("unmatched quote: `%s`", input)
			}
			field.WriteString(body)
		case r == '\\':
			s.pos++
			if s.eof() || s.peek() == '\n' {
				field.WriteByte('\\')
				break
			}
			field.WriteRune(s.next())
		default:
			field.WriteString(s.bare())
		}

		// A field ends at whitespace or at the end of input; anything else is concatenated.
		if s.eof() || isSpace(s.peek()) {
			words = append(words, field.String())
			field.Reset()
			if !s.eof() {
				s.pos++
			}
		}
	}
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

func (s *scanner) next() rune {
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	return r
}

func (s *scanner) skipSpaces() {
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
}

// bare consumes characters up to whitespace, a quote or a backslash.
func (s *scanner) bare() string {
	start := s.pos
	for !s.eof() {
		switch r := s.peek(); {
		case isSpace(r), r == '\'', r == '"', r == '\\':
			return s.input[start:s.pos]
		}
		s.next()
	}
	return s.input[start:s.pos]
}

// until consumes an opening quote and returns the raw text up to the matching closing quote.
func (s *scanner) until(quote byte) (string, bool) {
	s.pos++
	end := strings.IndexByte(s.input[s.pos:], quote)
	if end < 0 {
		return "", false
	}
	body := s.input[s.pos : s.pos+end]
	s.pos += end + 1
	return body, true
}

// doubleQuoted consumes a double-quoted string. A backslash only escapes $, `, ", \ and newline.
func (s *scanner) doubleQuoted() (string, bool) {
	var b strings.Builder
	s.pos++
	for !s.eof() {
		r := s.next()
		switch r {
		case '"':
			return b.String(), true
		case '\\':
			if s.eof() {
				return "", false
			}
			switch e := s.next(); e {
			case '$', '`', '"', '\\', '\n':
				b.WriteRune(e)
			default:
				b.WriteByte('\\')
				b.WriteRune(e)
			}
		default:
			b.WriteRune(r)
		}
	}
	return "", false
}

func isSafe(r rune) bool {
	switch {
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		return true
	}
	return strings.ContainsRune("-_.,:+/@", r)
}

// Escape escapes a string so that it can be safely used in a Bourne shell command line.
func Escape(input string) string {
	if input == "" {
		return "''"
	}
	var b strings.Builder
	for _, r := range input {
		switch {
		case r == '\n':
			b.WriteString("'\n'")
		case isSafe(r):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Join builds a command line string from an argument list.
func Join(inputs []string) string {
	escaped := make([]string, len(inputs))
	for i, input := range inputs {
		escaped[i] = Escape(input)
	}
	return strings.Join(escaped, " ")
}
