// File: parser/cursor.go
package parser

import "github.com/dangerclosesec/logsim/circuit/names"

// cursor holds the single lookahead token over a Scanner
type cursor struct {
	scanner  *Scanner
	tok      Token
	consumed int
}

func newCursor(s *Scanner) *cursor {
	return &cursor{scanner: s, tok: s.Next()}
}

// peek returns the current token without consuming it
func (c *cursor) peek() Token {
	return c.tok
}

// advance consumes the current token and returns it. EOF is never consumed.
func (c *cursor) advance() Token {
	prev := c.tok
	if prev.Type != TokenEOF {
		c.tok = c.scanner.Next()
		c.consumed++
	}
	return prev
}

// is reports whether the current token has type t
func (c *cursor) is(t TokenType) bool {
	return c.tok.Type == t
}

// isID reports whether the current token has type t and the interned id
func (c *cursor) isID(t TokenType, id names.ID) bool {
	return c.tok.Type == t && c.tok.ID == id
}

// skipTo advances until the current token is in stop. EOF always stops.
func (c *cursor) skipTo(stop stopSet) {
	for !stop.has(c.tok.Type) && c.tok.Type != TokenEOF {
		c.advance()
	}
}
