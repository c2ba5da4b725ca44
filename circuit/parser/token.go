// File: parser/token.go
package parser

import (
	"fmt"

	"github.com/dangerclosesec/logsim/circuit/names"
)

// Token represents a lexical token
type Token struct {
	Type TokenType
	// ID is the interned name of the token text. Numbers and stray
	// characters carry names.None.
	ID names.ID
	// Value holds the literal of a number and the index of a gate pin
	Value   int
	Literal string
	Line    int
	Column  int
	// Offset is the byte offset of the token in the source
	Offset int64
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d, column %d)", t.Type, t.Literal, t.Line, t.Column)
}

// TokenType represents the type of a token
type TokenType int

// Token types
const (
	TokenComma          TokenType = iota // ,
	TokenSemicolon                       // ;
	TokenDot                             // .
	TokenRightArrow                      // =>
	TokenBracket                         // ( )
	TokenCurlyBracket                    // { }
	TokenDTypeOutputPin                  // Q QBAR
	TokenDTypeInputPin                   // DATA CLK SET CLEAR
	TokenGatePin                         // I1 .. I16
	TokenNumber
	TokenKeyword
	TokenGateName
	TokenDeviceName
	TokenError
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenComma:
		return "Comma"
	case TokenSemicolon:
		return "Semicolon"
	case TokenDot:
		return "Dot"
	case TokenRightArrow:
		return "RightArrow"
	case TokenBracket:
		return "Bracket"
	case TokenCurlyBracket:
		return "CurlyBracket"
	case TokenDTypeOutputPin:
		return "DTypeOutputPin"
	case TokenDTypeInputPin:
		return "DTypeInputPin"
	case TokenGatePin:
		return "GatePin"
	case TokenNumber:
		return "Number"
	case TokenKeyword:
		return "Keyword"
	case TokenGateName:
		return "GateName"
	case TokenDeviceName:
		return "DeviceName"
	case TokenError:
		return "Error"
	case TokenEOF:
		return "EOF"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Reserved words, checked in this order for an uppercase word
var (
	Keywords        = []string{"DEVICES", "CONNECT", "MONITOR", "END"}
	GateNames       = []string{"CLOCK", "SWITCH", "AND", "NAND", "OR", "NOR", "DTYPE", "XOR", "NOT"}
	DTypeOutputPins = []string{"Q", "QBAR"}
	DTypeInputPins  = []string{"DATA", "CLK", "SET", "CLEAR"}
)

// MaxGatePins is the highest gate input index, I16
const MaxGatePins = 16

// reserved holds the interned IDs of every reserved literal
type reserved struct {
	comma, semicolon, dot, arrow   names.ID
	leftBracket, rightBracket      names.ID
	leftBrace, rightBrace          names.ID
	devices, connect, monitor, end names.ID
	clock, switchID, and, nand     names.ID
	or, nor, dtype, xor, not       names.ID
	words                          map[string]TokenType
}

func newReserved(table *names.Table) *reserved {
	r := &reserved{words: make(map[string]TokenType)}

	ids := table.Lookup(",", ";", ".", "=>")
	r.comma, r.semicolon, r.dot, r.arrow = ids[0], ids[1], ids[2], ids[3]

	ids = table.Lookup("(", ")", "{", "}")
	r.leftBracket, r.rightBracket, r.leftBrace, r.rightBrace = ids[0], ids[1], ids[2], ids[3]

	ids = table.Lookup(Keywords...)
	r.devices, r.connect, r.monitor, r.end = ids[0], ids[1], ids[2], ids[3]

	table.Lookup(DTypeOutputPins...)
	table.Lookup(DTypeInputPins...)

	ids = table.Lookup(GateNames...)
	r.clock, r.switchID, r.and, r.nand = ids[0], ids[1], ids[2], ids[3]
	r.or, r.nor, r.dtype, r.xor, r.not = ids[4], ids[5], ids[6], ids[7], ids[8]

	for i := 1; i <= MaxGatePins; i++ {
		table.Lookup(fmt.Sprintf("I%d", i))
	}

	// Later lists never override earlier ones
	for _, group := range []struct {
		words []string
		typ   TokenType
	}{
		{Keywords, TokenKeyword},
		{GateNames, TokenGateName},
		{DTypeOutputPins, TokenDTypeOutputPin},
		{DTypeInputPins, TokenDTypeInputPin},
	} {
		for _, w := range group.words {
			if _, ok := r.words[w]; !ok {
				r.words[w] = group.typ
			}
		}
	}

	return r
}

// classify returns the token type of an uppercase word
func (r *reserved) classify(word string) TokenType {
	if typ, ok := r.words[word]; ok {
		return typ
	}
	return TokenError
}
