// File: parser/parser.go
package parser

import (
	"log/slog"

	"github.com/dangerclosesec/logsim/circuit/model"
	"github.com/dangerclosesec/logsim/circuit/names"
)

// section is a top level block of a definition
type section int

const (
	sectionNone section = iota
	sectionDevices
	sectionConnect
	sectionMonitor
)

// Parser checks a circuit definition and builds it through the device,
// network and monitor collaborators
type Parser struct {
	cur      *cursor
	scanner  *Scanner
	reserved *reserved
	logger   *slog.Logger

	devices  model.DeviceTable
	network  model.NetworkGraph
	monitors model.MonitorSet

	// devices the device table accepted
	declared map[names.ID]bool

	codeBase    int
	last        section
	diagnostics Diagnostics
}

// NewParser creates a new Parser reading tokens from s
func NewParser(s *Scanner, table *names.Table, devices model.DeviceTable, network model.NetworkGraph, monitors model.MonitorSet) *Parser {
	p := &Parser{
		scanner:     s,
		reserved:    s.reserved,
		logger:      slog.Default(),
		devices:     devices,
		network:     network,
		monitors:    monitors,
		declared:    make(map[names.ID]bool),
		codeBase:    table.UniqueErrorCodes(int(numErrorKinds))[0],
		diagnostics: Diagnostics{},
	}

	p.cur = newCursor(s)

	return p
}

// SetLogger sets the logger productions are traced to at debug level
func (p *Parser) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// ErrorCount returns the number of diagnostics recorded so far
func (p *Parser) ErrorCount() int {
	return len(p.diagnostics)
}

// Diagnostics returns the recorded diagnostics in the order they were found
func (p *Parser) Diagnostics() Diagnostics {
	return p.diagnostics
}

// Errors returns the parser errors
func (p *Parser) Errors() []string {
	return p.diagnostics.Strings()
}

// ParseNetwork parses the whole definition. It returns true when no
// diagnostics were recorded. A definition without END yields a *FatalError
// wrapping ErrMissingEnd. Tokens after END are ignored.
func (p *Parser) ParseNetwork() (bool, error) {
	for {
		tok := p.cur.peek()

		switch {
		case tok.Type == TokenEOF:
			d := p.syntaxError(ErrMissingEndKeyword)
			return false, &FatalError{Err: ErrMissingEnd, Diagnostic: d}
		case p.cur.isID(TokenKeyword, p.reserved.end):
			p.cur.advance()
			p.logger.Debug("parsed network", "errors", p.ErrorCount())
			return p.ErrorCount() == 0, nil
		case tok.Type == TokenKeyword:
			p.parseSection()
		default:
			p.syntaxError(ErrUnexpectedSymbol)
		}
	}
}

// parseSection parses the block opened by the current section keyword
func (p *Parser) parseSection() {
	tok := p.cur.peek()

	var s section
	var statement func()
	switch tok.ID {
	case p.reserved.devices:
		s, statement = sectionDevices, p.parseDevice
	case p.reserved.connect:
		s, statement = sectionConnect, p.parseConnection
	default:
		s, statement = sectionMonitor, p.parseMonitor
	}

	if s <= p.last {
		p.syntaxError(ErrSectionOutOfOrder)
	} else {
		p.last = s
	}

	p.logger.Debug("parsing section", "keyword", tok.Literal, "line", tok.Line)
	p.cur.advance()

	if p.cur.isID(TokenCurlyBracket, p.reserved.leftBrace) {
		p.cur.advance()
	} else {
		p.syntaxError(ErrLeftCurlyBraceExpected)
	}

	count := 0
	for !p.blockDone() {
		before := p.cur.consumed
		statement()
		count++
		if p.cur.consumed == before {
			p.cur.advance()
		}
	}

	if count == 0 {
		switch s {
		case sectionDevices:
			p.syntaxError(ErrNoDevices)
		case sectionMonitor:
			p.syntaxError(ErrNoMonitors)
		}
	}

	if p.cur.isID(TokenCurlyBracket, p.reserved.rightBrace) {
		p.cur.advance()
	} else {
		p.syntaxError(ErrRightCurlyBraceExpected)
	}
}

// blockDone reports whether the current token ends a block body
func (p *Parser) blockDone() bool {
	return p.cur.is(TokenEOF) ||
		p.cur.is(TokenKeyword) ||
		p.cur.isID(TokenCurlyBracket, p.reserved.rightBrace)
}

// syntaxError records kind at the current token and skips to its stop set
func (p *Parser) syntaxError(kind ErrorKind) Diagnostic {
	d := p.record(kind, p.cur.peek())
	if _, stop := kind.info(); stop != noResync {
		p.cur.skipTo(stop)
	}
	return d
}

// endStatement skips the rest of a failed statement including its ';'
func (p *Parser) endStatement() {
	p.cur.skipTo(stopStatement)
	if p.cur.is(TokenSemicolon) {
		p.cur.advance()
	}
}

// expectSemicolon consumes the ';' that ends a statement
func (p *Parser) expectSemicolon() {
	if p.cur.is(TokenSemicolon) {
		p.cur.advance()
		return
	}
	p.syntaxError(ErrSemicolonExpected)
	if p.cur.is(TokenSemicolon) {
		p.cur.advance()
	}
}

// record appends a diagnostic anchored at tok
func (p *Parser) record(kind ErrorKind, tok Token) Diagnostic {
	source, caret := p.scanner.excerpt(tok)

	d := Diagnostic{
		Code:       p.codeBase + int(kind),
		Kind:       kind,
		Line:       tok.Line,
		Column:     tok.Column,
		SourceLine: source,
		Caret:      caret,
		Message:    kind.Message(),
	}
	p.diagnostics = append(p.diagnostics, d)

	p.logger.Debug("diagnostic",
		"kind", kind.String(),
		"line", tok.Line,
		"column", tok.Column,
	)

	return d
}
