// File: parser/scanner.go
package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dangerclosesec/logsim/circuit/names"
)

// eof is the current character once the input is exhausted
const eof rune = -1

// Scanner tokenizes a circuit definition
type Scanner struct {
	names    *names.Table
	reserved *reserved
	logger   *slog.Logger

	src    io.ReaderAt
	size   int64
	closer io.Closer
	reader *bufio.Reader

	ch     rune  // current char under examination
	pos    int64 // byte offset of ch
	next   int64 // byte offset after ch
	line   int
	column int

	// built on the first error line request
	lineStarts []int64
	lines      map[int]string
}

// NewScanner creates a Scanner over an in-memory definition
func NewScanner(input string, table *names.Table) *Scanner {
	return newScanner(strings.NewReader(input), int64(len(input)), nil, table)
}

// OpenScanner creates a Scanner over the definition file at path. The caller
// must Close it.
func OpenScanner(path string, table *names.Table) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening definition file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading definition file: %w", err)
	}

	return newScanner(f, info.Size(), f, table), nil
}

func newScanner(src io.ReaderAt, size int64, closer io.Closer, table *names.Table) *Scanner {
	s := &Scanner{
		names:    table,
		reserved: newReserved(table),
		logger:   slog.Default(),
		src:      src,
		size:     size,
		closer:   closer,
		reader:   bufio.NewReader(io.NewSectionReader(src, 0, size)),
		line:     1,
	}
	s.advance()
	return s
}

// SetLogger sets the logger tokens are traced to at debug level
func (s *Scanner) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Close releases the underlying file, if any
func (s *Scanner) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// advance reads the next character and updates the position
func (s *Scanner) advance() {
	r, size, err := s.reader.ReadRune()
	s.pos = s.next
	s.next += int64(size)
	s.column++
	if err != nil {
		s.ch = eof
		return
	}

	s.ch = r
	if r == '\n' {
		s.line++
		s.column = 0
	}
}

// skipSpaces advances to the next non-whitespace character
func (s *Scanner) skipSpaces() {
	for unicode.IsSpace(s.ch) {
		s.advance()
	}
}

// peekDigit reports whether the character after the current one is a digit
func (s *Scanner) peekDigit() bool {
	b, err := s.reader.Peek(1)
	return err == nil && isDigit(rune(b[0]))
}

// Next returns the next token. Once the input is exhausted every call
// returns an EOF token.
func (s *Scanner) Next() Token {
	s.skipSpaces()

	tok := Token{ID: names.None, Line: s.line, Column: s.column, Offset: s.pos}

	// Order matters: a lowercase start is always a name, and I followed by a
	// digit is a gate pin rather than an uppercase word.
	switch {
	case s.ch == eof:
		tok.Type = TokenEOF
	case unicode.IsLower(s.ch):
		tok.Type = TokenDeviceName
		tok.Literal = s.readName()
		tok.ID = s.intern(tok.Literal)
	case s.ch == 'I' && s.peekDigit():
		s.advance()
		digits := s.readNumber()
		tok.Type = TokenGatePin
		tok.Literal = "I" + digits
		tok.Value = atoi(digits)
		tok.ID = s.intern(gatePinName(tok.Literal, tok.Value))
	case unicode.IsLetter(s.ch):
		tok.Literal = s.readWord()
		tok.Type = s.reserved.classify(tok.Literal)
		tok.ID = s.intern(tok.Literal)
	case isDigit(s.ch):
		tok.Type = TokenNumber
		tok.Literal = s.readNumber()
		tok.Value = atoi(tok.Literal)
	case s.ch == '=':
		s.advance()
		if s.ch == '>' {
			s.advance()
			tok.Type, tok.ID, tok.Literal = TokenRightArrow, s.reserved.arrow, "=>"
		} else {
			tok.Type, tok.Literal = TokenError, "="
		}
	default:
		tok.Literal = string(s.ch)
		tok.Type, tok.ID = s.punctuation(s.ch)
		s.advance()
	}

	s.logger.Debug("scanned token",
		"type", tok.Type.String(),
		"literal", tok.Literal,
		"line", tok.Line,
		"column", tok.Column,
	)

	return tok
}

// punctuation classifies a single-character token
func (s *Scanner) punctuation(ch rune) (TokenType, names.ID) {
	switch ch {
	case ',':
		return TokenComma, s.reserved.comma
	case ';':
		return TokenSemicolon, s.reserved.semicolon
	case '.':
		return TokenDot, s.reserved.dot
	case '(':
		return TokenBracket, s.reserved.leftBracket
	case ')':
		return TokenBracket, s.reserved.rightBracket
	case '{':
		return TokenCurlyBracket, s.reserved.leftBrace
	case '}':
		return TokenCurlyBracket, s.reserved.rightBrace
	default:
		return TokenError, names.None
	}
}

// readName reads a run of letters and digits
func (s *Scanner) readName() string {
	var b strings.Builder
	for unicode.IsLetter(s.ch) || unicode.IsDigit(s.ch) {
		b.WriteRune(s.ch)
		s.advance()
	}
	return b.String()
}

// readWord reads the current letter and the uppercase letters after it
func (s *Scanner) readWord() string {
	var b strings.Builder
	b.WriteRune(s.ch)
	s.advance()
	for unicode.IsUpper(s.ch) {
		b.WriteRune(s.ch)
		s.advance()
	}
	return b.String()
}

// readNumber reads a run of decimal digits
func (s *Scanner) readNumber() string {
	var b strings.Builder
	for isDigit(s.ch) {
		b.WriteRune(s.ch)
		s.advance()
	}
	return b.String()
}

func (s *Scanner) intern(str string) names.ID {
	return s.names.Lookup(str)[0]
}

// maxExcerpt is the most source text a diagnostic keeps from a long line
const maxExcerpt = 120

// ErrorLine returns the text of the 1-indexed line followed by a line with a
// caret under column col. It reads the source independently of the scan
// position.
func (s *Scanner) ErrorLine(line, col int) string {
	if col < 1 {
		col = 1
	}
	return s.lineText(line) + "\n" + strings.Repeat(" ", col-1) + "^"
}

// excerpt returns the source around tok and a caret line pointing at it.
// Lines longer than maxExcerpt are cut to a window around the token.
func (s *Scanner) excerpt(tok Token) (source, caret string) {
	text := s.lineText(tok.Line)

	col := 0
	if tok.Line >= 1 && tok.Line <= len(s.lineStarts) {
		col = int(tok.Offset - s.lineStarts[tok.Line-1])
	}
	col = min(max(col, 0), len(text))

	if len(text) <= maxExcerpt {
		return text, strings.Repeat(" ", utf8.RuneCountInString(text[:col])) + "^"
	}

	start := max(col-maxExcerpt/2, 0)
	end := min(start+maxExcerpt, len(text))
	start = max(end-maxExcerpt, 0)
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	source = text[start:end]
	indent := utf8.RuneCountInString(text[start:col])
	if start > 0 {
		source = "..." + source
		indent += 3
	}
	if end < len(text) {
		source += "..."
	}

	return source, strings.Repeat(" ", indent) + "^"
}

// lineText returns the 1-indexed line without its line break. Each line is
// read from the source at most once.
func (s *Scanner) lineText(line int) string {
	if s.lineStarts == nil {
		s.indexLines()
	}
	if line < 1 || line > len(s.lineStarts) {
		return ""
	}
	if text, ok := s.lines[line]; ok {
		return text
	}

	start, end := s.lineStarts[line-1], s.size
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
	}

	buf := make([]byte, end-start)
	if n, err := s.src.ReadAt(buf, start); n < len(buf) {
		s.logger.Debug("reading source line", "line", line, "error", err)
		return ""
	}

	text := strings.TrimSuffix(string(buf), "\r")
	s.lines[line] = text
	return text
}

// indexLines records the byte offset each line starts at
func (s *Scanner) indexLines() {
	s.lineStarts = []int64{0}
	s.lines = make(map[int]string)

	r := bufio.NewReader(io.NewSectionReader(s.src, 0, s.size))
	var off int64
	for {
		chunk, err := r.ReadSlice('\n')
		off += int64(len(chunk))
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil {
			return
		}
		if off < s.size {
			s.lineStarts = append(s.lineStarts, off)
		}
	}
}

// isDigit returns true if the character is an ASCII digit
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// gatePinName returns the canonical name of a gate pin so that I07 and I7
// intern to the same id
func gatePinName(literal string, index int) string {
	if index == math.MaxInt {
		return literal
	}
	return "I" + strconv.Itoa(index)
}

// atoi converts a digit run, saturating on overflow
func atoi(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}
