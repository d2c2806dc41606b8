package rdf

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type ntDecoder struct {
	reader  *bufio.Reader
	format  Format
	opts    Options
	line    int
	emitted int64
	err     error
}

func newNTDecoder(r io.Reader, format Format, opts Options) *ntDecoder {
	return &ntDecoder{reader: bufio.NewReader(r), format: format, opts: opts}
}

func (d *ntDecoder) Next() (Quad, error) {
	if d.err != nil {
		return Quad{}, d.err
	}
	for {
		if err := checkDecodeContext(d.opts.Context); err != nil {
			d.err = err
			return Quad{}, err
		}
		raw, err := readLineWithLimit(d.reader, d.opts.MaxLineBytes)
		if err != nil {
			if err == io.EOF {
				return Quad{}, io.EOF
			}
			d.line++
			d.err = wrapParseError(string(d.format), "", d.line, 0, err)
			return Quad{}, d.err
		}
		d.line++
		line := strings.TrimRight(raw, "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		quad, col, err := parseNTLine(line, d.format, d.opts.StrictIRIValidation)
		if err != nil {
			d.err = wrapParseError(string(d.format), line, d.line, col, err)
			return Quad{}, d.err
		}
		d.emitted++
		if d.opts.MaxTriples > 0 && d.emitted > d.opts.MaxTriples {
			d.err = wrapParseError(string(d.format), "", d.line, 0, ErrTripleLimitExceeded)
			return Quad{}, d.err
		}
		return quad, nil
	}
}

func (d *ntDecoder) Close() error { return nil }

// parseNTLine parses one statement. On failure it also returns the 1-based
// column where parsing stopped.
func parseNTLine(line string, format Format, strictIRI bool) (Quad, int, error) {
	cursor := &ntCursor{input: line, strictIRI: strictIRI}
	quad, err := cursor.parseStatement(format)
	if err != nil {
		return Quad{}, cursor.pos + 1, err
	}
	return quad, 0, nil
}

type ntCursor struct {
	input     string
	pos       int
	strictIRI bool
}

func (c *ntCursor) parseStatement(format Format) (Quad, error) {
	subject, err := c.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}
	var graph Term
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '.' {
		if format != FormatNQuads {
			return Quad{}, c.errorf("graph term not allowed in N-Triples")
		}
		graph, err = c.parseTerm(false)
		if err != nil {
			return Quad{}, err
		}
	}
	if !c.consume('.') {
		return Quad{}, c.errorf("expected '.' at end of statement")
	}
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '#' {
		return Quad{}, c.errorf("unexpected content after '.'")
	}
	return Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return c.parseTripleTerm()
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token %q", c.input[c.pos])
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value, err := UnescapeString(c.input[start:c.pos])
	if err != nil {
		return IRI{}, c.errorf("%v", err)
	}
	if c.strictIRI {
		if err := ValidateIRI(value); err != nil {
			return IRI{}, fmt.Errorf("%w: %v", ErrInvalidIRI, err)
		}
	}
	c.pos++
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A label may contain '.' but never end with one.
	for c.pos < len(c.input) && c.pos > start && c.input[c.pos] == '.' && c.pos+1 < len(c.input) && !isTermDelimiter(c.input[c.pos+1]) {
		c.pos++
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
			c.pos++
		}
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.pos++
	start := c.pos
	closed := false
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '\\' {
			c.pos += 2
			continue
		}
		if ch == '"' {
			closed = true
			break
		}
		c.pos++
	}
	if !closed || c.pos > len(c.input) {
		return Literal{}, c.errorf("unterminated literal")
	}
	lexical, err := UnescapeString(c.input[start:c.pos])
	if err != nil {
		return Literal{}, fmt.Errorf("%w: %v", ErrInvalidLiteral, err)
	}
	c.pos++
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		langStart := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
			c.pos++
		}
		lang := c.input[langStart:c.pos]
		if !isValidLangTag(lang) {
			return Literal{}, c.errorf("invalid language tag %q", lang)
		}
		return Literal{Lexical: lexical, Lang: lang}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func (c *ntCursor) parseTripleTerm() (Term, error) {
	c.pos += 2
	subject, err := c.parseTerm(false)
	if err != nil {
		return nil, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return nil, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], ">>") {
		return nil, c.errorf("expected '>>'")
	}
	c.pos += 2
	return TripleTerm{S: subject, P: predicate, O: object}, nil
}

func (c *ntCursor) errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '.', '<', '"':
		return true
	default:
		return false
	}
}

type ntEncoder struct {
	writer *bufio.Writer
	format Format
	ctx    context.Context
	err    error
}

func newNTEncoder(w io.Writer, format Format, opts Options) *ntEncoder {
	return &ntEncoder{writer: bufio.NewWriter(w), format: format, ctx: opts.Context}
}

func (e *ntEncoder) Write(t Triple) error {
	return e.WriteQuad(Quad{S: t.S, P: t.P, O: t.O})
}

// WriteQuad writes q, including its graph label in N-Quads output.
func (e *ntEncoder) WriteQuad(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if err := checkDecodeContext(e.ctx); err != nil {
		e.err = err
		return err
	}
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return fmt.Errorf("%s: missing statement fields", e.format)
	}
	line := renderTerm(q.S) + " " + renderIRI(q.P) + " " + renderTerm(q.O)
	if e.format == FormatNQuads && q.G != nil {
		line += " " + renderTerm(q.G)
	}
	line += " .\n"
	if _, err := e.writer.WriteString(line); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *ntEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.writer.Flush()
}

func (e *ntEncoder) Close() error {
	return e.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderLiteral(value Literal, datatype func(IRI) string) string {
	quoted := `"` + escapeString(value.Lexical) + `"`
	if value.Lang != "" {
		return quoted + "@" + value.Lang
	}
	if value.Datatype.Value != "" && value.Datatype.Value != xsdString {
		return quoted + "^^" + datatype(value.Datatype)
	}
	return quoted
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		return renderLiteral(value, renderIRI)
	case TripleTerm:
		return "<< " + renderTerm(value.S) + " " + renderIRI(value.P) + " " + renderTerm(value.O) + " >>"
	default:
		return ""
	}
}

const xsdString = "http://www.w3.org/2001/XMLSchema#string"
