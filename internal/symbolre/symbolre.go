// Package symbolre matches sequences of symbolic tokens against a
// restricted regular expression language.
//
// Patterns are built from alpha-numeric symbol names, a "." wildcard
// matching any single symbol, a "$" end-of-sequence marker, the postfix
// modifiers "?", "*" and "+", alternation with "|" and grouping with
// parentheses. Whitespace separates concatenated expressions.
//
// A pattern is compiled ahead of time into an explicit non-deterministic
// finite automaton (states and transitions as data) so that the set of
// valid next symbols remains introspectable for diagnostics. The matcher
// is used to check that the data units of a stream arrive in an order
// permitted by the format and by the active conformance level.
package symbolre

import (
	"fmt"
	"sort"
	"strings"
)

// Wildcard matches any single symbol.
const Wildcard = "."

// EndOfSequence marks the point at which a sequence may terminate.
const EndOfSequence = ""

// SyntaxError reports a malformed pattern.
type SyntaxError struct {
	Pattern string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("symbolre: %s in pattern %q", e.Message, e.Pattern)
}

// token types produced by the tokenizer.
type tokenType int

const (
	tokSymbol tokenType = iota
	tokWildcard
	tokEndOfSequence
	tokModifier
	tokBar
	tokOpenParen
	tokCloseParen
)

type token struct {
	typ    tokenType
	value  string
	offset int
}

func isSymbolRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func tokenize(pattern string) ([]token, error) {
	var tokens []token
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i++
		case isSymbolRune(r):
			start := i
			for i < len(runes) && isSymbolRune(runes[i]) {
				i++
			}
			tokens = append(tokens, token{tokSymbol, string(runes[start:i]), start})
		case r == '.':
			tokens = append(tokens, token{tokWildcard, ".", i})
			i++
		case r == '$':
			tokens = append(tokens, token{tokEndOfSequence, "$", i})
			i++
		case r == '?' || r == '*' || r == '+':
			tokens = append(tokens, token{tokModifier, string(r), i})
			i++
		case r == '|':
			tokens = append(tokens, token{tokBar, "|", i})
			i++
		case r == '(':
			tokens = append(tokens, token{tokOpenParen, "(", i})
			i++
		case r == ')':
			tokens = append(tokens, token{tokCloseParen, ")", i})
			i++
		default:
			return nil, &SyntaxError{pattern, fmt.Sprintf("unexpected character %q at position %d", r, i)}
		}
	}
	return tokens, nil
}

// AST node kinds. A nil *ast is the empty expression.
type astKind int

const (
	astSymbol astKind = iota
	astStar
	astConcat
	astUnion
)

type ast struct {
	kind   astKind
	symbol string
	a, b   *ast
}

// parseExpression consumes tokens right to left, stopping at an
// unmatched opening parenthesis. Consuming from the right makes the
// tight binding of postfix modifiers straightforward.
func parseExpression(pattern string, tokens *[]token) (*ast, error) {
	var root *ast
	modifier := ""

	last := func() *token {
		if len(*tokens) == 0 {
			return nil
		}
		return &(*tokens)[len(*tokens)-1]
	}
	pop := func() token {
		t := (*tokens)[len(*tokens)-1]
		*tokens = (*tokens)[:len(*tokens)-1]
		return t
	}

	for len(*tokens) > 0 && last().typ != tokOpenParen {
		if last().typ == tokModifier {
			if modifier != "" {
				return nil, &SyntaxError{pattern, fmt.Sprintf("multiple modifiers at position %d", last().offset)}
			}
			modifier = pop().value
			continue
		}

		if last().typ == tokBar {
			if modifier != "" {
				return nil, &SyntaxError{pattern, fmt.Sprintf("modifier before '|' at position %d", last().offset)}
			}
			pop()
			left, err := parseExpression(pattern, tokens)
			if err != nil {
				return nil, err
			}
			root = &ast{kind: astUnion, a: left, b: root}
			continue
		}

		var next *ast
		switch last().typ {
		case tokCloseParen:
			pop()
			sub, err := parseExpression(pattern, tokens)
			if err != nil {
				return nil, err
			}
			if len(*tokens) == 0 {
				return nil, &SyntaxError{pattern, "unmatched parentheses"}
			}
			pop() // opening parenthesis
			next = sub
		case tokSymbol:
			next = &ast{kind: astSymbol, symbol: pop().value}
		case tokWildcard:
			pop()
			next = &ast{kind: astSymbol, symbol: Wildcard}
		case tokEndOfSequence:
			pop()
			next = &ast{kind: astSymbol, symbol: EndOfSequence}
		}

		switch modifier {
		case "*":
			next = &ast{kind: astStar, a: next}
		case "+":
			next = &ast{kind: astConcat, a: next, b: &ast{kind: astStar, a: next}}
		case "?":
			next = &ast{kind: astUnion, a: next}
		}
		modifier = ""

		if root == nil {
			root = next
		} else {
			root = &ast{kind: astConcat, a: next, b: root}
		}
	}

	if modifier != "" {
		if len(*tokens) > 0 {
			return nil, &SyntaxError{pattern, fmt.Sprintf("modifier before '(' at position %d", last().offset)}
		}
		return nil, &SyntaxError{pattern, "modifier at start of expression"}
	}

	return root, nil
}

func parse(pattern string) (*ast, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	root, err := parseExpression(pattern, &tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) > 0 {
		return nil, &SyntaxError{pattern, "unmatched parentheses"}
	}
	return root, nil
}

// node is a state in the compiled NFA. Empty transitions are
// bidirectional: states joined by them are equivalent for matching
// purposes.
type node struct {
	transitions map[string][]*node
	empty       []*node
}

func newNode() *node {
	return &node{transitions: make(map[string][]*node)}
}

func (n *node) addTransition(dest *node, symbol string) {
	n.transitions[symbol] = append(n.transitions[symbol], dest)
}

func (n *node) addEmpty(dest *node) {
	n.empty = append(n.empty, dest)
	dest.empty = append(dest.empty, n)
}

// equivalentNodes returns the set of nodes connected to n by empty
// transitions only (including n itself).
func (n *node) equivalentNodes() []*node {
	visited := map[*node]bool{n: true}
	stack := []*node{n}
	var out []*node
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for _, other := range cur.empty {
			if !visited[other] {
				visited[other] = true
				stack = append(stack, other)
			}
		}
	}
	return out
}

// follow returns the nodes reachable from n by the given symbol.
func (n *node) follow(symbol string) []*node {
	visited := make(map[*node]bool)
	var out []*node
	for _, eq := range n.equivalentNodes() {
		for _, dest := range eq.transitions[symbol] {
			if !visited[dest] {
				visited[dest] = true
				out = append(out, dest)
			}
		}
	}
	return out
}

// nfa is a compiled automaton with labelled start and final states.
type nfa struct {
	start *node
	final *node
}

// compileAST applies Thompson's constructions.
func compileAST(root *ast) *nfa {
	if root == nil {
		n := newNode()
		return &nfa{n, n}
	}
	switch root.kind {
	case astSymbol:
		a := &nfa{newNode(), newNode()}
		a.start.addTransition(a.final, root.symbol)
		return a
	case astConcat:
		a := compileAST(root.a)
		b := compileAST(root.b)
		a.final.addEmpty(b.start)
		return &nfa{a.start, b.final}
	case astUnion:
		out := &nfa{newNode(), newNode()}
		a := compileAST(root.a)
		b := compileAST(root.b)
		out.start.addEmpty(a.start)
		out.start.addEmpty(b.start)
		a.final.addEmpty(out.final)
		b.final.addEmpty(out.final)
		return out
	case astStar:
		out := &nfa{newNode(), newNode()}
		sub := compileAST(root.a)
		out.start.addEmpty(out.final)
		out.start.addEmpty(sub.start)
		sub.final.addEmpty(sub.start)
		sub.final.addEmpty(out.final)
		return out
	}
	return nil
}

// Matcher tests whether a sequence of symbols conforms to a compiled
// pattern. MatchSymbol is called once per symbol; IsComplete reports
// whether the sequence may terminate at the current state.
type Matcher struct {
	nfa       *nfa
	curStates []*node
}

// Compile builds a Matcher for the given pattern.
func Compile(pattern string) (*Matcher, error) {
	root, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	a := compileAST(root)
	return &Matcher{nfa: a, curStates: []*node{a.start}}, nil
}

// MustCompile is like Compile but panics on a malformed pattern. It is
// intended for patterns fixed at compile time.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// MatchSymbol attempts to match the next symbol in the sequence. It
// returns true if the symbol matched; on failure the matcher state is
// left unchanged.
func (m *Matcher) MatchSymbol(symbol string) bool {
	var newStates []*node
	seen := make(map[*node]bool)
	for _, cur := range m.curStates {
		for _, dest := range cur.follow(symbol) {
			if !seen[dest] {
				seen[dest] = true
				newStates = append(newStates, dest)
			}
		}
		for _, dest := range cur.follow(Wildcard) {
			if !seen[dest] {
				seen[dest] = true
				newStates = append(newStates, dest)
			}
		}
	}
	if len(newStates) == 0 {
		return false
	}
	m.curStates = newStates
	return true
}

// IsComplete reports whether it is valid for the sequence to terminate
// at this point.
func (m *Matcher) IsComplete() bool {
	for _, cur := range m.curStates {
		for _, eq := range cur.equivalentNodes() {
			if eq == m.nfa.final {
				return true
			}
		}
		if len(cur.follow(EndOfSequence)) > 0 {
			return true
		}
	}
	return false
}

// ValidNextSymbols returns the sorted set of symbols which would be
// accepted next. Wildcard is included when any symbol would be accepted;
// EndOfSequence is included when the sequence may terminate here.
func (m *Matcher) ValidNextSymbols() []string {
	seen := make(map[string]bool)
	for _, cur := range m.curStates {
		for _, eq := range cur.equivalentNodes() {
			for symbol := range eq.transitions {
				seen[symbol] = true
			}
		}
	}
	delete(seen, EndOfSequence)
	if m.IsComplete() {
		seen[EndOfSequence] = true
	}
	symbols := make([]string, 0, len(seen))
	for symbol := range seen {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// String renders the valid next symbols for error messages.
func (m *Matcher) String() string {
	return strings.Join(m.ValidNextSymbols(), " ")
}
