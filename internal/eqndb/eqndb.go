// Package eqndb reads the Lean equation database (Eqns*.lean files of
// "equation <n> := <infix equation>" records) and parses the infix ◇
// notation back into term trees.
package eqndb

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/bmatcuk/doublestar/v4"

	"example.com/leangen/internal/term"
)

// exprNode is the participle grammar for one database equation:
// a ◇-chain side, optionally equated to a second one. The chain is
// right-associative, matching how the TPTP generator has always split at
// the first top-level operator.
type exprNode struct {
	LHS *sideNode `parser:"@@"`
	RHS *sideNode `parser:"( '=' @@ )?"`
}

type sideNode struct {
	Atom *atomNode `parser:"@@"`
	Rest *sideNode `parser:"( '◇' @@ )?"`
}

type atomNode struct {
	Var   string    `parser:"  @Ident"`
	Paren *sideNode `parser:"| '(' @@ ')'"`
}

var eqnLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_]\w*`},
	{Name: "Op", Pattern: `◇`},
	{Name: "Punct", Pattern: `[()=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var eqnParser = participle.MustBuild[exprNode](
	participle.Lexer(eqnLexer),
	participle.Elide("Whitespace"),
)

func (s *sideNode) toTerm() *term.Term {
	var atom *term.Term
	if s.Atom.Paren != nil {
		atom = s.Atom.Paren.toTerm()
	} else {
		atom = term.Leaf(s.Atom.Var)
	}
	if s.Rest == nil {
		return atom
	}
	return term.Op(atom, s.Rest.toTerm())
}

// ParseEquation parses the infix text of one database record.
func ParseEquation(text string) (term.Equation, error) {
	node, err := eqnParser.ParseString("", strings.TrimSpace(text))
	if err != nil {
		return term.Equation{}, fmt.Errorf("invalid equation %q: %w", text, err)
	}
	eq := term.Equation{LHS: node.LHS.toTerm()}
	if node.RHS != nil {
		eq.RHS = node.RHS.toTerm()
	}
	return eq, nil
}

var startRe = regexp.MustCompile(`^equation\s+(\d+)\s*:=`)

// Index maps equation numbers to their raw infix text.
type Index map[int]string

// Equation parses the indexed record n.
func (idx Index) Equation(n int) (term.Equation, bool, error) {
	text, ok := idx[n]
	if !ok {
		return term.Equation{}, false, nil
	}
	eq, err := ParseEquation(text)
	return eq, true, err
}

// BuildIndex scans every Eqns*.lean file under dir. Records may span
// lines; a record ends at the next "equation" line.
func BuildIndex(dir string) (Index, error) {
	files, err := doublestar.FilepathGlob(filepath.Join(dir, "Eqns*.lean"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	idx := Index{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		indexFile(idx, strings.Split(string(data), "\n"))
	}
	return idx, nil
}

func indexFile(idx Index, lines []string) {
	current := -1
	var buffer []string
	flush := func() {
		if current >= 0 {
			idx[current] = strings.TrimSpace(strings.Join(buffer, " "))
		}
		current = -1
		buffer = nil
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if m := startRe.FindStringSubmatch(stripped); m != nil {
			flush()
			current, _ = strconv.Atoi(m[1])
			_, after, _ := strings.Cut(stripped, ":=")
			buffer = []string{strings.TrimSpace(after)}
			continue
		}
		if current >= 0 {
			if strings.HasPrefix(stripped, "equation") {
				flush()
				continue
			}
			buffer = append(buffer, stripped)
		}
	}
	flush()
}
