package term

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var identRe = regexp.MustCompile(`[A-Za-z]\w*`)

// opKeyword is the operator-application keyword, never a variable.
const opKeyword = "op"

// Variables returns the distinct identifiers occurring in s, sorted, with
// the operator keyword removed. Case is preserved.
func Variables(s string) []string {
	seen := map[string]bool{}
	for _, v := range identRe.FindAllString(s, -1) {
		if v != opKeyword {
			seen[v] = true
		}
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Renaming builds the canonical variable renaming for one expression.
// Identifiers are compared case-insensitively; the distinct lowercase forms
// are sorted and assigned x0, x1, ... in that order. The map is keyed by
// lowercase spelling. Each expression gets its own renaming; maps are never
// shared across lemmas.
func Renaming(expr string) map[string]string {
	seen := map[string]bool{}
	for _, v := range identRe.FindAllString(expr, -1) {
		lower := strings.ToLower(v)
		if lower != opKeyword {
			seen[lower] = true
		}
	}
	canon := make([]string, 0, len(seen))
	for v := range seen {
		canon = append(canon, v)
	}
	sort.Strings(canon)

	renaming := make(map[string]string, len(canon))
	for i, v := range canon {
		renaming[v] = fmt.Sprintf("x%d", i)
	}
	return renaming
}

// ApplyRenaming substitutes every identifier occurrence by its canonical
// name, matching case-insensitively. Identifiers outside the map are left
// untouched.
func ApplyRenaming(expr string, renaming map[string]string) string {
	return identRe.ReplaceAllStringFunc(expr, func(v string) string {
		if canon, ok := renaming[strings.ToLower(v)]; ok {
			return canon
		}
		return v
	})
}

// SortedNames returns the canonical names of a renaming in assignment order.
func SortedNames(renaming map[string]string) []string {
	keys := make([]string, 0, len(renaming))
	for k := range renaming {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = renaming[k]
	}
	return names
}

// NormalizeVariables renames the variables of expr to x0, x1, ... in sorted
// lowercase order and returns the renamed text with the canonical names.
func NormalizeVariables(expr string) (string, []string) {
	renaming := Renaming(expr)
	return ApplyRenaming(expr, renaming), SortedNames(renaming)
}

var forallRe = regexp.MustCompile(`(?s)^!\s*\[.*?\]\s*:\s*(.*)$`)

// StripForall removes a leading TPTP universal quantifier "! [X,Y] :".
func StripForall(expr string) string {
	expr = strings.TrimSpace(expr)
	if m := forallRe.FindStringSubmatch(expr); m != nil {
		return strings.TrimSpace(m[1])
	}
	return expr
}
