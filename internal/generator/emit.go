package main

import (
	"bufio"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/npillmayer/ucdgen/grapheme"
	"github.com/npillmayer/ucdgen/trie"
)

// emit writes the generated C module: a two-line header, the stage arrays,
// the packed join rules and the four accessor routines, bracketed by
// clang-format directives. Emission only happens after the trie has been
// verified; no partial output is ever produced on failure.
func emit(out io.Writer, description string, t *trie.Trie, rules [][]uint32, now time.Time) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "// Generated by ucdgen (github.com/npillmayer/ucdgen)\n")
	fmt.Fprintf(w, "// on %s, from %s, %d bytes\n",
		now.Format(time.RFC3339), description, t.TotalSize+grapheme.RulesSize(rules))
	fmt.Fprintf(w, "// clang-format off\n")

	for i, s := range t.Stages {
		width := 16
		if i != 0 {
			width = s.Mask + 1
		}
		fmt.Fprintf(w, "static constexpr uint%d_t s_stage%d[] = {", s.Bits, i+1)
		for j, v := range s.Values {
			if j%width == 0 {
				fmt.Fprintf(w, "\n   ")
			}
			fmt.Fprintf(w, " 0x%0*x,", s.Bits/4, v)
		}
		fmt.Fprintf(w, "\n};\n")
	}

	fmt.Fprintf(w, "static constexpr uint32_t s_joinRules[%d][%d] = {\n", len(rules), len(rules[0]))
	for _, table := range rules {
		fmt.Fprintf(w, "    {\n")
		for _, word := range table {
			fmt.Fprintf(w, "        0b%032b,\n", word)
		}
		fmt.Fprintf(w, "    },\n")
	}
	fmt.Fprintf(w, "};\n")

	if err := emitRoutines(w, t); err != nil {
		return err
	}
	fmt.Fprintf(w, "// clang-format on\n")
	return w.Flush()
}

// The accessor routines are fixed apart from the stage wiring of the lookup
// and the leaf element width.

var routinesTemplate = template.Must(template.New("routines").Parse(
	`constexpr uint{{.LeafBits}}_t ucdLookup(const char32_t cp) noexcept
{
{{range .Lookups}}    const auto {{.Result}} = {{.Expr}};
{{end}}    return s{{len .Lookups}};
}
constexpr uint8_t ucdGraphemeJoins(const uint8_t state, const uint8_t lead, const uint8_t trail) noexcept
{
    const auto l = lead & 15;
    const auto t = trail & 15;
    return (s_joinRules[state][l] >> (t * 2)) & 3;
}
constexpr bool ucdGraphemeDone(const uint8_t state) noexcept
{
    return state == 3;
}
constexpr int ucdToCharacterWidth(const uint{{.LeafBits}}_t val) noexcept
{
    return val >> 6;
}
`))

type lookupLine struct {
	Result string
	Expr   string
}

func emitRoutines(w io.Writer, t *trie.Trie) error {
	leaf := t.Stages[len(t.Stages)-1]
	data := struct {
		LeafBits int
		Lookups  []lookupLine
	}{LeafBits: leaf.Bits}
	for i, s := range t.Stages {
		var expr string
		if i == 0 {
			// The root stage is indexed by the shifted codepoint alone.
			expr = fmt.Sprintf("s_stage1[cp >> %d]", s.Shift)
		} else {
			expr = fmt.Sprintf("s_stage%d[s%d + ((cp >> %d) & %d)]", i+1, i, s.Shift, s.Mask)
		}
		data.Lookups = append(data.Lookups, lookupLine{
			Result: fmt.Sprintf("s%d", i+1),
			Expr:   expr,
		})
	}
	return routinesTemplate.Execute(w, data)
}
