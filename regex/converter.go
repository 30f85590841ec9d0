// Package regex converts page markup to Markdown with an ordered chain of
// regular-expression substitutions.
//
// It is not an HTML parser. Nested or malformed markup and multi-line
// elements produce partial or garbled conversions.
package regex

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/rndocs"
)

// Ensure Converter implements rndocs.Converter at compile time.
var _ rndocs.Converter = (*Converter)(nil)

// Rule is a single substitution stage. Stages run in order, each on the
// output of the previous one.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply replaces every match of the rule's pattern in s.
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

func rule(name, pattern, replacement string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// line matches a run of characters on a single line. Unlike ".", it also
// stops at \r and the Unicode line and paragraph separators.
const line = `[^\n\r\x{2028}\x{2029}]*?`

var rules = []Rule{
	rule("script", `(?i)<script[^>]*>[\s\S]*?</script>`, ""),
	rule("style", `(?i)<style[^>]*>[\s\S]*?</style>`, ""),

	rule("h1", `(?i)<h1[^>]*>(`+line+`)</h1>`, "\n# ${1}\n"),
	rule("h2", `(?i)<h2[^>]*>(`+line+`)</h2>`, "\n## ${1}\n"),
	rule("h3", `(?i)<h3[^>]*>(`+line+`)</h3>`, "\n### ${1}\n"),
	rule("h4", `(?i)<h4[^>]*>(`+line+`)</h4>`, "\n#### ${1}\n"),

	rule("pre", `(?i)<pre[^>]*><code[^>]*>([\s\S]*?)</code></pre>`, "\n```\n${1}\n```\n"),
	rule("code", `(?i)<code[^>]*>(`+line+`)</code>`, "`${1}`"),

	// Greedy [^>]* means the last href="..." in the opening tag wins.
	rule("link", `(?i)<a[^>]*href="([^"]*)"[^>]*>(`+line+`)</a>`, "[${2}](${1})"),

	rule("li", `(?i)<li[^>]*>(`+line+`)</li>`, "- ${1}\n"),
	rule("p", `(?i)<p[^>]*>(`+line+`)</p>`, "\n${1}\n"),

	rule("tags", `<[^>]+>`, ""),

	// One pass each, in this order: "&amp;lt;" ends up as "<".
	rule("nbsp", `&nbsp;`, " "),
	rule("amp", `&amp;`, "&"),
	rule("lt", `&lt;`, "<"),
	rule("gt", `&gt;`, ">"),
	rule("quot", `&quot;`, `"`),

	rule("newlines", `\n{3,}`, "\n\n"),
}

// Rules returns the substitution stages in the order Convert applies them.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Convert runs every rule over markup and trims the result.
func Convert(markup string) string {
	s := markup
	for _, r := range rules {
		s = r.Apply(s)
	}
	return strings.TrimFunc(s, isTrimmable)
}

// isTrimmable reports whether r is stripped from the ends of the output:
// Unicode white space and the byte order mark, but not NEL.
func isTrimmable(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Converter implements rndocs.Converter using Convert.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms markup into Markdown.
func (c *Converter) Convert(markup string) string {
	return Convert(markup)
}
