package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled glob expression
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// CompileGlob translates a glob into an anchored regular expression
func CompileGlob(expr string) (*Pattern, error) {
	source, err := translateGlob(expr)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^" + source + "$")
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompileGlob is CompileGlob for expressions known to be valid
func MustCompileGlob(expr string) *Pattern {
	p, err := CompileGlob(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether path matches the whole expression
func (p *Pattern) Match(path string) bool {
	return p.re.MatchString(path)
}

// Filter returns the paths that match, keeping their order
func (p *Pattern) Filter(paths []string) []string {
	matched := make([]string, 0, len(paths))
	for _, path := range paths {
		if p.Match(path) {
			matched = append(matched, path)
		}
	}
	return matched
}

// String returns the glob expression
func (p *Pattern) String() string {
	return p.expr
}

// EscapeGlob backslash-escapes the glob metacharacters in s so that it
// matches only itself
func EscapeGlob(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(globMeta, s[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

const globMeta = `*?[]{}\`

func translateGlob(glob string) (string, error) {
	var sb strings.Builder

	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch c {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				atSegmentStart := i == 0 || glob[i-1] == '/'
				if atSegmentStart && i+2 < len(glob) && glob[i+2] == '/' {
					// "**/" spans zero or more whole directories
					sb.WriteString("(?:.*/)?")
					i += 2
					continue
				}
				sb.WriteString(".*")
				i++
				continue
			}
			sb.WriteString("[^/]*")

		case '?':
			sb.WriteString("[^/]")

		case '[':
			class, next, ok := translateClass(glob, i)
			if !ok {
				sb.WriteString(`\[`)
				continue
			}
			sb.WriteString(class)
			i = next

		case '{':
			end := matchingBrace(glob, i)
			if end < 0 {
				sb.WriteString(`\{`)
				continue
			}
			alternatives := splitAlternatives(glob[i+1 : end])
			if len(alternatives) < 2 {
				sb.WriteString(regexp.QuoteMeta(glob[i : end+1]))
				i = end
				continue
			}
			parts := make([]string, 0, len(alternatives))
			for _, alt := range alternatives {
				translated, err := translateGlob(alt)
				if err != nil {
					return "", err
				}
				parts = append(parts, translated)
			}
			sb.WriteString("(?:" + strings.Join(parts, "|") + ")")
			i = end

		case '\\':
			if i+1 < len(glob) {
				i++
				sb.WriteString(regexp.QuoteMeta(glob[i : i+1]))
				continue
			}
			sb.WriteString(`\\`)

		default:
			sb.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}

	return sb.String(), nil
}

// translateClass converts the bracket expression starting at glob[start].
// It returns the regexp class, the index of the closing bracket and whether
// a closing bracket was found.
func translateClass(glob string, start int) (string, int, bool) {
	i := start + 1
	negate := false
	if i < len(glob) && (glob[i] == '!' || glob[i] == '^') {
		negate = true
		i++
	}

	var sb strings.Builder
	sb.WriteString("[")
	if negate {
		sb.WriteString("^")
	}

	first := true
	for ; i < len(glob); i++ {
		c := glob[i]
		if c == ']' && !first {
			return sb.String() + "]", i, true
		}
		first = false
		switch c {
		case '\\', '[', ']':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return "", start, false
}

func matchingBrace(glob string, start int) int {
	depth := 0
	for i := start; i < len(glob); i++ {
		switch glob[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitAlternatives(body string) []string {
	var parts []string
	depth, last := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, body[last:])
}
