package formatter

import (
	"strings"

	"github.com/philipp01105/nlogd/core"
)

// Interpolate replaces {key} tokens in template with the matching vars
// value coerced by core.Stringify. Tokens whose key is missing from vars
// are left verbatim. Substitution is a single pass: replaced text is
// never scanned again.
func Interpolate(template string, vars core.Context) string {
	if len(vars) == 0 || strings.IndexByte(template, '{') < 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(template[i+1:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		key := template[i+1 : i+1+end]
		if v, ok := vars[key]; ok {
			b.WriteString(core.Stringify(v))
			i += end + 2
			continue
		}
		// Not a known token: emit the brace and keep scanning so that
		// "{{a}}" still resolves the inner token.
		b.WriteByte(c)
		i++
	}
	return b.String()
}
