package rtr

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// tokenKind tells the matcher how a piece of the pattern consumes the path.
type tokenKind byte

const (
	tokenStatic   tokenKind = 0
	tokenParam    tokenKind = consts.RuneColon
	tokenWildcard tokenKind = consts.RuneAsterisk
)

type token struct {
	kind tokenKind
	text string // literal text for static tokens, the key for parameters
}

// Pattern is a compiled route pattern.
//
// Syntax:
//   - static text matches itself (case-sensitive)
//   - :name matches one or more characters up to the next "/"
//   - *     matches any run of characters, including "/" and the empty string
//
// A trailing "*" therefore turns a pattern into a prefix match:
// "/home*" matches "/home", "/home/" and "/home/messages".
// Zero value is not usable, obtain patterns through Compile.
type Pattern struct {
	source string
	tokens []token
}

// Compile parses the pattern into a matcher.
func Compile(pattern string) (*Pattern, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Reason: "empty pattern"}
	}

	p := &Pattern{source: pattern}
	rest := pattern

	for rest != "" {
		// Find the next parameter or wildcard marker
		special := strings.IndexAny(rest, ":*")

		// No special markers remaining - the rest is static
		if special == -1 {
			p.addStatic(rest)
			break
		}

		if special > 0 {
			p.addStatic(rest[:special])
			rest = rest[special:]
		}

		switch rest[0] {
		case consts.RuneAsterisk:
			p.tokens = append(p.tokens, token{kind: tokenWildcard, text: consts.WildcardKey})
			rest = rest[1:]

		case consts.RuneColon:
			nameEnd := 1
			for nameEnd < len(rest) && isNameChar(rest[nameEnd]) {
				nameEnd++
			}

			if nameEnd == 1 {
				return nil, &PatternError{Pattern: pattern, Reason: "parameter without a name"}
			}

			// Two adjacent dynamic segments cannot be told apart
			if n := len(p.tokens); n > 0 && p.tokens[n-1].kind != tokenStatic {
				return nil, &PatternError{Pattern: pattern, Reason: "parameter " + rest[:nameEnd] + " directly follows another dynamic segment"}
			}

			p.tokens = append(p.tokens, token{kind: tokenParam, text: rest[1:nameEnd]})
			rest = rest[nameEnd:]
		}
	}

	return p, nil
}

// MustCompile is like Compile but panics on malformed patterns.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// IsStatic reports whether the pattern contains no parameters or wildcards.
func (p *Pattern) IsStatic() bool {
	return len(p.tokens) <= 1 && (len(p.tokens) == 0 || p.tokens[0].kind == tokenStatic)
}

// Match tests the path against the pattern.
// It returns the captured parameters and whether the path matched.
func (p *Pattern) Match(path string) ([]Parameter, bool) {
	if p.IsStatic() {
		return nil, path == p.source
	}
	return p.match(0, path, nil)
}

// match walks the tokens, backtracking over the length consumed by
// parameters and wildcards until the whole path is accounted for.
func (p *Pattern) match(ti int, path string, params []Parameter) ([]Parameter, bool) {
	if ti == len(p.tokens) {
		return params, path == ""
	}

	tok := p.tokens[ti]

	switch tok.kind {
	case tokenStatic:
		if !strings.HasPrefix(path, tok.text) {
			return nil, false
		}
		return p.match(ti+1, path[len(tok.text):], params)

	case tokenParam:
		end := strings.IndexByte(path, consts.RuneFwdSlash)
		if end == -1 {
			end = len(path)
		}

		// Parameters capture at least one character
		for n := end; n >= 1; n-- {
			out, ok := p.match(ti+1, path[n:], append(params, Parameter{Key: tok.text, Value: path[:n]}))
			if ok {
				return out, true
			}
		}

	case tokenWildcard:
		for n := len(path); n >= 0; n-- {
			out, ok := p.match(ti+1, path[n:], append(params, Parameter{Key: tok.text, Value: path[:n]}))
			if ok {
				return out, true
			}
		}
	}

	return nil, false
}

func (p *Pattern) addStatic(text string) {
	// Merge with a preceding static token so matching never splits literals
	if n := len(p.tokens); n > 0 && p.tokens[n-1].kind == tokenStatic {
		p.tokens[n-1].text += text
		return
	}
	p.tokens = append(p.tokens, token{kind: tokenStatic, text: text})
}

func isNameChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// PatternError is returned by Compile for malformed patterns.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return "rtr: malformed pattern " + `"` + e.Pattern + `": ` + e.Reason
}
