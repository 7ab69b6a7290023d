package template

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/tauri-community/mobinit/pkg/paths"
)

// ErrMissingArray is returned by the array helpers when the parameter is not
// an array of strings.
var ErrMissingArray = errors.New("helper requires an array of strings")

// Funcs builds the helper function map for the rendering engine. All helpers
// are pure; the path helpers read app.root-dir from ctx.
//
// prefixPath and unprefixPath are exact inverses. Don't mix these up or very
// bad things will happen to all of us.
func Funcs(ctx Context) template.FuncMap {
	return template.FuncMap{
		"htmlEscape": html.EscapeString,
		"join": func(v interface{}) (string, error) {
			return joinStrings(v, "join", func(s string) string { return s })
		},
		"quoteAndJoin": func(v interface{}) (string, error) {
			return joinStrings(v, "quoteAndJoin", strconv.Quote)
		},
		"quoteAndJoinColonPrefix": func(v interface{}) (string, error) {
			return joinStrings(v, "quoteAndJoinColonPrefix", func(s string) string {
				return strconv.Quote(":" + s)
			})
		},
		"snakeCase":     SnakeCase,
		"reverseDomain": ReverseDomain,
		"reverseDomainSnakeCase": func(s string) string {
			return SnakeCase(ReverseDomain(s))
		},
		"prefixPath": func(path string) (string, error) {
			root, err := ctx.appRoot()
			if err != nil {
				return "", err
			}
			return paths.Prefix(root, path), nil
		},
		"unprefixPath": func(path string) (string, error) {
			root, err := ctx.appRoot()
			if err != nil {
				return "", err
			}
			return paths.Unprefix(root, path)
		},
	}
}

// joinStrings joins the elements of an array parameter with ", ", formatting
// each element first. Anything that isn't an array of strings fails with
// ErrMissingArray.
func joinStrings(v interface{}, helper string, format func(string) string) (string, error) {
	var elems []string
	switch arr := v.(type) {
	case []string:
		elems = arr
	case []interface{}:
		elems = make([]string, len(arr))
		for i, item := range arr {
			s, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("%w: %s", ErrMissingArray, helper)
			}
			elems[i] = s
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrMissingArray, helper)
	}

	formatted := make([]string, len(elems))
	for i, s := range elems {
		formatted[i] = format(s)
	}
	return strings.Join(formatted, ", "), nil
}

// ReverseDomain reverses a dot-separated domain, so com.example.app becomes
// app.example.com.
func ReverseDomain(domain string) string {
	parts := strings.Split(domain, ".")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// SnakeCase converts a string to snake_case. Word boundaries are camelCase
// transitions and any run of non-alphanumeric characters.
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	prevLowerOrDigit := false
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if prevLowerOrDigit || pendingSep {
				if b.Len() > 0 {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			prevLowerOrDigit = false
			pendingSep = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			prevLowerOrDigit = true
			pendingSep = false
		default:
			pendingSep = true
			prevLowerOrDigit = false
		}
	}
	return b.String()
}
