package generatepngs

import (
	"strings"

	"github.com/pkg/errors"
)

// Template placeholders.
const (
	PlaceholderInputName   = "input_name"
	PlaceholderBorderLabel = "border_label"
	PlaceholderSize        = "size"
)

// ErrMalformedTemplate is returned for output path templates that cannot be resolved.
var ErrMalformedTemplate = errors.New("malformed output path template")

// Template is a parsed output path template. Placeholders are written as "${name}" or "$name", and "$$" is
// a literal dollar sign. The ".png" extension is appended to the resolved path, so the template must not end
// with it.
type Template struct {
	raw      string
	segments []segment
}

// segment is either a literal text or a placeholder name.
type segment struct {
	text        string
	placeholder bool
}

func isPlaceholder(name string) bool {
	switch name {
	case PlaceholderInputName, PlaceholderBorderLabel, PlaceholderSize:
		return true
	}

	return false
}

func isIdentRune(r byte, first bool) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (!first && r >= '0' && r <= '9')
}

// ParseTemplate parses the output path template.
func ParseTemplate(s string) (Template, error) { //nolint:funlen
	if strings.TrimSpace(s) == "" {
		return Template{}, errors.Wrap(ErrMalformedTemplate, "the template is empty")
	}

	if strings.HasSuffix(strings.ToLower(s), ".png") {
		return Template{}, errors.Wrapf(ErrMalformedTemplate, "%q must not include the .png extension", s)
	}

	var (
		t       = Template{raw: s}
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			t.segments = append(t.segments, segment{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			literal.WriteByte(s[i])

			continue
		}

		if i+1 >= len(s) {
			return Template{}, errors.Wrapf(ErrMalformedTemplate, "%q: dangling $ at position %d", s, i)
		}

		var name string

		switch next := s[i+1]; {
		case next == '$':
			literal.WriteByte('$')
			i++

			continue
		case next == '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return Template{}, errors.Wrapf(ErrMalformedTemplate, "%q: unclosed ${ at position %d", s, i)
			}

			name = s[i+2 : i+2+end]
			i += 2 + end
		case isIdentRune(next, true):
			var j = i + 1

			for j < len(s) && isIdentRune(s[j], false) {
				j++
			}

			name = s[i+1 : j]
			i = j - 1
		default:
			return Template{}, errors.Wrapf(ErrMalformedTemplate, "%q: dangling $ at position %d", s, i)
		}

		if !isPlaceholder(name) {
			return Template{}, errors.Wrapf(ErrMalformedTemplate, "%q: unknown placeholder %q (allowed: %s, %s, %s)",
				s, name, PlaceholderInputName, PlaceholderBorderLabel, PlaceholderSize,
			)
		}

		flush()
		t.segments = append(t.segments, segment{text: name, placeholder: true})
	}

	flush()

	return t, nil
}

// MustParseTemplate is like ParseTemplate but panics on error.
func MustParseTemplate(s string) Template {
	t, err := ParseTemplate(s)
	if err != nil {
		panic(err)
	}

	return t
}

// String returns the template as it was written.
func (t Template) String() string { return t.raw }

// IsZero reports whether the template was not parsed.
func (t Template) IsZero() bool { return len(t.segments) == 0 }

// Resolve substitutes the placeholders with the given values.
func (t Template) Resolve(values map[string]string) string {
	var b strings.Builder

	b.Grow(len(t.raw))

	for _, seg := range t.segments {
		if seg.placeholder {
			b.WriteString(values[seg.text])
		} else {
			b.WriteString(seg.text)
		}
	}

	return b.String()
}
