// Package xmlfmt validates, pretty-prints and minifies XML documents.
package xmlfmt

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"

	"github.com/mcncl/textconv/internal/errors"
	"github.com/mcncl/textconv/internal/models"
	"github.com/mcncl/textconv/internal/parser"
)

// Line classes used by Format
var (
	selfContainedLine = regexp.MustCompile(`(?s).+</\w[^>]*>$`)
	closingLine       = regexp.MustCompile(`^</\w`)
	openingLine       = regexp.MustCompile(`(?s)^<\w([^>]*[^/])?>.*$`)
	betweenTags       = regexp.MustCompile(`>\s+<`)
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;",
	)
)

// Validate checks that text is well-formed XML with exactly one root
// element. Parser failures keep encoding/xml's message.
func Validate(text string) error {
	_, err := scan(text)
	return err
}

// scan validates text and reports, for every element in document order,
// whether it holds non-whitespace text of its own.
func scan(text string) ([]bool, error) {
	decoder := newDecoder(text)
	var (
		hasText []bool
		open    []int // indexes into hasText of the elements being read
		roots   int
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewSyntaxError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(open) == 0 {
				roots++
				if roots > 1 {
					return nil, errors.NewSyntaxError(errors.ErrMultipleRoots)
				}
			}
			open = append(open, len(hasText))
			hasText = append(hasText, false)
		case xml.EndElement:
			open = open[:len(open)-1]
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			if len(open) == 0 {
				return nil, errors.NewSyntaxError(errors.ErrTextOutsideRoot)
			}
			hasText[open[len(open)-1]] = true
		}
	}
	if roots == 0 {
		return nil, errors.NewSyntaxError(errors.ErrNoRootElement)
	}
	return hasText, nil
}

// newDecoder reads text as already decoded characters. A non UTF-8 encoding
// named in the declaration is accepted and ignored.
func newDecoder(text string) *xml.Decoder {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return decoder
}

// span is a byte range of serialized output that must stay on one line: the
// content of an element holding text.
type span struct {
	start, end int
}

// Serialize validates text and writes the document back out on a single
// line: empty elements are self-closed and namespace prefixes are kept as
// written. Whitespace-only text is dropped unless its parent also holds
// other text.
func Serialize(text string) (string, error) {
	out, _, err := serialize(text)
	return out, err
}

func serialize(text string) (string, []span, error) {
	hasText, err := scan(text)
	if err != nil {
		return "", nil, err
	}

	type frame struct {
		index int
		start int // offset just past the start tag
	}

	decoder := newDecoder(text)
	var (
		sb     strings.Builder
		stack  []frame
		inline []span
		count  int
	)
	open := false // a start tag is written but not yet terminated

	terminate := func() {
		if open {
			sb.WriteByte('>')
			stack[len(stack)-1].start = sb.Len()
			open = false
		}
	}

	for {
		tok, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, errors.NewSyntaxError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			terminate()
			stack = append(stack, frame{index: count})
			count++
			sb.WriteByte('<')
			sb.WriteString(qualifiedName(t.Name))
			for _, attr := range t.Attr {
				sb.WriteByte(' ')
				sb.WriteString(qualifiedName(attr.Name))
				sb.WriteString(`="`)
				sb.WriteString(attrEscaper.Replace(attr.Value))
				sb.WriteByte('"')
			}
			open = true
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open {
				sb.WriteString("/>")
				open = false
				continue
			}
			if hasText[top.index] {
				inline = append(inline, span{start: top.start, end: sb.Len()})
			}
			sb.WriteString("</")
			sb.WriteString(qualifiedName(t.Name))
			sb.WriteByte('>')
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 && (len(stack) == 0 || !hasText[stack[len(stack)-1].index]) {
				continue
			}
			terminate()
			sb.WriteString(textEscaper.Replace(string(t)))
		case xml.Comment:
			terminate()
			sb.WriteString("<!--")
			sb.Write(t)
			sb.WriteString("-->")
		case xml.ProcInst:
			terminate()
			sb.WriteString("<?")
			sb.WriteString(t.Target)
			if len(t.Inst) > 0 {
				sb.WriteByte(' ')
				sb.Write(t.Inst)
			}
			sb.WriteString("?>")
		case xml.Directive:
			terminate()
			sb.WriteString("<!")
			sb.Write(t)
			sb.WriteByte('>')
		}
	}

	return sb.String(), inline, nil
}

// Format pretty-prints XML with indent spaces per level (2 or 4). Each tag
// boundary "><" starts a new line, except inside elements that hold text,
// where a line break would change the content.
func Format(text string, indent int) (string, error) {
	if !models.ValidIndent(indent) {
		return "", errors.NewSemanticError(errors.ErrInvalidIndent)
	}
	if parser.IsBlank(text) {
		return "", nil
	}

	flat, inline, err := serialize(text)
	if err != nil {
		return "", err
	}

	nodes := splitNodes(flat, inline)
	lines := make([]string, 0, len(nodes))
	depth := 0
	for _, node := range nodes {
		switch {
		case selfContainedLine.MatchString(node):
			lines = append(lines, pad(depth, indent)+node)
		case closingLine.MatchString(node):
			depth = max(depth-1, 0)
			lines = append(lines, pad(depth, indent)+node)
		case openingLine.MatchString(node):
			lines = append(lines, pad(depth, indent)+node)
			depth++
		default:
			lines = append(lines, pad(depth, indent)+node)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// Minify writes the document with no whitespace between tags.
func Minify(text string) (string, error) {
	if parser.IsBlank(text) {
		return "", nil
	}

	flat, err := Serialize(text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(betweenTags.ReplaceAllString(flat, "><")), nil
}

// IsValid reports whether text is a well-formed document. Blank text is not
// valid.
func IsValid(text string) bool {
	return !parser.IsBlank(text) && Validate(text) == nil
}

// splitNodes cuts s between every '>' that is immediately followed by '<',
// leaving boundaries that fall within an inline span uncut.
func splitNodes(s string, inline []span) []string {
	var nodes []string
	start := 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '>' && s[i+1] == '<' && !within(inline, i+1) {
			nodes = append(nodes, s[start:i+1])
			start = i + 1
		}
	}
	return append(nodes, s[start:])
}

func within(spans []span, pos int) bool {
	for _, sp := range spans {
		if pos >= sp.start && pos <= sp.end {
			return true
		}
	}
	return false
}

func pad(depth, indent int) string {
	return strings.Repeat(" ", depth*indent)
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
