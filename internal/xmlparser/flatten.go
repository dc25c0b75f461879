// =============================================================================
// XML Table Converter - Row Flattener
// =============================================================================
//
// FlattenItem turns one item (a direct child of the document root) into a
// single Row:
//
//   1. every attribute of the item         -> "@attr"
//   2. every descendant element, in document order:
//        attributes                        -> "<key>.@attr"
//        leaf text (trimmed, non-empty)    -> "<key>"
//      an element with child elements only contributes its children;
//      its own mixed text is dropped
//   3. the item's own direct text          -> "<item local name>"
//
// Repeated keys are merged with " | " in encounter order (see
// table.RowBuilder.Append).
//
// DEPTH:
//   The walk uses an explicit stack instead of recursion, so the depth of
//   the input tree does not grow the goroutine stack.
//
// =============================================================================

package xmlparser

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/ginjaninja78/xmltable/internal/table"
)

// frame is a pending element together with its already computed key.
type frame struct {
	el  *etree.Element
	key string
}

// FlattenItem converts item into a Row.
func FlattenItem(item *etree.Element) table.Row {
	row := table.NewRowBuilder()

	// Step 1: attributes of the item itself.
	for _, attr := range dataAttrs(item) {
		row.Append(AttrKey("", attr.Key), attr.Value)
	}

	// Step 2: descendants, depth-first in document order.
	stack := pushChildren(nil, item, "")
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, attr := range dataAttrs(f.el) {
			row.Append(AttrKey(f.key, attr.Key), attr.Value)
		}

		if len(f.el.ChildElements()) == 0 {
			row.Append(f.key, directText(f.el))
			continue
		}
		stack = pushChildren(stack, f.el, f.key)
	}

	// Step 3: the item's own text.
	row.Append(item.Tag, directText(item))

	return row.Build()
}

// pushChildren pushes the child elements of el onto stack in reverse order,
// so that popping yields them in document order.
func pushChildren(stack []frame, el *etree.Element, prefix string) []frame {
	children := el.ChildElements()
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		stack = append(stack, frame{el: child, key: KeyPath(prefix, child.Tag)})
	}
	return stack
}

// directText concatenates the character data (text and CDATA) directly under
// el and trims the result.
func directText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// dataAttrs returns the attributes of el, leaving out namespace
// declarations (xmlns and xmlns:*).
func dataAttrs(el *etree.Element) []etree.Attr {
	attrs := make([]etree.Attr, 0, len(el.Attr))
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}
