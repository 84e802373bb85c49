package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dshills/clikit/internal/redact"
)

// Map is an insertion-ordered mapping. Its keys are rendered in the order
// they were set.
type Map = orderedmap.OrderedMap[string, any]

// NewMap returns an empty Map.
func NewMap() *Map {
	return orderedmap.New[string, any]()
}

type entry struct {
	key   string
	value any
}

// Format writes v to w. Strings and other scalars are written on their own
// line. Mappings are written one "key: value" line per entry; a mapping
// value is written as "key:" followed by its entries indented two spaces,
// and a blank line ends the block. nil, including a nil *Map, writes
// nothing.
func Format(w io.Writer, v any) error {
	ew := &errWriter{w: w}

	if v == nil {
		return nil
	}
	if m, ok := v.(*Map); ok && m == nil {
		return nil
	}
	if entries, ok := entriesOf(v); ok {
		writeMapping(ew, entries)
		return ew.err
	}
	switch val := v.(type) {
	case string:
		ew.println(val)
	case fmt.Stringer:
		ew.println(val.String())
	default:
		ew.printf("%v\n", val)
	}
	return ew.err
}

// Heading writes title underlined with '=' to the title's display width.
func Heading(w io.Writer, title string) error {
	ew := &errWriter{w: w}
	ew.println(title)
	ew.println(strings.Repeat("=", runewidth.StringWidth(title)))
	return ew.err
}

func writeMapping(ew *errWriter, entries []entry) {
	for _, e := range entries {
		val := redact.Key(e.key, e.value)
		nested, ok := entriesOf(val)
		if !ok {
			ew.printf("%s: %v\n", e.key, val)
			continue
		}
		ew.printf("%s:\n", e.key)
		for _, n := range nested {
			ew.printf("  %s: %v\n", n.key, redact.Key(n.key, n.value))
		}
	}
	ew.println("")
}

// entriesOf lists the entries of an ordered Map in insertion order, or of a
// string-keyed map in sorted key order. It reports false for anything else.
func entriesOf(v any) ([]entry, bool) {
	if m, ok := v.(*Map); ok {
		if m == nil {
			return nil, false
		}
		entries := make([]entry, 0, m.Len())
		for p := m.Oldest(); p != nil; p = p.Next() {
			entries = append(entries, entry{key: p.Key, value: p.Value})
		}
		return entries, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key().String(), value: iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	return entries, true
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
