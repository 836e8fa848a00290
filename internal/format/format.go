// Package format renders a catalog as numbered display lines.
package format

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/fatih/color"

	"github.com/eykd/gh-emoji/internal/domain"
)

// Colors are forced on: colored output is usually piped into the selector,
// which is not a terminal.
var (
	indexStyle = forced(color.FgMagenta)
	nameStyle  = forced(color.Faint)
)

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// IndexWidth returns the width the index column is padded to for a catalog
// of n icons: the number of decimal digits in n minus one. This is one short
// of the widest index when n is a power of ten, and zero for n <= 10.
func IndexWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return len(strconv.Itoa(n)) - 1
}

// Line renders the icon at position index, with the index right-justified
// to width.
func Line(index, width int, icon domain.Icon, colored bool) string {
	idx := fmt.Sprintf("%*d", width, index)
	name := ":" + icon.Name + ":"
	if colored {
		idx = indexStyle.Sprint(idx)
		name = nameStyle.Sprint(name)
	}
	return idx + ". " + icon.Emoji + " " + name + "\n"
}

// Lines yields one newline-terminated line per icon, in catalog order.
// Lines are rendered as they are pulled.
func Lines(catalog domain.Catalog, colored bool) iter.Seq[string] {
	width := IndexWidth(len(catalog))
	return func(yield func(string) bool) {
		for i, icon := range catalog {
			if !yield(Line(i, width, icon, colored)) {
				return
			}
		}
	}
}
