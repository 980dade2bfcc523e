package skip

import (
	"fmt"
	"log"
	"strings"
)

func (l *listImpl[T]) DebugPrint() {
	log.Printf("> skip len=%d count=%d height=%d", l.len, l.count, l.height)
	const pipePart = "|     "
	const blankPart = "      "

	curr := &l.head
	renderHeight := l.height

	for {
		var parts []string

		// add level parts
		for i, lv := range curr.levels {
			key := "+"
			if lv.next == nil {
				key = "*"
				renderHeight = min(i, renderHeight)
			}

			s := fmt.Sprintf("%s%-5d", key, lv.span)
			parts = append(parts, s)
		}

		// add blank/pipe parts
		for j := len(curr.levels); j < l.height; j++ {
			part := pipePart
			if j >= renderHeight {
				part = blankPart
			}
			parts = append(parts, part)
		}

		// add actual data
		parts = append(parts, fmt.Sprintf("len=%-4d", curr.length))
		parts = append(parts, l.toString(curr.item))

		// render
		log.Printf("- %s", strings.Join(parts, ""))

		// move to next
		curr = curr.levels[0].next
		if curr == nil {
			break
		}

		// render lines to break up the entries
		var lineParts []string
		for range renderHeight {
			lineParts = append(lineParts, pipePart)
		}
		log.Printf("  %s", strings.Join(lineParts, ""))
	}
}

// toString is a helper to render items, only for DebugPrint.
func (l *listImpl[T]) toString(item any) string {
	type stringable interface {
		String() string
	}
	if s, ok := item.(stringable); ok {
		return s.String()
	}
	if s, ok := item.(string); ok {
		return s
	}
	if s, ok := item.(int); ok {
		return fmt.Sprintf("%d", s)
	}
	return ""
}
