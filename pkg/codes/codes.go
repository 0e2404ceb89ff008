package codes

import (
	"fmt"
	"strings"
)

// Width is the zero-pad width of schedule codes. Codes wider than this are
// rendered whole, never truncated.
const Width = 3

// Placeholder is shown when no next id is available or the batch is empty.
const Placeholder = "---"

// maxShown caps how many codes the summary spells out before collapsing
// the remainder into a (+K) suffix.
const maxShown = 3

// Pad renders id zero-padded to width digits.
func Pad(id, width int) string {
	return fmt.Sprintf("%0*d", width, id)
}

// Preview generates count sequential codes starting at nextID.
// Advisory only: the server assigns the real codes at creation time.
func Preview(nextID, count int) []string {
	if nextID <= 0 || count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = Pad(nextID+i, Width)
	}
	return out
}

// Summarize builds the display form of a preview batch: all codes when the
// batch holds at most three, otherwise the first three plus a (+K) suffix.
func Summarize(nextID, count int) string {
	previews := Preview(nextID, count)
	if len(previews) == 0 {
		return Placeholder
	}
	if len(previews) <= maxShown {
		return strings.Join(previews, ", ")
	}
	return fmt.Sprintf("%s (+%d)", strings.Join(previews[:maxShown], ", "), len(previews)-maxShown)
}
