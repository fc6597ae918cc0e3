package note

import (
	"regexp"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/render"
)

// boxRe matches an existing rendered box: the opening fence token through
// the next closing fence. Non-greedy, so a later unrelated code block in
// the same note is never swallowed.
var boxRe = regexp.MustCompile("(?s)" + regexp.QuoteMeta(render.FenceOpen) + ".*?" + regexp.QuoteMeta(render.FenceClose))

// Merge returns doc with box inserted: an existing fenced box is replaced
// in place, otherwise box is appended verbatim. Merging the same box
// twice yields the same document as merging it once. The caller persists
// the result; Merge itself does no I/O.
func Merge(doc, box string) string {
	if loc := boxRe.FindStringIndex(doc); loc != nil {
		return doc[:loc[0]] + box + doc[loc[1]:]
	}
	return doc + box
}
