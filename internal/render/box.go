// Package render turns a day's summary into the fixed-width wakatime box.
// Rendering is pure: no I/O, no mutation, deterministic for a given input.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/wakatime"
)

// Fence tokens delimiting a rendered box inside a note. Consumers of the
// note rely on these to locate the block, so they are part of the wire
// format and must not change.
const (
	FenceOpen  = "```wakatime"
	FenceClose = "```"
)

const (
	// DefaultMaxRows is the row-selection bound passed by the pipeline.
	DefaultMaxRows = 6
	// BarWidth is the bar chart width in cells used by the box.
	BarWidth = 20
)

// columnGap separates the name, duration, percent, and bar columns.
const columnGap = "     "

// gradient maps eighths-of-a-cell to a rune, index 0 empty through 8 full.
var gradient = []rune("░▏▎▍▌▋▊▉█")

// Bar renders percent (0-100) as a width-cell bar with 8 sub-cell
// resolution. Inputs above 100 saturate to a full bar.
func Bar(percent float64, width int) string {
	eighths := int(float64(width*8) * percent / 100)
	full := eighths / 8

	if full >= width {
		return strings.Repeat(string(gradient[8]), width)
	}

	var b strings.Builder
	for i := 0; i < full; i++ {
		b.WriteRune(gradient[8])
	}
	b.WriteRune(gradient[eighths%8])
	for i := full + 1; i < width; i++ {
		b.WriteRune(gradient[0])
	}
	return b.String()
}

// Render produces the fenced box for the summary's first day. Languages
// are taken in source order; the source already sorts them descending by
// percent and they are not re-sorted here.
//
// Row admission keeps indices 0..maxRows inclusive, i.e. maxRows+1 rows.
// That bound is inherited behavior that downstream notes depend on; see
// the regression test before changing it.
func Render(s *wakatime.Summary, maxRows int) string {
	var langs []wakatime.Language
	if len(s.Data) > 0 {
		langs = s.Data[0].Languages
	}

	var rows []wakatime.Language
	for i, lang := range langs {
		if i > maxRows {
			break
		}
		rows = append(rows, lang)
	}

	// First pass: column widths over the selected rows.
	var nameW, textW, pctW int
	for _, r := range rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
		if len(r.Text) > textW {
			textW = len(r.Text)
		}
		if p := len(formatPercent(r.Percent)); p > pctW {
			pctW = p
		}
	}

	// Second pass: emit aligned rows.
	var b strings.Builder
	b.WriteString(FenceOpen)
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-*s%s%-*s%s%*s%s%s\n",
			nameW, r.Name,
			columnGap,
			textW, r.Text,
			columnGap,
			pctW, formatPercent(r.Percent),
			columnGap,
			Bar(r.Percent, BarWidth)))
	}
	b.WriteString(FenceClose)
	return b.String()
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
