// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetPaper     = 4
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
)

// Pens is the table of colours to be used for text.
var Pens map[string]string

// DimPens is the table of non-bright colours to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles that can be applied to text,
// independently of colour.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

// CursorStore and CursorRestore are the CSI sequences for remembering and
// recalling the cursor position.
const (
	CursorStore   = "\033[s"
	CursorRestore = "\033[u"
	ClearLine     = "\033[2K"
)

// CursorForwardOne and CursorBackwardOne are the CSI sequences to move the
// cursor a single character forward or backward.
const (
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	NormalPen = "\033[0m"

	for name, col := range map[string]int{
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	} {
		Pens[name] = ColorBuild(col, true)
		DimPens[name] = ColorBuild(col, false)
	}

	PenStyles = make(map[string]string)
	PenStyles["bold"] = fmt.Sprintf("\033[%dm", attrBold)
	PenStyles["underline"] = fmt.Sprintf("\033[%dm", attrUnderline)
}

// ColorBuild returns the CSI sequence for the pen colour, optionally in
// the bright variant.
func ColorBuild(col int, bright bool) string {
	s := strings.Builder{}
	s.WriteString("\033[0;")
	if bright {
		s.WriteString(fmt.Sprintf("%d%dm", targetBrightPen, col))
	} else {
		s.WriteString(fmt.Sprintf("%d%dm", targetPen, col))
	}
	return s.String()
}
