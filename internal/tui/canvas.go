package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellGrid
	cellDoctor
	cellNurse
	cellFocus
	cellLabel
	cellPopup
)

type cell struct {
	r    rune
	kind cellKind
}

// canvas is a fixed grid of runes that is styled run by run when rendered.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' ', kind: cellEmpty}
			if x%4 == 0 && y%2 == 0 {
				c.cells[y][x] = cell{r: '·', kind: cellGrid}
			}
		}
	}
	return c
}

// project maps a percentage coordinate onto a cell index in [0,n-1].
func project(pct float64, n int) int {
	idx := int(math.Round(pct / 100 * float64(n-1))) //nolint:mnd // percent
	return min(max(idx, 0), n-1)
}

func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, kind: kind}
}

// text writes s from (x, y), clipped at the right edge.
func (c *canvas) text(x, y int, s string, kind cellKind) {
	for _, r := range s {
		c.set(x, y, r, kind)
		x++
	}
}

// box draws a bordered box with lines inside, with its top-left corner at (x, y).
func (c *canvas) box(x, y, width int, lines []string) {
	inner := width - 2 //nolint:mnd // borders
	c.text(x, y, "┌"+strings.Repeat("─", inner)+"┐", cellPopup)
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		pad := strings.Repeat(" ", inner-len(runes))
		c.text(x, y+1+i, "│"+string(runes)+pad+"│", cellPopup)
	}
	c.text(x, y+1+len(lines), "└"+strings.Repeat("─", inner)+"┘", cellPopup)
}

func (c *canvas) render(styles Styles) string {
	styleFor := map[cellKind]lipgloss.Style{
		cellEmpty:  lipgloss.NewStyle(),
		cellGrid:   styles.Grid,
		cellDoctor: styles.Doctor,
		cellNurse:  styles.Nurse,
		cellFocus:  styles.Focus,
		cellLabel:  styles.Label,
		cellPopup:  styles.Popup,
	}

	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}

		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].kind == row[start].kind {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				run = append(run, cl.r)
			}
			sb.WriteString(styleFor[row[start].kind].Render(string(run)))
			start = x
		}
	}
	return sb.String()
}
