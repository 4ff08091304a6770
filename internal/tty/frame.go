// Package tty draws the session into a character grid and runs it in a terminal.
package tty

import "github.com/gdamore/tcell/v2"

// Cell: символ с оформлением
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame: буфер кадра размером Cols x Rows
type Frame struct {
	Cols, Rows int
	cells      []Cell
}

func NewFrame(cols, rows int) *Frame {
	f := &Frame{}
	f.Resize(cols, rows)
	return f
}

// Resize меняет размер и очищает буфер
func (f *Frame) Resize(cols, rows int) {
	f.Cols, f.Rows = max(cols, 0), max(rows, 0)
	f.cells = make([]Cell, f.Cols*f.Rows)
	f.Clear()
}

func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Set пишет символ; координаты вне кадра игнорируются
func (f *Frame) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.Cols || y >= f.Rows {
		return
	}
	f.cells[y*f.Cols+x] = Cell{Rune: r, Style: style}
}

func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Cols || y >= f.Rows {
		return Cell{}
	}
	return f.cells[y*f.Cols+x]
}

// Text пишет строку начиная с (x, y), обрезая по краю
func (f *Frame) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.Set(x, y, r, style)
		x++
	}
}

// CenterText пишет строку по центру строки y
func (f *Frame) CenterText(y int, s string, style tcell.Style) {
	f.Text((f.Cols-len([]rune(s)))/2, y, s, style)
}

// Row возвращает строку y как текст
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.Rows {
		return ""
	}
	out := make([]rune, f.Cols)
	for x := 0; x < f.Cols; x++ {
		out[x] = f.cells[y*f.Cols+x].Rune
	}
	return string(out)
}

// Flush переносит кадр на экран
func (f *Frame) Flush(screen tcell.Screen) {
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			c := f.cells[y*f.Cols+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
