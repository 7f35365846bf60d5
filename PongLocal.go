package main

import (
	"Pongo/core"
	"math"

	"github.com/gdamore/tcell"
)

const SeparatorSymbol = 0x2590 // 中線符號
const LetterSymbol = 0x2588    // 分數字型符號

const glyphWidth = 3

// 3x5 block digits, one string per row.
var digitGlyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
}

// GetCellsFromChar returns the (col,row) offsets lit for a digit.
func GetCellsFromChar(ch rune) [][2]int {
	glyph, ok := digitGlyphs[ch]
	if !ok {
		return nil
	}
	var cells [][2]int
	for row, line := range glyph {
		for col, c := range line {
			if c == '#' {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}

// Renderer draws a play state onto a terminal, scaling world units to cells.
type Renderer struct {
	screen tcell.Screen
	world  core.World
	style  tcell.Style
}

func NewRenderer(screen tcell.Screen, world core.World) *Renderer {
	return &Renderer{
		screen: screen,
		world:  world,
		style: tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(tcell.ColorWhite),
	}
}

func (r *Renderer) toCell(p core.Vector) (int, int) {
	width, height := r.screen.Size()
	return r.scale(p.X, r.world.Width, width), r.scale(p.Y, r.world.Height, height)
}

func (r *Renderer) scale(v, worldSize float64, cells int) int {
	c := int(math.Floor(v / worldSize * float64(cells)))
	if c < 0 {
		return 0
	}
	if c > cells-1 {
		return cells - 1
	}
	return c
}

func (r *Renderer) drawView(state *core.PlayState) {
	r.screen.Clear()

	//中線
	for _, seg := range state.Separator() {
		col, top := r.toCell(core.Vector{X: seg.X, Y: seg.Y0})
		_, bottom := r.toCell(core.Vector{X: seg.X, Y: seg.Y1})
		r.Print(top, col, 1, maxInt(1, bottom-top), SeparatorSymbol)
	}

	//兩個球拍
	for _, p := range state.Paddles {
		r.drawObject(&p.GameObject)
	}

	//球
	r.drawObject(&state.Ball.GameObject)

	//分數與說明文字
	for _, label := range state.Labels {
		r.drawLabel(label)
	}
	for _, label := range state.InfoText {
		r.drawLabel(label)
	}

	r.screen.Show()
}

func (r *Renderer) drawObject(obj *core.GameObject) {
	if !obj.Visible {
		return
	}
	left, top := r.toCell(core.Vector{X: obj.Left(), Y: obj.Top()})
	right, bottom := r.toCell(core.Vector{X: obj.Right(), Y: obj.Bottom()})
	r.Print(top, left, maxInt(1, right-left), maxInt(1, bottom-top), obj.Symbol)
}

func (r *Renderer) drawLabel(label *core.Label) {
	col, row := r.toCell(label.Position)
	if label.Size == core.LabelLarge {
		r.drawLetters(col, row, label.Text)
		return
	}
	for i, ch := range label.Text {
		r.screen.SetContent(col+i, row, ch, nil, r.style)
	}
}

func (r *Renderer) Print(row, col, width, height int, ch rune) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(col+x, row+y, ch, nil, r.style)
		}
	}
}

// drawLetters centres the block digits of word on column x.
func (r *Renderer) drawLetters(x int, y int, word string) {
	letters := []rune(word)
	totalLen := len(letters)*(glyphWidth+1) - 1
	startX := x - totalLen/2

	for i, letter := range letters {
		offsetX := startX + i*(glyphWidth+1)
		for _, cell := range GetCellsFromChar(letter) {
			r.screen.SetContent(offsetX+cell[0], y+cell[1], LetterSymbol, nil, r.style)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
