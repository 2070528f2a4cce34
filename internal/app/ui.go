package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/easelhq/easel/internal/engine"
)

// ui is the terminal editor loop: shapes rendered on a cell grid, edits
// wrapped in the engine's begin/commit protocol so every action is
// undoable.
type ui struct {
	app    *App
	screen tcell.Screen

	selected int // index into the z-order; -1 when the scene is empty
	status   string
}

func newUI(a *App) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &ui{app: a, screen: screen, selected: -1}, nil
}

// interrupt wakes the event loop so run can observe a shutdown.
func (u *ui) interrupt() {
	_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (u *ui) run() error {
	if err := u.screen.Init(); err != nil {
		return err
	}
	defer u.screen.Fini()

	if u.app.Engine().Len() > 0 {
		u.selected = 0
	}
	u.status = "n:new rect  e:new ellipse  x:delete  arrows:move  u/U:undo  r/R:redo  s:save  q:quit"

	for {
		u.draw()

		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventKey:
			if err := u.handleKey(ev); err != nil {
				if err == ErrQuit {
					return nil
				}
				return err
			}
		}
	}
}

func (u *ui) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyTab:
		u.cycleSelection()
		return nil
	case tcell.KeyUp:
		return u.moveSelected(0, -1)
	case tcell.KeyDown:
		return u.moveSelected(0, 1)
	case tcell.KeyLeft:
		return u.moveSelected(-1, 0)
	case tcell.KeyRight:
		return u.moveSelected(1, 0)
	}

	switch ev.Rune() {
	case 'q':
		return ErrQuit
	case 'n':
		return u.addShape(engine.ShapeRect)
	case 'e':
		return u.addShape(engine.ShapeEllipse)
	case 'x':
		return u.deleteSelected()
	case 'u':
		return u.undo(false)
	case 'U':
		return u.undo(true)
	case 'r':
		return u.redo(false)
	case 'R':
		return u.redo(true)
	case 's':
		if err := u.app.SaveScene(); err != nil {
			u.status = fmt.Sprintf("save failed: %v", err)
			return nil
		}
		u.status = "saved"
	}
	return nil
}

func (u *ui) cycleSelection() {
	n := u.app.Engine().Len()
	if n == 0 {
		u.selected = -1
		return
	}
	u.selected = (u.selected + 1) % n
}

func (u *ui) selectedShape() *engine.Shape {
	shapes := u.app.Engine().Shapes()
	if u.selected < 0 || u.selected >= len(shapes) {
		return nil
	}
	return shapes[u.selected]
}

func (u *ui) addShape(kind engine.ShapeKind) error {
	eng := u.app.Engine()
	s, err := eng.NewShape(kind)
	if err != nil {
		return err
	}
	w, h := u.screen.Size()
	s.X = float64(w / 3)
	s.Y = float64(h / 3)
	s.W = 10
	s.H = 4
	u.selected = eng.Len() - 1
	u.status = fmt.Sprintf("added %s %s", kind, shortID(s.ID))
	return nil
}

func (u *ui) deleteSelected() error {
	s := u.selectedShape()
	if s == nil {
		return nil
	}
	if _, err := u.app.Engine().DeleteShape(s.ID); err != nil {
		return err
	}
	u.status = fmt.Sprintf("deleted %s", shortID(s.ID))
	u.clampSelection()
	return nil
}

// moveSelected nudges the selected shape, tracked as one undoable action.
func (u *ui) moveSelected(dx, dy float64) error {
	s := u.selectedShape()
	if s == nil {
		return nil
	}
	eng := u.app.Engine()
	if err := eng.BeginEdit(s.ID); err != nil {
		return err
	}
	s.MoveBy(dx, dy)
	if err := eng.CommitEdit(s.ID); err != nil {
		return err
	}
	if u.app.Config().Editor.Autosave {
		if err := u.app.SaveScene(); err != nil {
			u.status = fmt.Sprintf("autosave failed: %v", err)
		}
	}
	return nil
}

// undo reverts the newest applied action; selectedOnly scopes it to the
// selected shape so other shapes' timelines stay put.
func (u *ui) undo(selectedOnly bool) error {
	var ids []string
	if selectedOnly {
		s := u.selectedShape()
		if s == nil {
			return nil
		}
		ids = []string{s.ID}
	}
	undone, err := u.app.Engine().Undo(ids...)
	if err != nil {
		return err
	}
	if undone {
		u.status = "undone"
	} else {
		u.status = "nothing to undo"
	}
	u.clampSelection()
	return nil
}

func (u *ui) redo(selectedOnly bool) error {
	var ids []string
	if selectedOnly {
		s := u.selectedShape()
		if s == nil {
			return nil
		}
		ids = []string{s.ID}
	}
	redone, err := u.app.Engine().Redo(ids...)
	if err != nil {
		return err
	}
	if redone {
		u.status = "redone"
	} else {
		u.status = "nothing to redo"
	}
	u.clampSelection()
	return nil
}

// clampSelection keeps the selection valid after shapes come and go.
func (u *ui) clampSelection() {
	n := u.app.Engine().Len()
	if n == 0 {
		u.selected = -1
		return
	}
	if u.selected < 0 {
		u.selected = 0
	}
	if u.selected >= n {
		u.selected = n - 1
	}
}

func (u *ui) draw() {
	u.screen.Clear()

	shapes := u.app.Engine().Shapes()
	for i, s := range shapes {
		u.drawShape(s, i == u.selected)
	}
	u.drawStatus()
	u.screen.Show()
}

func (u *ui) drawShape(s *engine.Shape, selected bool) {
	style := tcell.StyleDefault
	if s.Fill != "" {
		style = style.Foreground(tcell.GetColor(s.Fill))
	}
	if selected {
		style = style.Reverse(true)
	}

	x, y := int(s.X), int(s.Y)
	w, h := int(s.W), int(s.H)

	switch s.Kind {
	case engine.ShapeLabel:
		u.drawText(x, y, s.Label, style)
	case engine.ShapeLine:
		u.drawLine(x, y, x+w, y+h, style)
	default:
		u.drawBox(x, y, w, h, style, s.Kind == engine.ShapeEllipse)
	}
}

func (u *ui) drawBox(x, y, w, h int, style tcell.Style, rounded bool) {
	if w < 1 || h < 1 {
		return
	}
	corner := '+'
	if rounded {
		corner = 'o'
	}
	for cx := x; cx <= x+w; cx++ {
		u.screen.SetContent(cx, y, '-', nil, style)
		u.screen.SetContent(cx, y+h, '-', nil, style)
	}
	for cy := y; cy <= y+h; cy++ {
		u.screen.SetContent(x, cy, '|', nil, style)
		u.screen.SetContent(x+w, cy, '|', nil, style)
	}
	u.screen.SetContent(x, y, corner, nil, style)
	u.screen.SetContent(x+w, y, corner, nil, style)
	u.screen.SetContent(x, y+h, corner, nil, style)
	u.screen.SetContent(x+w, y+h, corner, nil, style)
}

func (u *ui) drawLine(x0, y0, x1, y1 int, style tcell.Style) {
	// Bresenham
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		u.screen.SetContent(x0, y0, '*', nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (u *ui) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (u *ui) drawStatus() {
	eng := u.app.Engine()
	_, h := u.screen.Size()

	line := fmt.Sprintf("shapes:%d  history:%d/%d  %s",
		eng.Len(), len(eng.Timeline()), eng.MaxActions(), u.status)
	u.drawText(0, h-1, line, tcell.StyleDefault.Reverse(true))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
