// Package terminal is a thin tcell adapter around the controller: it
// feeds key events in and paints the computed geometry. All editing
// semantics live in the core packages.
package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mindgrid/controller"
	"mindgrid/export"
	"mindgrid/layout"
)

// Viewer drives an interactive editing session.
type Viewer struct {
	screen tcell.Screen
	ctl    *controller.Controller

	filename string
	status   string
	editing  bool
	editID   string
	editBuf  []rune
	quit     bool
}

// Run opens the screen and blocks until the user quits. The document
// is saved back to filename on 's' (when a filename is set).
func Run(ctl *controller.Controller, filename string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	v := &Viewer{screen: screen, ctl: ctl, filename: filename}
	ctl.Subscribe(func(ev controller.Event) {
		v.status = ev.Kind.String()
	})

	for !v.quit {
		v.draw()
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			v.handleKey(ev)
		case *tcell.EventResize:
			screen.Sync()
		}
	}
	return nil
}

func (v *Viewer) handleKey(ev *tcell.EventKey) {
	if v.editing {
		v.handleEditKey(ev)
		return
	}
	if !v.ctl.Config().Shortcuts {
		if ev.Key() == tcell.KeyCtrlC {
			v.quit = true
		}
		return
	}

	sel := v.ctl.Selection()
	cur := sel.LastSelected()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.quit = true
		return
	case tcell.KeyTab:
		if cur != "" {
			if id, err := v.ctl.AddChild(cur, "new node"); err == nil {
				sel.Select(id)
				v.beginEdit(id)
			}
		}
		return
	case tcell.KeyEnter:
		if cur != "" {
			if id, err := v.ctl.AddSibling(cur, "new node"); err != nil {
				v.status = err.Error()
			} else {
				sel.Select(id)
				v.beginEdit(id)
			}
		}
		return
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		v.navigate(ev.Key())
		return
	}

	switch ev.Rune() {
	case 'q':
		v.quit = true
	case 'd':
		if cur != "" {
			if err := v.ctl.RemoveNode(cur); err != nil {
				v.status = err.Error()
			}
		}
	case 'e':
		if cur != "" {
			v.beginEdit(cur)
		}
	case ' ':
		if cur != "" {
			v.ctl.ToggleExpand(cur)
		}
	case 'f':
		if cur != "" {
			if err := v.ctl.FocusNode(cur); err != nil {
				v.status = err.Error()
			}
		}
	case 'F':
		v.ctl.ExitFocus()
	case 'u':
		if !v.ctl.Undo() {
			v.status = "nothing to undo"
		}
	case 'U':
		if !v.ctl.Redo() {
			v.status = "nothing to redo"
		}
	case '+', '=':
		v.ctl.SetZoom(v.ctl.Viewport().Zoom * 1.25)
	case '-':
		v.ctl.SetZoom(v.ctl.Viewport().Zoom / 1.25)
	case 's':
		v.save()
	}
}

func (v *Viewer) beginEdit(id string) {
	if err := v.ctl.BeginEdit(id); err != nil {
		v.status = err.Error()
		return
	}
	node := v.ctl.Index().Node(id)
	v.editing = true
	v.editID = id
	v.editBuf = []rune(node.Topic)
}

func (v *Viewer) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		v.editing = false
		if err := v.ctl.FinishEdit(v.editID, string(v.editBuf)); err != nil {
			v.status = err.Error()
		}
	case tcell.KeyEscape:
		v.editing = false
		if err := v.ctl.FinishEdit(v.editID, v.ctl.Index().Node(v.editID).Topic); err != nil {
			v.status = err.Error()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.editBuf) > 0 {
			v.editBuf = v.editBuf[:len(v.editBuf)-1]
		}
	default:
		if r := ev.Rune(); r != 0 {
			v.editBuf = append(v.editBuf, r)
		}
	}
}

// navigate moves the selection geometrically: left/right walk the
// parent/child axis, up/down walk siblings.
func (v *Viewer) navigate(key tcell.Key) {
	sel := v.ctl.Selection()
	idx := v.ctl.Index()
	cur := sel.LastSelected()
	if cur == "" {
		sel.Select(rootOrFocus(v.ctl))
		return
	}
	node := idx.Node(cur)
	if node == nil {
		return
	}
	switch key {
	case tcell.KeyRight:
		if node.Expanded && len(node.Children) > 0 {
			sel.Select(node.Children[0].ID)
		}
	case tcell.KeyLeft:
		if parent := idx.Parent(cur); parent != nil {
			sel.Select(parent.ID)
		}
	case tcell.KeyUp, tcell.KeyDown:
		parent := idx.Parent(cur)
		if parent == nil {
			return
		}
		pos := idx.ChildIndex(cur)
		if key == tcell.KeyUp && pos > 0 {
			sel.Select(parent.Children[pos-1].ID)
		}
		if key == tcell.KeyDown && pos < len(parent.Children)-1 {
			sel.Select(parent.Children[pos+1].ID)
		}
	}
}

func rootOrFocus(ctl *controller.Controller) string {
	if focus := ctl.Selection().Focused(); focus != "" {
		return focus
	}
	return ctl.Index().RootID()
}

func (v *Viewer) save() {
	if v.filename == "" {
		v.status = "no filename"
		return
	}
	data, err := export.MarshalDocument(v.ctl.Document())
	if err != nil {
		v.status = err.Error()
		return
	}
	if err := os.WriteFile(v.filename, data, 0644); err != nil {
		v.status = err.Error()
		return
	}
	v.status = "saved " + v.filename
}

func (v *Viewer) draw() {
	v.screen.Clear()
	res, err := v.ctl.Layout()
	if err != nil {
		v.drawStatus(err.Error())
		v.screen.Show()
		return
	}

	width, height := v.screen.Size()
	bounds := res.Bounds()
	offX := float64(width)/2 - (bounds.Min.X+bounds.Max.X)/2
	offY := float64(height-1)/2 - (bounds.Min.Y+bounds.Max.Y)/2

	idx := v.ctl.Index()
	sel := v.ctl.Selection()

	for _, id := range res.IDs() {
		geo, _ := res.Geometry(id)
		node := idx.Node(id)
		if node == nil {
			continue
		}
		x := int(geo.Position.X + offX)
		y := int(geo.Position.Y + geo.Size.Y/2 + offY)

		style := tcell.StyleDefault
		if sel.IsSelected(id) {
			style = style.Reverse(true)
		}
		if sel.Focused() == id {
			style = style.Bold(true)
		}

		label := node.Topic
		if v.editing && id == v.editID {
			label = string(v.editBuf) + "_"
		}
		text := "[ " + label + " ]"
		for i, r := range text {
			v.screen.SetContent(x+i, y, r, nil, style)
		}
		if b, ok := res.ExpandIndicatorBounds(id); ok {
			marker := '-'
			if !node.Expanded {
				marker = '+'
			}
			cx := int((b.Min.X+b.Max.X)/2 + offX)
			v.screen.SetContent(cx, y, marker, nil, tcell.StyleDefault)
		}

		// Connector stub toward the parent, when both are visible.
		if parent := idx.Parent(id); parent != nil {
			if pg, ok := res.Geometry(parent.ID); ok {
				drawConnector(v.screen, pg, geo, offX, offY)
			}
		}
	}

	undo, redo := 0, 0
	if v.ctl.CanUndo() {
		undo = 1
	}
	if v.ctl.CanRedo() {
		redo = 1
	}
	mode := "NORMAL"
	if v.editing {
		mode = "EDIT"
	}
	v.drawStatus(fmt.Sprintf("%s  zoom %.2f  undo:%d redo:%d  %s", mode, v.ctl.Viewport().Zoom, undo, redo, v.status))
	v.screen.Show()
}

func drawConnector(screen tcell.Screen, parent, child layout.Geometry, offX, offY float64) {
	py := int(parent.Position.Y + parent.Size.Y/2 + offY)
	cy := int(child.Position.Y + child.Size.Y/2 + offY)

	var fromX, toX int
	if child.Position.X >= parent.Position.X+parent.Size.X {
		fromX = int(parent.Position.X + parent.Size.X + offX)
		toX = int(child.Position.X + offX)
	} else {
		fromX = int(child.Position.X + child.Size.X + offX)
		toX = int(parent.Position.X + offX)
		py, cy = cy, py
	}
	midX := (fromX + toX) / 2
	for x := fromX; x < midX; x++ {
		screen.SetContent(x, py, '─', nil, tcell.StyleDefault)
	}
	step := 1
	if cy < py {
		step = -1
	}
	for y := py; y != cy; y += step {
		screen.SetContent(midX, y, '│', nil, tcell.StyleDefault)
	}
	for x := midX; x < toX; x++ {
		screen.SetContent(x, cy, '─', nil, tcell.StyleDefault)
	}
}

func (v *Viewer) drawStatus(text string) {
	width, height := v.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		v.screen.SetContent(x, height-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, height-1, ' ', nil, style)
	}
}
