package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// EngineInspector shows the run state, a text rendering of the board and every
// snapshot field, with buttons that submit engine commands.
type EngineInspector struct {
	engine  loop.Controller
	mailbox *loop.Mailbox
	rows    []string
}

func NewEngineInspector(engine loop.Controller, mailbox *loop.Mailbox) *EngineInspector {
	return &EngineInspector{engine: engine, mailbox: mailbox}
}

func (ei *EngineInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 560), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := ei.engine.Snapshot()

	ei.renderState(snap.State)
	ei.renderControls(snap.State)
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Score: %d  (best %d)", snap.Score, snap.Highscore))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d  Pieces: %d", snap.Level, snap.Lines, snap.Pieces))
	imgui.Text(fmt.Sprintf("Tick: %v", snap.Interval))
	imgui.Text(fmt.Sprintf("Current: %v  Next: %v", snap.Current.Kind, snap.Next.Kind))

	if imgui.TreeNodeStr("Board") {
		for _, row := range ei.boardRows(snap) {
			imgui.Text(row)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Snapshot") {
		renderValue(reflect.ValueOf(snap))
		imgui.TreePop()
	}

	imgui.End()
}

func (ei *EngineInspector) renderState(state tetris.RunState) {
	color := imgui.NewVec4(0.7, 0.7, 0.7, 1.0)
	switch state {
	case tetris.Running:
		color = imgui.NewVec4(0.0, 1.0, 0.0, 1.0)
	case tetris.Paused:
		color = imgui.NewVec4(1.0, 0.8, 0.0, 1.0)
	case tetris.Ended:
		color = imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
	}
	imgui.TextColored(color, strings.ToUpper(state.String()))
}

func (ei *EngineInspector) renderControls(state tetris.RunState) {
	switch state {
	case tetris.Idle, tetris.Ended:
		if imgui.Button("Start") {
			ei.mailbox.Submit(loop.Command{Op: loop.OpStart})
		}
	case tetris.Running, tetris.Paused:
		label := "Pause"
		if state == tetris.Paused {
			label = "Resume"
		}
		if imgui.Button(label) {
			ei.mailbox.Submit(loop.Command{Op: loop.OpTogglePause})
		}
		imgui.SameLine()
		if imgui.Button("Tick") {
			ei.mailbox.Submit(loop.Command{Op: loop.OpTick})
		}
		imgui.SameLine()
		if imgui.Button("Drop") {
			ei.mailbox.Submit(loop.Command{Op: loop.OpHardDrop})
		}
		imgui.SameLine()
		if imgui.Button("End") {
			ei.mailbox.Submit(loop.Command{Op: loop.OpEnd})
		}
	}
}

// boardRows renders the grid with one letter per kind, the ghost as ':' and
// empty cells as '.'.
func (ei *EngineInspector) boardRows(snap tetris.Snapshot) []string {
	ghost := make(map[tetris.Position]bool, len(snap.Ghost))
	for _, pos := range snap.Ghost {
		ghost[pos] = true
	}

	ei.rows = ei.rows[:0]
	var b strings.Builder
	for y, row := range snap.Grid {
		b.Reset()
		for x, kind := range row {
			switch {
			case kind != tetris.Empty:
				b.WriteString(kind.String())
			case ghost[tetris.Position{X: x, Y: y}]:
				b.WriteByte(':')
			default:
				b.WriteByte('.')
			}
		}
		ei.rows = append(ei.rows, b.String())
	}
	return ei.rows
}

// renderValue draws a read-only tree of v's exported fields.
func renderValue(v reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(v.Type()) {
		fv := v.Field(field.Index)

		switch {
		case field.Stringer:
			imgui.Text(fmt.Sprintf("%s: %v", field.Name, fv.Interface()))
		case field.IsStruct:
			if imgui.TreeNodeStr(field.Name) {
				renderValue(fv)
				imgui.TreePop()
			}
		case field.IsSlice:
			imgui.Text(fmt.Sprintf("%s: [%d items]", field.Name, fv.Len()))
		case field.IsMap:
			imgui.Text(fmt.Sprintf("%s: map[%d items]", field.Name, fv.Len()))
		default:
			imgui.Text(fmt.Sprintf("%s: %v", field.Name, fv.Interface()))
		}
	}
}
