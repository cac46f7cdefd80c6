package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// PieceStats shows this run's spawn counts per kind and the line clear
// histogram.
type PieceStats struct {
	engine loop.Controller
}

func NewPieceStats(engine loop.Controller) *PieceStats {
	return &PieceStats{engine: engine}
}

func (pw *PieceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 300), imgui.CondOnce)

	if !imgui.BeginV("Piece Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := pw.engine.Snapshot()
	stats := snap.Stats

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Spawns")
		imgui.TableSetupColumn("Share")
		imgui.TableHeadersRow()

		for _, kind := range tetris.Kinds {
			n := stats.Spawns[kind]
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", n))
			imgui.TableNextColumn()
			if snap.Pieces > 0 {
				imgui.Text(fmt.Sprintf("%.1f%%", 100*float64(n)/float64(snap.Pieces)))
			} else {
				imgui.Text("-")
			}
		}

		imgui.EndTable()
	}

	imgui.Separator()
	imgui.Text("Line clears")
	for lines := 1; lines <= 4; lines++ {
		label := fmt.Sprintf("%d", lines)
		if lines == 4 {
			label = "4+"
		}
		imgui.BulletText(fmt.Sprintf("%s: %d", label, stats.Clears[lines]))
	}

	imgui.End()
}
