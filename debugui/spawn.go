package debugui

import "github.com/plus3/blockfall/loop"

// NewDebugUI builds an ImguiSystem with the engine, performance and piece
// statistics windows. Register it after the systems it inspects.
func NewDebugUI(scheduler *loop.Scheduler, engine loop.Controller) *ImguiSystem {
	system := &ImguiSystem{}
	system.Add(ImguiItem{Render: NewEngineInspector(engine, scheduler.Mailbox()).Render})
	system.Add(ImguiItem{Render: NewPerformanceStats(scheduler, 120).Render})
	system.Add(ImguiItem{Render: NewPieceStats(engine).Render})
	return system
}
