package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/tetromino"
)

// FieldInspector shows the live state of a field: counters, timers, the
// settled grid and recent events.
type FieldInspector struct {
	field *field.Field
	log   *EventLog
}

func NewFieldInspector(f *field.Field, logSize int) *FieldInspector {
	fi := &FieldInspector{
		field: f,
		log:   NewEventLog(logSize),
	}
	f.OnEvent(fi.log.Add)
	return fi
}

func (fi *FieldInspector) Log() *EventLog {
	return fi.log
}

func (fi *FieldInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 400), imgui.CondOnce)

	if !imgui.BeginV("Field Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := fi.field.Snapshot()

	switch {
	case snap.GameOver:
		imgui.TextColored(imgui.NewVec4(1.0, 0.2, 0.2, 1.0), "GAME OVER")
		imgui.SameLine()
		if imgui.Button("Restart") {
			fi.field.Restart()
		}
	case snap.Paused:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	default:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))
	imgui.Text(fmt.Sprintf("Gravity: %s", snap.Gravity))
	imgui.Text(fmt.Sprintf("Active: %s %v", snap.ActiveKind, snap.Active))
	imgui.Text(fmt.Sprintf("Preview: %v", snap.Preview))

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("TimerTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Timer")
		imgui.TableSetupColumn("Duration")
		imgui.TableSetupColumn("Elapsed")
		imgui.TableHeadersRow()

		for _, t := range fi.field.Timers() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(t.Name)
			imgui.TableNextColumn()
			imgui.Text(t.Duration.String())
			imgui.TableNextColumn()
			if !t.Active {
				imgui.Text("idle")
				continue
			}
			progress := float32(t.Elapsed) / float32(max(t.Duration, 1))
			imgui.ProgressBarV(min(progress, 1), imgui.NewVec2(-1, 0), t.Elapsed.String())
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Grid") {
		for _, row := range GridRows(&snap) {
			imgui.Text(row)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Events (%d)###events", fi.log.Total())) {
		for _, line := range fi.log.Lines() {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// GridRows renders a snapshot as text, one string per row. Settled blocks
// show their kind, the active piece is drawn in lower case and its landing
// cells as '+'.
func GridRows(snap *field.Snapshot) []string {
	cells := make([][]byte, snap.Rows)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", snap.Columns))
		for x := range snap.Columns {
			if k := snap.At(x, y); k != tetromino.KindNone {
				cells[y][x] = k.String()[0]
			}
		}
	}

	mark := func(points []tetromino.Point, c byte) {
		for _, p := range points {
			if p.Y >= 0 && p.Y < snap.Rows && p.X >= 0 && p.X < snap.Columns {
				cells[p.Y][p.X] = c
			}
		}
	}
	mark(snap.Ghost, '+')
	if snap.ActiveKind != tetromino.KindNone {
		mark(snap.Active, strings.ToLower(snap.ActiveKind.String())[0])
	}

	rows := make([]string, len(cells))
	for y, row := range cells {
		rows[y] = string(row)
	}
	return rows
}
