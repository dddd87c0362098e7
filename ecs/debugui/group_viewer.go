package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hollowpine/kitbash/ecs"
)

// GroupViewer shows every non-empty group index: how many entries it holds,
// how many of those are stale (dead or departed entities waiting for the next
// sweep), and the member IDs.
type GroupViewer struct{}

func NewGroupViewer() *GroupViewer {
	return &GroupViewer{}
}

func (gv *GroupViewer) Render(m *ecs.Manager) {
	if !imgui.BeginV("Group Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("GroupTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Group")
		imgui.TableSetupColumn("Entries")
		imgui.TableSetupColumn("Stale")
		imgui.TableHeadersRow()

		empty := true
		for g := 0; g < ecs.MaxGroups; g++ {
			index := m.Group(ecs.GroupID(g))
			if len(index) == 0 {
				continue
			}
			empty = false

			stale := 0
			for _, e := range index {
				if !e.Alive() || !e.InGroup(ecs.GroupID(g)) {
					stale++
				}
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", g))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(index)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stale))
		}
		imgui.EndTable()

		if empty {
			imgui.Text("No group has members")
		}
	}

	for g := 0; g < ecs.MaxGroups; g++ {
		index := m.Group(ecs.GroupID(g))
		if len(index) == 0 {
			continue
		}
		if imgui.TreeNodeStr(fmt.Sprintf("Group %d members", g)) {
			for _, e := range index {
				label := fmt.Sprintf("entity %d", e.ID())
				if !e.Alive() {
					label += " (dead)"
				} else if !e.InGroup(ecs.GroupID(g)) {
					label += " (left)"
				}
				imgui.BulletText(label)
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}
