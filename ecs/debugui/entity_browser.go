package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hollowpine/kitbash/ecs"
)

// EntityBrowser lists the manager's entities in a paginated, filterable table.
// Selecting a row feeds the Inspector panel.
type EntityBrowser struct {
	selected           ecs.EntityID
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{maxEntitiesPerPage: maxEntitiesPerPage}
}

// Selected returns the currently selected entity ID, or 0.
func (eb *EntityBrowser) Selected() ecs.EntityID {
	return eb.selected
}

func (eb *EntityBrowser) Render(m *ecs.Manager) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	filtered := eb.filteredEntities(m)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Alive")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Groups")
		imgui.TableHeadersRow()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		if startIdx > len(filtered) {
			startIdx = 0
			eb.currentPage = 0
		}
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for _, e := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == e.ID()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", e.ID()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = e.ID()
			}

			imgui.TableNextColumn()
			if e.Alive() {
				imgui.Text("yes")
			} else {
				imgui.Text("dead (pending sweep)")
			}

			imgui.TableNextColumn()
			imgui.Text(componentKinds(e))

			imgui.TableNextColumn()
			imgui.Text(groupList(e))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) filteredEntities(m *ecs.Manager) []*ecs.Entity {
	entities := m.Entities()
	if eb.filterText == "" {
		return entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]*ecs.Entity, 0, len(entities))
	for _, e := range entities {
		idStr := fmt.Sprintf("%d", e.ID())
		kinds := strings.ToLower(componentKinds(e))
		if strings.Contains(idStr, filterLower) || strings.Contains(kinds, filterLower) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func componentKinds(e *ecs.Entity) string {
	components := e.Components()
	if len(components) == 0 {
		return "-"
	}
	kinds := make([]string, len(components))
	for i, c := range components {
		t := reflect.TypeOf(c)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		kinds[i] = t.Name()
	}
	return strings.Join(kinds, ", ")
}

func groupList(e *ecs.Entity) string {
	var groups []string
	for g := 0; g < ecs.MaxGroups; g++ {
		if e.InGroup(ecs.GroupID(g)) {
			groups = append(groups, fmt.Sprintf("%d", g))
		}
	}
	if len(groups) == 0 {
		return "-"
	}
	return strings.Join(groups, ", ")
}
