package debugui

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hollowpine/kitbash/ecs"
)

// Inspector shows, and where possible edits, the exported fields of every
// component on the entity selected in the browser. Edits write straight
// through to the live component.
type Inspector struct {
	browser *EntityBrowser
}

func NewInspector(browser *EntityBrowser) *Inspector {
	return &Inspector{browser: browser}
}

func (in *Inspector) Render(m *ecs.Manager) {
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	selected := in.browser.Selected()
	if selected == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity := findEntity(m, selected)
	if entity == nil {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", entity.ID()))
	if !entity.Alive() {
		imgui.Text("Marked dead, pending sweep")
	}
	imgui.Separator()

	for _, component := range entity.Components() {
		t := reflect.TypeOf(component)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if imgui.TreeNodeStr(t.String()) {
			renderComponentFields(component, t)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func findEntity(m *ecs.Manager, id ecs.EntityID) *ecs.Entity {
	for _, e := range m.Entities() {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

func renderComponentFields(component ecs.Component, t reflect.Type) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	fields := globalFieldCache.fieldsOf(t)
	if len(fields) == 0 {
		imgui.Text("(no exported fields)")
		return
	}

	for _, field := range fields {
		renderField(field.Name, val.Field(field.Index))
	}
}

func renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		imgui.Text(fmt.Sprintf("%s: %q", name, val.String()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

type fieldInfo struct {
	Name  string
	Index int
}

// fieldCache memoizes exported struct fields per component type.
type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

func (fc *fieldCache) fieldsOf(t reflect.Type) []fieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}
			fields = append(fields, fieldInfo{Name: field.Name, Index: i})
		}
	}
	fc.fields[t] = fields
	return fields
}

var globalFieldCache = &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}
