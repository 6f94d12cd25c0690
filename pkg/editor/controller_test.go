package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoner/zoner-cli/pkg/geometry"
	"github.com/zoner/zoner-cli/pkg/models"
	"github.com/zoner/zoner-cli/pkg/shaders"
)

// memoryLayouts is an in-memory LayoutService.
type memoryLayouts struct {
	layouts map[string]*models.Layout
	nextID  int
	loadErr error
	saveErr error
}

func newMemoryLayouts() *memoryLayouts {
	return &memoryLayouts{layouts: make(map[string]*models.Layout)}
}

func (m *memoryLayouts) LoadLayout(id string) (*models.Layout, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	l, ok := m.layouts[id]
	if !ok {
		return nil, fmt.Errorf("no layout %s", id)
	}
	cp := *l
	cp.Zones = models.CloneZones(l.Zones)
	return &cp, nil
}

func (m *memoryLayouts) CreateLayout(layout *models.Layout) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.nextID++
	id := fmt.Sprintf("layout-%d", m.nextID)
	cp := *layout
	cp.ID = id
	cp.Zones = models.CloneZones(layout.Zones)
	m.layouts[id] = &cp
	return id, nil
}

func (m *memoryLayouts) UpdateLayout(layout *models.Layout) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.layouts[layout.ID]; !ok {
		return fmt.Errorf("no layout %s", layout.ID)
	}
	cp := *layout
	cp.Zones = models.CloneZones(layout.Zones)
	m.layouts[layout.ID] = &cp
	return nil
}

// fakeClipboard is an in-memory Clipboard.
type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeClipboard) ReadText() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text, nil
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

// testSettings disables snapping so geometry passes through unchanged unless
// a test turns it back on.
func testSettings() *models.Settings {
	s := models.DefaultSettings()
	s.Snapping.GridEnabled = false
	s.Snapping.EdgeEnabled = false
	return s
}

type testEnv struct {
	ctrl    *Controller
	layouts *memoryLayouts
	clip    *fakeClipboard
}

func newTestEnv() *testEnv {
	layouts := newMemoryLayouts()
	clip := &fakeClipboard{}
	ctrl := NewController(testSettings(), layouts, shaders.NewBuiltinCatalog(), clip)
	return &testEnv{ctrl: ctrl, layouts: layouts, clip: clip}
}

func rect(x, y, w, h float64) models.Rect {
	return models.Rect{X: x, Y: y, Width: w, Height: h}
}

func TestAddZoneUndoRedoKeepsID(t *testing.T) {
	e := newTestEnv()
	id, err := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	require.NoError(t, err)
	require.Equal(t, 1, e.ctrl.Store().Count())

	e.ctrl.Undo()
	assert.Equal(t, 0, e.ctrl.Store().Count())

	e.ctrl.Redo()
	require.Equal(t, 1, e.ctrl.Store().Count())
	zone, ok := e.ctrl.Store().Zone(id)
	require.True(t, ok, "redo must restore the zone under its original id")
	assert.Equal(t, rect(0.1, 0.1, 0.3, 0.3), zone.Geometry)
	assert.Equal(t, 1, zone.Number)
}

func TestAddZoneValidation(t *testing.T) {
	e := newTestEnv()
	tests := []struct {
		name string
		rect models.Rect
	}{
		{"zero width", rect(0.1, 0.1, 0, 0.3)},
		{"negative position", rect(-0.1, 0.1, 0.3, 0.3)},
		{"exceeds bounds", rect(0.8, 0.1, 0.3, 0.3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ctrl.AddZone(tt.rect)
			require.Error(t, err)
			assert.True(t, IsCode(err, ErrCodeInvalidGeometry), "code = %v", GetCode(err))
			assert.Equal(t, 0, e.ctrl.Store().Count(), "no state change on validation failure")
		})
	}
}

func TestAddZoneSnapsToGrid(t *testing.T) {
	e := newTestEnv()
	e.ctrl.Settings().Snapping.GridEnabled = true

	id, err := e.ctrl.AddZone(rect(0.12, 0.23, 0.3, 0.3))
	require.NoError(t, err)
	zone, _ := e.ctrl.Store().Zone(id)
	assert.InDelta(t, 0.10, zone.Geometry.X, 1e-9)
	assert.InDelta(t, 0.25, zone.Geometry.Y, 1e-9)
}

func TestSplitZoneScenario(t *testing.T) {
	e := newTestEnv()
	a, err := e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	require.NoError(t, err)

	b, err := e.ctrl.SplitZone(a, true)
	require.NoError(t, err)

	zoneA, _ := e.ctrl.Store().Zone(a)
	zoneB, _ := e.ctrl.Store().Zone(b)
	assert.Equal(t, rect(0, 0, 0.5, 0.5), zoneA.Geometry)
	assert.Equal(t, rect(0, 0.5, 0.5, 0.5), zoneB.Geometry)
	assert.Equal(t, zoneA.Appearance, zoneB.Appearance, "split inherits appearance")

	e.ctrl.Undo()
	zoneA, _ = e.ctrl.Store().Zone(a)
	assert.Equal(t, rect(0, 0, 0.5, 1.0), zoneA.Geometry)
	_, ok := e.ctrl.Store().Zone(b)
	assert.False(t, ok, "undo must remove the split-off zone")
}

func TestSplitZoneTooSmall(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0, 0, 0.08, 0.08))
	_, err := e.ctrl.SplitZone(a, false)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidGeometry))
}

func TestDeleteZoneWithFillScenario(t *testing.T) {
	e := newTestEnv()
	left, _ := e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	right, _ := e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))

	require.NoError(t, e.ctrl.DeleteZone(left, true))
	require.Equal(t, 1, e.ctrl.Store().Count())
	survivor, _ := e.ctrl.Store().Zone(right)
	assert.Equal(t, rect(0, 0, 1.0, 1.0), survivor.Geometry, "neighbor fills the vacated space")

	// Delete and fill form one history entry.
	e.ctrl.Undo()
	require.Equal(t, 2, e.ctrl.Store().Count())
	restored, _ := e.ctrl.Store().Zone(left)
	assert.Equal(t, rect(0, 0, 0.5, 1.0), restored.Geometry)
	neighbor, _ := e.ctrl.Store().Zone(right)
	assert.Equal(t, rect(0.5, 0, 0.5, 1.0), neighbor.Geometry)
}

func TestDeleteZoneNotFound(t *testing.T) {
	e := newTestEnv()
	err := e.ctrl.DeleteZone("missing", false)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeZoneNotFound))
}

func TestDuplicateZone(t *testing.T) {
	e := newTestEnv()
	id, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	require.NoError(t, e.ctrl.RenameZone(id, "main"))

	dup1, err := e.ctrl.DuplicateZone(id)
	require.NoError(t, err)
	z1, _ := e.ctrl.Store().Zone(dup1)
	assert.Equal(t, "main copy", z1.Name)
	assert.Equal(t, 2, z1.Number)
	assert.InDelta(t, 0.12, z1.Geometry.X, 1e-9)

	// A second duplicate of the original must not collide with the first.
	dup2, err := e.ctrl.DuplicateZone(id)
	require.NoError(t, err)
	z2, _ := e.ctrl.Store().Zone(dup2)
	assert.Equal(t, "main copy copy", z2.Name)
}

func TestUpdateZoneGeometrySuppressesJitter(t *testing.T) {
	e := newTestEnv()
	id, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	before := e.ctrl.UndoLabel()

	err := e.ctrl.UpdateZoneGeometry(id, rect(0.1+1e-5, 0.1, 0.3, 0.3), geometry.AllEdges())
	require.NoError(t, err)
	assert.Equal(t, before, e.ctrl.UndoLabel(), "sub-tolerance change must not record history")

	require.NoError(t, e.ctrl.UpdateZoneGeometry(id, rect(0.2, 0.1, 0.3, 0.3), geometry.AllEdges()))
	zone, _ := e.ctrl.Store().Zone(id)
	assert.Equal(t, rect(0.2, 0.1, 0.3, 0.3), zone.Geometry)
	assert.Equal(t, "move zone", e.ctrl.UndoLabel())
}

func TestRenameValidation(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0, 0, 0.3, 0.3))
	b, _ := e.ctrl.AddZone(rect(0.5, 0.5, 0.3, 0.3))
	require.NoError(t, e.ctrl.RenameZone(a, "left"))

	long := make([]byte, maxNameLength+1)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name    string
		newName string
	}{
		{"duplicate name", "left"},
		{"forbidden characters", `zone <b>`},
		{"too long", string(long)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.ctrl.RenameZone(b, tt.newName)
			require.Error(t, err)
			assert.True(t, IsCode(err, ErrCodeInvalidName), "code = %v", GetCode(err))
		})
	}

	// Empty names are always allowed, even on several zones at once.
	require.NoError(t, e.ctrl.RenameZone(a, ""))
	require.NoError(t, e.ctrl.RenameZone(b, ""))
}

func TestRenumberValidation(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0, 0, 0.3, 0.3))
	e.ctrl.AddZone(rect(0.5, 0.5, 0.3, 0.3))

	for _, n := range []int{0, -1, 100} {
		err := e.ctrl.RenumberZone(a, n)
		require.Error(t, err, "number %d", n)
		assert.True(t, IsCode(err, ErrCodeInvalidNumber))
	}
	err := e.ctrl.RenumberZone(a, 2)
	require.Error(t, err, "number already in use")
	assert.True(t, IsCode(err, ErrCodeInvalidNumber))

	require.NoError(t, e.ctrl.RenumberZone(a, 42))
	zone, _ := e.ctrl.Store().Zone(a)
	assert.Equal(t, 42, zone.Number)
	e.ctrl.Undo()
	zone, _ = e.ctrl.Store().Zone(a)
	assert.Equal(t, 1, zone.Number)
}

func TestExpandZone(t *testing.T) {
	e := newTestEnv()
	id, _ := e.ctrl.AddZone(rect(0.4, 0.4, 0.2, 0.2))
	require.NoError(t, e.ctrl.ExpandZone(id, nil))
	zone, _ := e.ctrl.Store().Zone(id)
	assert.Equal(t, rect(0, 0, 1, 1), zone.Geometry)

	err := e.ctrl.ExpandZone(id, nil)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeNoExpansion))
}

func TestResizeDivider(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	b, _ := e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))

	require.NoError(t, e.ctrl.ResizeDivider(a, b, true, 0.6))
	zoneA, _ := e.ctrl.Store().Zone(a)
	zoneB, _ := e.ctrl.Store().Zone(b)
	assert.InDelta(t, 0.6, zoneA.Geometry.Width, 1e-9)
	assert.InDelta(t, 0.6, zoneB.Geometry.X, 1e-9)
	assert.InDelta(t, 0.4, zoneB.Geometry.Width, 1e-9)

	// Both resizes are one history entry.
	e.ctrl.Undo()
	zoneA, _ = e.ctrl.Store().Zone(a)
	zoneB, _ = e.ctrl.Store().Zone(b)
	assert.Equal(t, rect(0, 0, 0.5, 1.0), zoneA.Geometry)
	assert.Equal(t, rect(0.5, 0, 0.5, 1.0), zoneB.Geometry)
}

func TestResizeDividerClampsToMinSize(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	b, _ := e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))

	require.NoError(t, e.ctrl.ResizeDivider(a, b, true, 0.99))
	zoneB, _ := e.ctrl.Store().Zone(b)
	assert.InDelta(t, e.ctrl.Settings().Zones.MinSize, zoneB.Geometry.Width, 1e-9)
}

func TestResizeDividerRequiresSharedEdge(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0, 0, 0.3, 0.3))
	b, _ := e.ctrl.AddZone(rect(0.6, 0.6, 0.3, 0.3))
	err := e.ctrl.ResizeDivider(a, b, true, 0.5)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeNoDivider))
}

func TestZOrderUndo(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0, 0, 0.2, 0.2))
	e.ctrl.AddZone(rect(0.3, 0, 0.2, 0.2))
	c, _ := e.ctrl.AddZone(rect(0.6, 0, 0.2, 0.2))

	require.NoError(t, e.ctrl.BringToFront(a))
	zs := e.ctrl.Zones()
	assert.Equal(t, a, zs[len(zs)-1].ID)

	e.ctrl.Undo()
	zs = e.ctrl.Zones()
	assert.Equal(t, a, zs[0].ID, "undo restores paint order")

	// Reordering a zone already at the target position records nothing.
	label := e.ctrl.UndoLabel()
	require.NoError(t, e.ctrl.BringToFront(c))
	assert.Equal(t, label, e.ctrl.UndoLabel())
}

func TestClearAllZonesUndo(t *testing.T) {
	e := newTestEnv()
	e.ctrl.AddZone(rect(0, 0, 0.2, 0.2))
	e.ctrl.AddZone(rect(0.3, 0, 0.2, 0.2))

	e.ctrl.ClearAllZones()
	assert.Equal(t, 0, e.ctrl.Store().Count())
	e.ctrl.Undo()
	assert.Equal(t, 2, e.ctrl.Store().Count())

	// Clearing an empty store records nothing.
	e2 := newTestEnv()
	e2.ctrl.ClearAllZones()
	assert.False(t, e2.ctrl.CanUndo())
}

func TestSaveCreateThenUpdate(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("test")
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	assert.True(t, e.ctrl.IsDirty())

	require.NoError(t, e.ctrl.SaveLayout())
	assert.False(t, e.ctrl.IsDirty())
	assert.NotEmpty(t, e.ctrl.Layout().ID)
	assert.Len(t, e.layouts.layouts, 1)

	e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))
	assert.True(t, e.ctrl.IsDirty())
	require.NoError(t, e.ctrl.SaveLayout())
	assert.Len(t, e.layouts.layouts, 1, "second save updates in place")
	saved := e.layouts.layouts[e.ctrl.Layout().ID]
	assert.Len(t, saved.Zones, 2)
}

func TestDirtyTracksUndoPosition(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("test")
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	require.NoError(t, e.ctrl.SaveLayout())

	e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))
	assert.True(t, e.ctrl.IsDirty())
	e.ctrl.Undo()
	assert.False(t, e.ctrl.IsDirty(), "undoing back to the saved point is clean")
	e.ctrl.Redo()
	assert.True(t, e.ctrl.IsDirty())
}

func TestMetadataDirty(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("test")
	require.NoError(t, e.ctrl.SaveLayout())
	require.NoError(t, e.ctrl.SetLayoutName("renamed"))
	assert.True(t, e.ctrl.IsDirty(), "metadata edits dirty the session outside the history")
	require.NoError(t, e.ctrl.SaveLayout())
	assert.False(t, e.ctrl.IsDirty())
}

func TestLoadLayoutFailureLeavesState(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("current")
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))

	e.layouts.loadErr = errors.New("disk gone")
	err := e.ctrl.LoadLayout("whatever")
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeLoadFailed))
	assert.Equal(t, "current", e.ctrl.Layout().Name)
	assert.Equal(t, 1, e.ctrl.Store().Count())
}

func TestLoadLayoutResetsHistory(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("first")
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	require.NoError(t, e.ctrl.SaveLayout())
	savedID := e.ctrl.Layout().ID

	e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))
	require.NoError(t, e.ctrl.LoadLayout(savedID))
	assert.Equal(t, 1, e.ctrl.Store().Count())
	assert.False(t, e.ctrl.CanUndo(), "history does not cross layout boundaries")
	assert.False(t, e.ctrl.IsDirty())
}

func TestSaveFailureStaysDirty(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("test")
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	e.layouts.saveErr = errors.New("disk full")

	err := e.ctrl.SaveLayout()
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeSaveFailed))
	assert.True(t, e.ctrl.IsDirty())
}

func TestExportLayoutNeverSaved(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("scratch")
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))

	path := filepath.Join(t.TempDir(), "scratch.json")
	require.NoError(t, e.ctrl.ExportLayout(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var exported models.Layout
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, "scratch", exported.Name)
	assert.Len(t, exported.Zones, 2)

	assert.Empty(t, e.layouts.layouts, "export must not persist through the store")
	assert.True(t, e.ctrl.IsDirty(), "export must not consume the dirty state")
}

func TestExportLayoutSurvivesSaveFailure(t *testing.T) {
	e := newTestEnv()
	e.ctrl.NewLayoutSession("rescue")
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	require.NoError(t, e.ctrl.SaveLayout())
	e.ctrl.AddZone(rect(0.5, 0, 0.5, 1.0))
	e.layouts.saveErr = errors.New("disk full")
	require.Error(t, e.ctrl.SaveLayout())

	path := filepath.Join(t.TempDir(), "rescue.json")
	require.NoError(t, e.ctrl.ExportLayout(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var exported models.Layout
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Len(t, exported.Zones, 2, "export carries the unsaved edits")
}

func TestShaderParamPruning(t *testing.T) {
	e := newTestEnv()
	require.NoError(t, e.ctrl.SetShader("glow"))
	require.NoError(t, e.ctrl.SetShaderParam("intensity", 0.8))
	require.NoError(t, e.ctrl.SetShaderParam("radius", 12))

	err := e.ctrl.SetShaderParam("strength", 1)
	require.Error(t, err, "parameter of a different shader")
	assert.True(t, IsCode(err, ErrCodeInvalidShader))

	// Switching shaders prunes parameters the new shader does not declare.
	require.NoError(t, e.ctrl.SetShader("blur"))
	assert.Empty(t, e.ctrl.Layout().ShaderParams)

	require.NoError(t, e.ctrl.SetShader(""))
	assert.Empty(t, e.ctrl.Layout().ShaderID)
}

func TestSetShaderUnknown(t *testing.T) {
	e := newTestEnv()
	err := e.ctrl.SetShader("nope")
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidShader))
}

func TestApplyTemplateUndo(t *testing.T) {
	e := newTestEnv()
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))

	tmpl := []models.Zone{
		{ID: "t1", Number: 1, Geometry: rect(0, 0, 0.5, 1.0)},
		{ID: "t2", Number: 2, Geometry: rect(0.5, 0, 0.5, 1.0)},
	}
	require.NoError(t, e.ctrl.ApplyTemplate(tmpl))
	assert.Equal(t, 2, e.ctrl.Store().Count())

	e.ctrl.Undo()
	assert.Equal(t, 1, e.ctrl.Store().Count())
}

func TestCloseNeutralizesHistory(t *testing.T) {
	e := newTestEnv()
	e.ctrl.AddZone(rect(0, 0, 0.5, 1.0))
	e.ctrl.Close()
	assert.False(t, e.ctrl.Store().Alive())
	// Undo after close must not panic or resurrect state.
	e.ctrl.Undo()
	assert.Equal(t, 0, e.ctrl.Store().Count())
}
