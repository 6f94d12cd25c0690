package editor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoner/zoner-cli/pkg/models"
)

func TestCopyPasteRoundTrip(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	b, _ := e.ctrl.AddZone(rect(0.5, 0.5, 0.3, 0.3))
	e.ctrl.SetSelection([]string{a, b})

	require.NoError(t, e.ctrl.CopySelection())

	var envelope models.ClipboardEnvelope
	require.NoError(t, json.Unmarshal([]byte(e.clip.text), &envelope))
	assert.Equal(t, models.ZonesMIMEType, envelope.MIMEType)
	assert.Equal(t, models.ClipboardVersion, envelope.Version)
	assert.Len(t, envelope.Zones, 2)

	assert.True(t, e.ctrl.CanPaste())
	require.NoError(t, e.ctrl.Paste(true))
	require.Equal(t, 4, e.ctrl.Store().Count())

	// Pasted zones carry fresh ids, numbers continuing from the max, and the
	// fixed offset.
	pasted := e.ctrl.Selection()
	require.Len(t, pasted, 2)
	z1, _ := e.ctrl.Store().Zone(pasted[0])
	z2, _ := e.ctrl.Store().Zone(pasted[1])
	assert.NotEqual(t, a, z1.ID)
	assert.NotEqual(t, b, z2.ID)
	assert.Equal(t, 3, z1.Number)
	assert.Equal(t, 4, z2.Number)
	assert.InDelta(t, 0.12, z1.Geometry.X, 1e-9)
	assert.InDelta(t, 0.52, z2.Geometry.X, 1e-9)
}

func TestPasteWithoutOffset(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	e.ctrl.SetSelection([]string{a})
	require.NoError(t, e.ctrl.CopySelection())

	require.NoError(t, e.ctrl.Paste(false))
	pasted := e.ctrl.Selection()
	require.Len(t, pasted, 1)
	z, _ := e.ctrl.Store().Zone(pasted[0])
	assert.Equal(t, rect(0.1, 0.1, 0.3, 0.3), z.Geometry)
}

func TestPasteIsOneUndoEntry(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	b, _ := e.ctrl.AddZone(rect(0.5, 0.5, 0.3, 0.3))
	e.ctrl.SetSelection([]string{a, b})
	require.NoError(t, e.ctrl.CopySelection())
	require.NoError(t, e.ctrl.Paste(true))

	e.ctrl.Undo()
	assert.Equal(t, 2, e.ctrl.Store().Count())
	assert.Equal(t, []string{a, b}, e.ctrl.Selection(), "undo restores the pre-paste selection")
}

func TestPasteClampsToBounds(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.7, 0.7, 0.3, 0.3))
	e.ctrl.SetSelection([]string{a})
	require.NoError(t, e.ctrl.CopySelection())
	require.NoError(t, e.ctrl.Paste(true))

	z, _ := e.ctrl.Store().Zone(e.ctrl.Selection()[0])
	assert.LessOrEqual(t, z.Geometry.Right(), 1.0+1e-9)
	assert.LessOrEqual(t, z.Geometry.Bottom(), 1.0+1e-9)
}

func TestCutSelection(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	b, _ := e.ctrl.AddZone(rect(0.5, 0.5, 0.3, 0.3))
	e.ctrl.SetSelection([]string{a, b})

	require.NoError(t, e.ctrl.CutSelection())
	assert.Equal(t, 0, e.ctrl.Store().Count())
	assert.True(t, e.ctrl.CanPaste())

	// Cut is one history entry covering both deletions.
	e.ctrl.Undo()
	assert.Equal(t, 2, e.ctrl.Store().Count())
}

func TestCutFailedWriteLeavesZones(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	e.ctrl.SetSelection([]string{a})
	e.clip.writeErr = errors.New("clipboard gone")

	err := e.ctrl.CutSelection()
	require.Error(t, err)
	assert.Equal(t, 1, e.ctrl.Store().Count(), "failed clipboard write must not delete")
}

func TestCopyNothingSelected(t *testing.T) {
	e := newTestEnv()
	err := e.ctrl.CopySelection()
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeNoSelection))
}

func TestPasteBareArrayFallback(t *testing.T) {
	e := newTestEnv()
	payload := []models.Zone{
		{ID: "x", Number: 7, Geometry: rect(0.2, 0.2, 0.3, 0.3)},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	e.clip.text = string(data)

	assert.True(t, e.ctrl.CanPaste())
	require.NoError(t, e.ctrl.Paste(false))
	assert.Equal(t, 1, e.ctrl.Store().Count())
	z := e.ctrl.Zones()[0]
	assert.NotEqual(t, "x", z.ID, "pasted zone gets a fresh id")
	assert.Equal(t, 1, z.Number, "numbers restart from the store's max")
}

func TestPasteRejectsGarbage(t *testing.T) {
	e := newTestEnv()
	e.clip.text = "not json at all"
	assert.False(t, e.ctrl.CanPaste())
	err := e.ctrl.Paste(false)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeClipboardInvalid))
}

func TestCanPasteReflectsExternalChanges(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	e.ctrl.SetSelection([]string{a})
	require.NoError(t, e.ctrl.CopySelection())
	assert.True(t, e.ctrl.CanPaste())

	e.clip.text = "replaced by another application"
	assert.False(t, e.ctrl.CanPaste())
}

func TestPasteRenamesCollidingNames(t *testing.T) {
	e := newTestEnv()
	a, _ := e.ctrl.AddZone(rect(0.1, 0.1, 0.3, 0.3))
	require.NoError(t, e.ctrl.RenameZone(a, "main"))
	e.ctrl.SetSelection([]string{a})
	require.NoError(t, e.ctrl.CopySelection())

	require.NoError(t, e.ctrl.Paste(true))
	z, _ := e.ctrl.Store().Zone(e.ctrl.Selection()[0])
	assert.Equal(t, "main copy", z.Name)
}

func TestPasteDecollidesNamesWithinBatch(t *testing.T) {
	e := newTestEnv()
	payload := []models.Zone{
		{Name: "same", Geometry: rect(0.1, 0.1, 0.3, 0.3)},
		{Name: "same", Geometry: rect(0.5, 0.5, 0.3, 0.3)},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	e.clip.text = string(data)

	require.NoError(t, e.ctrl.Paste(false))
	pasted := e.ctrl.Selection()
	require.Len(t, pasted, 2)
	z1, _ := e.ctrl.Store().Zone(pasted[0])
	z2, _ := e.ctrl.Store().Zone(pasted[1])
	assert.Equal(t, "same", z1.Name)
	assert.Equal(t, "same copy", z2.Name, "second pasted zone must not share the first's name")
}

func TestPasteRejectsForbiddenNameChars(t *testing.T) {
	e := newTestEnv()
	payload := []models.Zone{
		{Name: "fine", Geometry: rect(0.1, 0.1, 0.3, 0.3)},
		{Name: "bad<name>", Geometry: rect(0.5, 0.5, 0.3, 0.3)},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	e.clip.text = string(data)

	err = e.ctrl.Paste(false)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidName))
	assert.Equal(t, 0, e.ctrl.Store().Count(), "rejected paste must not land any zone")
	assert.False(t, e.ctrl.CanUndo(), "rejected paste must not record history")
}

func TestPasteRejectsOverlongName(t *testing.T) {
	e := newTestEnv()
	payload := []models.Zone{
		{Name: strings.Repeat("n", 101), Geometry: rect(0.1, 0.1, 0.3, 0.3)},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	e.clip.text = string(data)

	err = e.ctrl.Paste(false)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidName))
}

func TestPasteRejectsFutureVersion(t *testing.T) {
	e := newTestEnv()
	envelope := models.ClipboardEnvelope{
		MIMEType: models.ZonesMIMEType,
		Version:  models.ClipboardVersion + 1,
		Zones: []models.Zone{
			{Name: "future", Geometry: rect(0.1, 0.1, 0.3, 0.3)},
		},
	}
	data, err := json.Marshal(envelope)
	require.NoError(t, err)
	e.clip.text = string(data)

	assert.False(t, e.ctrl.CanPaste())
	err = e.ctrl.Paste(false)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeClipboardInvalid))
	assert.Equal(t, 0, e.ctrl.Store().Count())
}
