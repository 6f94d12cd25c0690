package editor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zoner/zoner-cli/pkg/geometry"
	"github.com/zoner/zoner-cli/pkg/models"
	"github.com/zoner/zoner-cli/pkg/zones"
)

// Clipboard abstracts the system clipboard. The system backend carries text;
// zone payloads travel as a versioned JSON envelope tagged with the zones
// MIME type, readable as generic JSON or plain text by other applications.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// CopySelection serializes the selected zones onto the clipboard.
func (c *Controller) CopySelection() error {
	return c.copyZones(c.selection)
}

// CutSelection copies the selected zones and deletes them as one history
// entry. The clipboard write happens first so a failing write leaves the
// zones untouched.
func (c *Controller) CutSelection() error {
	ids := c.Selection()
	if err := c.copyZones(ids); err != nil {
		return err
	}

	c.store.BeginBatchUpdate()
	defer c.store.EndBatchUpdate()
	c.stack.BeginMacro("cut zones")
	defer c.stack.EndMacro()

	for _, id := range ids {
		zone, ok := c.store.Zone(id)
		if !ok {
			continue
		}
		c.stack.Push(&deleteZoneCommand{store: c.store, zone: zone, index: c.store.IndexOf(id)})
	}
	return nil
}

func (c *Controller) copyZones(ids []string) error {
	if len(ids) == 0 {
		return newError(ErrCodeNoSelection, "nothing selected to copy")
	}
	payload := make([]models.Zone, 0, len(ids))
	for _, id := range ids {
		zone, ok := c.store.Zone(id)
		if !ok {
			return zoneError(ErrCodeZoneNotFound, id, "zone %s does not exist", id)
		}
		payload = append(payload, zone)
	}

	envelope := models.ClipboardEnvelope{
		MIMEType: models.ZonesMIMEType,
		Version:  models.ClipboardVersion,
		Zones:    payload,
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return wrapError(ErrCodeClipboardInvalid, err, "failed to serialize zones")
	}
	if err := c.clip.WriteText(string(data)); err != nil {
		return wrapError(ErrCodeClipboardInvalid, err, "failed to write clipboard")
	}
	return nil
}

// CanPaste reports whether the clipboard currently holds a readable zone
// payload. It re-reads the clipboard on every call so externally replaced
// content is reflected immediately.
func (c *Controller) CanPaste() bool {
	text, err := c.clip.ReadText()
	if err != nil {
		return false
	}
	zs, err := decodeZonePayload(text)
	return err == nil && len(zs) > 0
}

// Paste inserts the clipboard zones with fresh ids and numbers continuing
// from the current maximum, optionally offset to avoid exact overlap, as one
// history entry. The pasted zones become the new selection.
func (c *Controller) Paste(withOffset bool) error {
	text, err := c.clip.ReadText()
	if err != nil {
		return wrapError(ErrCodeClipboardEmpty, err, "failed to read clipboard")
	}
	payload, err := decodeZonePayload(text)
	if err != nil {
		return wrapError(ErrCodeClipboardInvalid, err, "clipboard does not hold zones")
	}
	if len(payload) == 0 {
		return newError(ErrCodeClipboardEmpty, "clipboard holds no zones")
	}

	number := c.store.MaxNumber()
	offset := 0.0
	if withOffset {
		offset = c.settings.Editor.DuplicateOffset
	}

	before := c.store.Zones()
	after := c.store.Zones()
	pastedIDs := make([]string, 0, len(payload))
	stagedNames := make(map[string]bool)
	for _, src := range payload {
		number++
		if number > zones.MaxZoneNumber {
			return newError(ErrCodeInvalidNumber, "pasting would exceed %d zones", zones.MaxZoneNumber)
		}
		pasted := src
		pasted.ID = uuid.NewString()
		pasted.Number = number
		// Bare-array payloads come from arbitrary producers; names pass the
		// same validation as a rename and de-collide against both the store
		// and the zones staged earlier in this paste.
		if pasted.Name != "" {
			if len(pasted.Name) > maxNameLength {
				return newError(ErrCodeInvalidName, "pasted zone name exceeds %d characters", maxNameLength)
			}
			if strings.ContainsAny(pasted.Name, forbiddenNameChars) {
				return newError(ErrCodeInvalidName, "pasted zone name %q contains forbidden characters", pasted.Name)
			}
			if c.nameTaken(pasted.Name) || stagedNames[pasted.Name] {
				pasted.Name = c.uniqueCopyNameAvoiding(pasted.Name, stagedNames)
			}
			if pasted.Name != "" {
				stagedNames[pasted.Name] = true
			}
		}
		pasted.Geometry = geometry.Clamp(models.Rect{
			X:      src.Geometry.X + offset,
			Y:      src.Geometry.Y + offset,
			Width:  src.Geometry.Width,
			Height: src.Geometry.Height,
		}, c.settings.Zones.MinSize)
		after = append(after, pasted)
		pastedIDs = append(pastedIDs, pasted.ID)
	}

	c.stack.BeginMacro("paste zones")
	c.stack.Push(&restoreCommand{store: c.store, oldZones: before, newZones: after, label: "paste zones"})
	c.SetSelection(pastedIDs)
	c.stack.EndMacro()
	return nil
}

// decodeZonePayload parses clipboard text as a zones envelope, falling back
// to a bare zone array for interop with generic JSON producers. Envelopes
// newer than the supported schema version are rejected.
func decodeZonePayload(text string) ([]models.Zone, error) {
	var envelope models.ClipboardEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err == nil && envelope.MIMEType == models.ZonesMIMEType {
		if envelope.Version > models.ClipboardVersion {
			return nil, fmt.Errorf("unsupported zones payload version %d", envelope.Version)
		}
		return envelope.Zones, nil
	}
	var bare []models.Zone
	if err := json.Unmarshal([]byte(text), &bare); err != nil {
		return nil, err
	}
	return bare, nil
}
