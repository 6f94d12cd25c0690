package editor

import "github.com/zoner/zoner-cli/pkg/models"

// AppearanceField identifies one editable appearance property. Batch edits
// name the field through this closed enum rather than free-form strings.
type AppearanceField int

const (
	FieldHighlightColor AppearanceField = iota
	FieldInactiveColor
	FieldBorderColor
	FieldActiveOpacity
	FieldInactiveOpacity
	FieldBorderWidth
	FieldBorderRadius
	FieldUseCustomColors
)

// FieldValue carries the new value for one appearance field. Only the member
// matching the field's type is read.
type FieldValue struct {
	Color  string
	Number float64
	Flag   bool
}

// applyAppearanceField returns a with the single named field replaced.
func applyAppearanceField(a models.Appearance, f AppearanceField, v FieldValue) models.Appearance {
	switch f {
	case FieldHighlightColor:
		a.HighlightColor = v.Color
	case FieldInactiveColor:
		a.InactiveColor = v.Color
	case FieldBorderColor:
		a.BorderColor = v.Color
	case FieldActiveOpacity:
		a.ActiveOpacity = v.Number
	case FieldInactiveOpacity:
		a.InactiveOpacity = v.Number
	case FieldBorderWidth:
		a.BorderWidth = v.Number
	case FieldBorderRadius:
		a.BorderRadius = v.Number
	case FieldUseCustomColors:
		a.UseCustomColors = v.Flag
	}
	return a
}
