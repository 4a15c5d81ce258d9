package visibility

import "strings"

// Personal-detail field names accepted by TogglePersonalField. A single
// profile network is addressed as "profiles:<network>".
const (
	FieldName     = "name"
	FieldImage    = "image"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldSummary  = "summary"
	FieldURL      = "url"
	FieldLocation = "location"
	FieldProfiles = "profiles"

	profileFieldPrefix = "profiles:"
)

// All toggle operations are best-effort: unknown sections, out-of-range
// indexes and nil receivers are silent no-ops, never errors. They back
// direct UI event handlers that cannot meaningfully recover.

// ToggleSection flips a whole section between fully included and fully
// excluded. personalDetails is permanently enabled and ignores the call.
//
// An enabled section with every item selected goes fully excluded.
// Anything else — disabled, or enabled with a partial selection — goes
// fully included, so a click on an indeterminate section always lands on
// "select all" rather than introducing a confusing third state.
func (v *SectionVisibility) ToggleSection(id SectionID) {
	sec := v.Section(id)
	if sec == nil {
		return
	}
	if sec.Enabled && sec.AllSelected() {
		sec.Enabled = false
		sec.Expanded = false
		for i := range sec.Items {
			sec.Items[i] = false
		}
		return
	}
	sec.Enabled = true
	for i := range sec.Items {
		sec.Items[i] = true
	}
}

// ToggleExpanded flips the UI expand/collapse flag. Expanding a fully
// excluded array section is a no-op; personalDetails always toggles.
// Enabled and Items are never touched.
func (v *SectionVisibility) ToggleExpanded(id SectionID) {
	if v == nil {
		return
	}
	if id == SectionPersonalDetails {
		v.PersonalDetails.Expanded = !v.PersonalDetails.Expanded
		return
	}
	sec := v.Section(id)
	if sec == nil || !sec.Enabled {
		return
	}
	sec.Expanded = !sec.Expanded
}

// ToggleItem flips one item flag, then re-derives the section state:
// Enabled follows "any item included", and a section that just lost its
// last visible item is also collapsed.
func (v *SectionVisibility) ToggleItem(id SectionID, index int) {
	sec := v.Section(id)
	if sec == nil || index < 0 || index >= len(sec.Items) {
		return
	}
	sec.Items[index] = !sec.Items[index]
	sec.Enabled = sec.AnySelected()
	if !sec.Enabled {
		sec.Expanded = false
	}
}

// TogglePersonalField flips a basics-block field flag. "name" never
// toggles. "location" and "profiles" act as group toggles: if any flag
// in the group is on, the whole group turns off, otherwise the whole
// group turns on. "profiles:<network>" flips a single network.
func (v *SectionVisibility) TogglePersonalField(field string) {
	if v == nil {
		return
	}
	f := &v.PersonalDetails.Fields

	if network, ok := strings.CutPrefix(field, profileFieldPrefix); ok {
		if f.Profiles == nil {
			f.Profiles = map[string]bool{}
		}
		if _, present := f.Profiles[network]; !present {
			f.Profiles[network] = false
		}
		f.Profiles[network] = !f.Profiles[network]
		return
	}

	switch field {
	case FieldName:
		// identity stays visible
	case FieldImage:
		f.Image = !f.Image
	case FieldEmail:
		f.Email = !f.Email
	case FieldPhone:
		f.Phone = !f.Phone
	case FieldSummary:
		f.Summary = !f.Summary
	case FieldURL:
		f.URL = !f.URL
	case FieldLocation:
		f.Location.setAll(!f.Location.any())
	case FieldProfiles:
		any := false
		for _, on := range f.Profiles {
			if on {
				any = true
				break
			}
		}
		for k := range f.Profiles {
			f.Profiles[k] = !any
		}
	}
}
