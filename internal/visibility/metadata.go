package visibility

import "resume-builder/internal/model"

// SectionMetadata is a derived, display-oriented view of one section.
// It is recomputed on every read and never stored.
type SectionMetadata struct {
	Type             SectionID `json:"type"`
	LabelKey         string    `json:"labelKey"`
	HasData          bool      `json:"hasData"`
	ItemCount        int       `json:"itemCount"`
	VisibleItemCount int       `json:"visibleItemCount"`
}

// ProjectMetadata derives one SectionMetadata per section, in canonical
// order. personalDetails always has data and carries no item counts.
func ProjectMetadata(resume *model.Resume, v *SectionVisibility) []SectionMetadata {
	out := make([]SectionMetadata, 0, len(SectionOrder))
	for _, id := range SectionOrder {
		meta := SectionMetadata{Type: id, LabelKey: id.LabelKey()}
		if id == SectionPersonalDetails {
			meta.HasData = true
			out = append(out, meta)
			continue
		}
		meta.ItemCount = sectionLen(resume, id)
		meta.HasData = meta.ItemCount > 0
		if sec := v.Section(id); sec != nil {
			meta.VisibleItemCount = sec.VisibleCount()
		}
		out = append(out, meta)
	}
	return out
}
