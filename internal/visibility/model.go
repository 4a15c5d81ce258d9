package visibility

// DefaultResumeID is used by single-resume deployments that never mint
// their own identifiers.
const DefaultResumeID = "default"

// ArraySectionVisibility holds the inclusion state of one list section.
// Items aligns positionally with the resume section's entries; the two
// may drift only between a document mutation and the next Reconcile.
type ArraySectionVisibility struct {
	Enabled  bool   `json:"enabled"`
	Expanded bool   `json:"expanded"`
	Items    []bool `json:"items"`
}

// AllSelected reports whether the section has items and every one of
// them is included.
func (a *ArraySectionVisibility) AllSelected() bool {
	if len(a.Items) == 0 {
		return false
	}
	for _, on := range a.Items {
		if !on {
			return false
		}
	}
	return true
}

// AnySelected reports whether at least one item is included.
func (a *ArraySectionVisibility) AnySelected() bool {
	for _, on := range a.Items {
		if on {
			return true
		}
	}
	return false
}

// VisibleCount returns the number of included items.
func (a *ArraySectionVisibility) VisibleCount() int {
	n := 0
	for _, on := range a.Items {
		if on {
			n++
		}
	}
	return n
}

// LocationFields carries one flag per basics.location sub-field.
type LocationFields struct {
	Address     bool `json:"address"`
	City        bool `json:"city"`
	PostalCode  bool `json:"postalCode"`
	CountryCode bool `json:"countryCode"`
	Region      bool `json:"region"`
}

func (l LocationFields) any() bool {
	return l.Address || l.City || l.PostalCode || l.CountryCode || l.Region
}

func (l *LocationFields) setAll(v bool) {
	l.Address, l.City, l.PostalCode, l.CountryCode, l.Region = v, v, v, v, v
}

// PersonalDetailsFields holds the per-field flags of the basics block.
// Profiles maps a network name to its flag; insertion order is
// irrelevant, only presence and value matter.
type PersonalDetailsFields struct {
	Image    bool            `json:"image"`
	Email    bool            `json:"email"`
	Phone    bool            `json:"phone"`
	Summary  bool            `json:"summary"`
	URL      bool            `json:"url"`
	Location LocationFields  `json:"location"`
	Profiles map[string]bool `json:"profiles"`
}

// PersonalDetailsVisibility covers the basics block. Enabled is
// permanently true: the section can never be excluded as a whole and the
// name always survives filtering.
type PersonalDetailsVisibility struct {
	Enabled  bool                  `json:"enabled"`
	Expanded bool                  `json:"expanded"`
	Fields   PersonalDetailsFields `json:"fields"`
}

// SectionVisibility is the complete visibility model for one resume,
// keyed by ResumeID.
type SectionVisibility struct {
	ResumeID        string                    `json:"resumeId"`
	PersonalDetails PersonalDetailsVisibility `json:"personalDetails"`
	Work            ArraySectionVisibility    `json:"work"`
	Volunteer       ArraySectionVisibility    `json:"volunteer"`
	Education       ArraySectionVisibility    `json:"education"`
	Awards          ArraySectionVisibility    `json:"awards"`
	Certificates    ArraySectionVisibility    `json:"certificates"`
	Publications    ArraySectionVisibility    `json:"publications"`
	Skills          ArraySectionVisibility    `json:"skills"`
	Languages       ArraySectionVisibility    `json:"languages"`
	Interests       ArraySectionVisibility    `json:"interests"`
	References      ArraySectionVisibility    `json:"references"`
	Projects        ArraySectionVisibility    `json:"projects"`
}

// Section returns the array-section state for id, or nil for
// personalDetails and unknown ids.
func (v *SectionVisibility) Section(id SectionID) *ArraySectionVisibility {
	if v == nil {
		return nil
	}
	switch id {
	case SectionWork:
		return &v.Work
	case SectionVolunteer:
		return &v.Volunteer
	case SectionEducation:
		return &v.Education
	case SectionAwards:
		return &v.Awards
	case SectionCertificates:
		return &v.Certificates
	case SectionPublications:
		return &v.Publications
	case SectionSkills:
		return &v.Skills
	case SectionLanguages:
		return &v.Languages
	case SectionInterests:
		return &v.Interests
	case SectionReferences:
		return &v.References
	case SectionProjects:
		return &v.Projects
	default:
		return nil
	}
}

// Clone returns a deep copy, safe to hand to persistence while the
// original keeps mutating.
func (v *SectionVisibility) Clone() *SectionVisibility {
	if v == nil {
		return nil
	}
	out := *v

	profiles := make(map[string]bool, len(v.PersonalDetails.Fields.Profiles))
	for k, on := range v.PersonalDetails.Fields.Profiles {
		profiles[k] = on
	}
	out.PersonalDetails.Fields.Profiles = profiles

	for _, id := range ArraySections {
		src := v.Section(id)
		dst := out.Section(id)
		dst.Items = make([]bool, len(src.Items))
		copy(dst.Items, src.Items)
	}
	return &out
}
