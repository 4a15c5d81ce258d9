package visibility

import "resume-builder/internal/model"

// sectionLen returns the length of the named array section in the
// document, 0 for personalDetails or an unknown id.
func sectionLen(r *model.Resume, id SectionID) int {
	if r == nil {
		return 0
	}
	switch id {
	case SectionWork:
		return len(r.Work)
	case SectionVolunteer:
		return len(r.Volunteer)
	case SectionEducation:
		return len(r.Education)
	case SectionAwards:
		return len(r.Awards)
	case SectionCertificates:
		return len(r.Certificates)
	case SectionPublications:
		return len(r.Publications)
	case SectionSkills:
		return len(r.Skills)
	case SectionLanguages:
		return len(r.Languages)
	case SectionInterests:
		return len(r.Interests)
	case SectionReferences:
		return len(r.References)
	case SectionProjects:
		return len(r.Projects)
	default:
		return 0
	}
}

func allTrue(n int) []bool {
	items := make([]bool, n)
	for i := range items {
		items[i] = true
	}
	return items
}

// BuildDefault produces the initial visibility model for a document:
// everything present is included, empty sections are excluded, nothing
// is expanded. Pure; performs no persistence.
func BuildDefault(resumeID string, resume *model.Resume) *SectionVisibility {
	v := &SectionVisibility{
		ResumeID: resumeID,
		PersonalDetails: PersonalDetailsVisibility{
			Enabled:  true,
			Expanded: false,
			Fields: PersonalDetailsFields{
				Image:    true,
				Email:    true,
				Phone:    true,
				Summary:  true,
				URL:      true,
				Location: LocationFields{Address: true, City: true, PostalCode: true, CountryCode: true, Region: true},
				Profiles: map[string]bool{},
			},
		},
	}

	if resume != nil {
		// duplicate networks collapse to one flag
		for _, p := range resume.Basics.Profiles {
			v.PersonalDetails.Fields.Profiles[p.Network] = true
		}
	}

	for _, id := range ArraySections {
		n := sectionLen(resume, id)
		sec := v.Section(id)
		sec.Enabled = n > 0
		sec.Expanded = false
		sec.Items = allTrue(n)
	}
	return v
}
