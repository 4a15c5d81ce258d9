// Package visibility tracks, per resume, which sections, items and
// personal-detail fields are included in an export, keeps that state in
// step with the resume document, and derives the filtered view handed to
// the PDF renderer.
package visibility

// SectionID names one resume section. The set and its order are fixed:
// the order drives rendering and is not user-reorderable.
type SectionID string

const (
	SectionPersonalDetails SectionID = "personalDetails"
	SectionWork            SectionID = "work"
	SectionVolunteer       SectionID = "volunteer"
	SectionEducation       SectionID = "education"
	SectionAwards          SectionID = "awards"
	SectionCertificates    SectionID = "certificates"
	SectionPublications    SectionID = "publications"
	SectionSkills          SectionID = "skills"
	SectionLanguages       SectionID = "languages"
	SectionInterests       SectionID = "interests"
	SectionReferences      SectionID = "references"
	SectionProjects        SectionID = "projects"
)

// SectionOrder is the canonical render order.
var SectionOrder = []SectionID{
	SectionPersonalDetails,
	SectionWork,
	SectionVolunteer,
	SectionEducation,
	SectionAwards,
	SectionCertificates,
	SectionPublications,
	SectionSkills,
	SectionLanguages,
	SectionInterests,
	SectionReferences,
	SectionProjects,
}

// ArraySections is SectionOrder minus personalDetails.
var ArraySections = SectionOrder[1:]

var sectionLabelKeys = map[SectionID]string{
	SectionPersonalDetails: "sections.personalDetails",
	SectionWork:            "sections.work",
	SectionVolunteer:       "sections.volunteer",
	SectionEducation:       "sections.education",
	SectionAwards:          "sections.awards",
	SectionCertificates:    "sections.certificates",
	SectionPublications:    "sections.publications",
	SectionSkills:          "sections.skills",
	SectionLanguages:       "sections.languages",
	SectionInterests:       "sections.interests",
	SectionReferences:      "sections.references",
	SectionProjects:        "sections.projects",
}

// LabelKey returns the translation key for a section, or "" for an
// unknown id.
func (s SectionID) LabelKey() string {
	return sectionLabelKeys[s]
}

// Valid reports whether s is one of the known section identifiers.
func (s SectionID) Valid() bool {
	_, ok := sectionLabelKeys[s]
	return ok
}
