package visibility

import "resume-builder/internal/model"

// keepItems copies the entries of src whose positional flag is on,
// preserving order. A disabled section yields an empty, non-nil slice.
func keepItems[T any](src []T, sec *ArraySectionVisibility) []T {
	out := make([]T, 0, len(src))
	if !sec.Enabled {
		return out
	}
	for i, it := range src {
		if i < len(sec.Items) && sec.Items[i] {
			out = append(out, it)
		}
	}
	return out
}

// Filter projects the document through the visibility model: excluded
// scalar fields are blanked, excluded location sub-fields omitted,
// excluded profile entries and list items dropped. The result is a new
// structure; neither input is mutated. Returns nil if either input is
// nil.
//
// Every profile network is expected to carry an explicit flag by the
// time Filter runs (Reconcile precedes it); a flag somehow still absent
// is treated as included, matching the default builder.
func Filter(resume *model.Resume, v *SectionVisibility) *model.Resume {
	if resume == nil || v == nil {
		return nil
	}

	f := v.PersonalDetails.Fields
	basics := model.Basics{
		Name:  resume.Basics.Name,
		Label: resume.Basics.Label,
	}
	if f.Image {
		basics.Image = resume.Basics.Image
	}
	if f.Email {
		basics.Email = resume.Basics.Email
	}
	if f.Phone {
		basics.Phone = resume.Basics.Phone
	}
	if f.Summary {
		basics.Summary = resume.Basics.Summary
	}
	if f.URL {
		basics.URL = resume.Basics.URL
	}
	if f.Location.Address {
		basics.Location.Address = resume.Basics.Location.Address
	}
	if f.Location.City {
		basics.Location.City = resume.Basics.Location.City
	}
	if f.Location.PostalCode {
		basics.Location.PostalCode = resume.Basics.Location.PostalCode
	}
	if f.Location.CountryCode {
		basics.Location.CountryCode = resume.Basics.Location.CountryCode
	}
	if f.Location.Region {
		basics.Location.Region = resume.Basics.Location.Region
	}

	basics.Profiles = make([]model.Profile, 0, len(resume.Basics.Profiles))
	for _, p := range resume.Basics.Profiles {
		if on, ok := f.Profiles[p.Network]; !ok || on {
			basics.Profiles = append(basics.Profiles, p)
		}
	}

	return &model.Resume{
		Basics:       basics,
		Work:         keepItems(resume.Work, &v.Work),
		Volunteer:    keepItems(resume.Volunteer, &v.Volunteer),
		Education:    keepItems(resume.Education, &v.Education),
		Awards:       keepItems(resume.Awards, &v.Awards),
		Certificates: keepItems(resume.Certificates, &v.Certificates),
		Publications: keepItems(resume.Publications, &v.Publications),
		Skills:       keepItems(resume.Skills, &v.Skills),
		Languages:    keepItems(resume.Languages, &v.Languages),
		Interests:    keepItems(resume.Interests, &v.Interests),
		References:   keepItems(resume.References, &v.References),
		Projects:     keepItems(resume.Projects, &v.Projects),
	}
}
