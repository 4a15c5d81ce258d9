package visibility

import "resume-builder/internal/model"

// Reconcile repairs a previously saved visibility model so its shape
// matches the current document. It must run once per load, before the
// model is exposed to callers.
//
// Rules, per array section:
//   - document grew: append flags for the new trailing entries, included
//     by default;
//   - document shrank: truncate trailing flags.
//
// Alignment is purely positional. Removing an entry from the middle of a
// list therefore shifts every later flag onto the wrong item — a known
// limitation kept for product review; identity-based matching is
// deliberately not attempted here.
//
// Profile networks present in the document but missing a flag are added
// as included; flags for networks no longer in the document are left in
// place (stale entries persist harmlessly).
func Reconcile(saved *SectionVisibility, resume *model.Resume) *SectionVisibility {
	if saved == nil {
		return nil
	}

	for _, id := range ArraySections {
		sec := saved.Section(id)
		want := sectionLen(resume, id)
		have := len(sec.Items)
		switch {
		case want > have:
			for i := have; i < want; i++ {
				sec.Items = append(sec.Items, true)
			}
		case want < have:
			sec.Items = sec.Items[:want]
		}
	}

	if saved.PersonalDetails.Fields.Profiles == nil {
		saved.PersonalDetails.Fields.Profiles = map[string]bool{}
	}
	if resume != nil {
		for _, p := range resume.Basics.Profiles {
			if _, ok := saved.PersonalDetails.Fields.Profiles[p.Network]; !ok {
				saved.PersonalDetails.Fields.Profiles[p.Network] = true
			}
		}
	}

	// the basics block can never be excluded, whatever was saved
	saved.PersonalDetails.Enabled = true

	return saved
}
