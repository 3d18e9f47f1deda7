package clinic

import (
	"github.com/jwalitptl/directory-web/internal/model"
)

// LabelInput is what the label strategies may look at. Listing and
// AnyProfile are nil when the clinic has doctors or nothing was found.
type LabelInput struct {
	Clinic     *model.Clinic
	Doctors    []*model.Profile
	Listing    *model.Listing
	AnyProfile *model.Profile
}

// LabelStrategy returns a label or "" to defer to the next strategy.
type LabelStrategy func(LabelInput) string

// DefaultLabelChain is the order used on clinic pages.
var DefaultLabelChain = []LabelStrategy{
	StaffedCategoryLabel,
	ListingSpecialtyLabel,
	ProfileSpecialtyLabel,
	CategoryLabel,
}

// ResolveLabel returns the first non-empty label produced by chain.
func ResolveLabel(in LabelInput, chain []LabelStrategy) string {
	for _, strategy := range chain {
		if label := strategy(in); label != "" {
			return label
		}
	}
	return ""
}

// StaffedCategoryLabel labels clinics with doctors by their category.
func StaffedCategoryLabel(in LabelInput) string {
	if len(in.Doctors) == 0 {
		return ""
	}
	return CategoryLabel(in)
}

// ListingSpecialtyLabel uses the free-text specialty of the clinic's listing.
func ListingSpecialtyLabel(in LabelInput) string {
	if len(in.Doctors) > 0 || in.Listing == nil {
		return ""
	}
	return in.Listing.SpecialtyValue()
}

// ProfileSpecialtyLabel uses any profile linked to the clinic, joined name first.
func ProfileSpecialtyLabel(in LabelInput) string {
	if len(in.Doctors) > 0 || in.AnyProfile == nil {
		return ""
	}
	return in.AnyProfile.DisplaySpecialty()
}

func CategoryLabel(in LabelInput) string {
	if in.Clinic == nil {
		return ""
	}
	return in.Clinic.Category.Label()
}

// SidebarSpecialties lists each doctor's specialty then label, deduplicated
// in first-appearance order.
func SidebarSpecialties(doctors []*model.Profile, label string) []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, d := range doctors {
		add(d.DisplaySpecialty())
	}
	add(label)
	return out
}
