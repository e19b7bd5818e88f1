package recommendation

import "github.com/de-tools/compliance-atlas/pkg/models/domain"

// Guidance returns the delivery guidance for the economical, recommended and
// premium tiers, in that order. The returned slice is a fresh copy.
func Guidance() []domain.TierGuidance {
	return []domain.TierGuidance{
		{
			Tier:     domain.TierEconomical,
			Title:    "Minimal version, strict essentials only",
			Approach: "Substitutions to reduce costs",
			Practices: []string{
				"External consultants replaced by 100% internal work",
				"Full training replaced by free basic online training",
				"Automated tools replaced by spreadsheets and documents",
				"External audits replaced by internal self-assessments",
			},
			TimelineMinMonths: 9,
			TimelineMaxMonths: 12,
			Resources:         "1-2 internal staff, part time",
			ChooseIf: []string{
				"Very limited budget",
				"Solid internal expertise",
				"Time available",
			},
		},
		{
			Tier:     domain.TierRecommended,
			Title:    "Recommended version, best value for money",
			Approach: "Optimal mix, 60% internal and 40% external",
			Practices: []string{
				"External consultant for the initial gap analysis (2-3 weeks)",
				"Internal team for day-to-day implementation",
				"Standard compliance tooling (Vanta, Drata or similar)",
				"Blended training, online plus 2-3 in-person sessions",
				"Privacy impact assessments on 2-3 critical processes with consultant support",
				"Professional templates, customized",
			},
			TimelineMinMonths: 6,
			TimelineMaxMonths: 9,
			Resources:         "2-3 internal staff plus an occasional consultant",
			ChooseIf: []string{
				"Medium budget",
				"Mix of internal and external expertise",
				"Standard timeline",
			},
		},
		{
			Tier:     domain.TierPremium,
			Title:    "Premium version, turnkey package",
			Approach: "Complete package delivered by dedicated experts",
			Practices: []string{
				"Dedicated senior consultants, a team of 2-3 experts",
				"Full automated suite (OneTrust, ServiceNow, etc.)",
				"Tailored in-person training program",
				"In-depth privacy impact assessments on every process",
				"External audit by a certified body",
				"12 months of support after implementation",
				"Preparation for and obtaining official certification",
			},
			TimelineMinMonths: 3,
			TimelineMaxMonths: 6,
			Resources:         "Consultant team plus 1 internal coordinator",
			ChooseIf: []string{
				"High budget available",
				"Highly regulated sector",
				"Speed required",
				"Risk to minimize",
			},
		},
	}
}
