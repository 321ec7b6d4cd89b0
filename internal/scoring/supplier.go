package scoring

import (
	"slices"
	"strings"

	"github.com/C2IHub/proCURE2/internal/domain"
)

const certificationSuffix = " Certification"

// CertificationNames lists the valid certifications of a checklist with the
// trailing "Certification" token removed, in checklist order.
func CertificationNames(req domain.ComplianceRequirement) []string {
	out := []string{}
	for _, it := range req.Requirements {
		if it.Type != domain.RequirementCertification || it.CurrentStatus != domain.StatusValid {
			continue
		}
		out = append(out, strings.TrimSpace(strings.TrimSuffix(it.Name, certificationSuffix)))
	}
	return out
}

// Assemble composes the supplier view. master may be nil, in which case only
// the id is known.
func Assemble(id string, master *domain.SupplierMaster, compliance domain.ComplianceScore, risk domain.RiskScore, certifications []string) domain.Supplier {
	s := domain.Supplier{
		ID:             id,
		Compliance:     compliance,
		Risk:           risk,
		Rating:         DetermineSupplierRating(compliance, risk),
		Certifications: certifications,
	}
	if master != nil {
		s.Name = master.Name
		s.Category = master.Category
		s.Region = master.Region
		s.Status = master.Status
		s.EstablishedYear = master.EstablishedYear
		s.EmployeeCount = master.EmployeeCount
		s.Facilities = slices.Clone(master.Facilities)
		s.Website = master.Website
	}
	return s
}
