// Package rfp suggests regulations to include in a request for proposal from
// the product categories and target markets it covers.
package rfp

import (
	"errors"
	"slices"
)

var ErrEmptySelection = errors.New("select at least one category or market")

var Categories = []string{
	"Primary Packaging",
	"Secondary Packaging",
	"APIs",
	"Raw Materials",
	"Equipment",
	"Testing Services",
	"Logistics",
	"Excipients",
}

var Markets = []string{
	"Europe",
	"North America",
	"Asia Pacific",
	"South America",
	"Middle East & Africa",
}

var Regulations = []string{
	"EU Regulation 2025/40 (Packaging Materials)",
	"FDA 21 CFR Part 211 (GMP)",
	"ISO 15378:2017 (Pharmaceutical Packaging)",
	"USP <661> Plastic Materials",
	"EU Directive 94/62/EC (Packaging and Packaging Waste)",
	"REACH Regulation (Substance Restrictions)",
	"Regional EPR Obligations",
	"Health Canada Medical Device License",
	"CE Marking for Medical Devices",
	"Good Distribution Practice (GDP)",
}

type Selection struct {
	Categories []string `json:"categories"`
	Markets    []string `json:"markets"`
}

type Suggestion struct {
	ID         int    `json:"id"`
	Regulation string `json:"regulation"`
	Reason     string `json:"reason"`
	Mandatory  bool   `json:"mandatory"`
	Confidence int    `json:"confidence"`
}

type rule struct {
	category string // empty matches any selection
	market   string
	out      []Suggestion
}

var rules = []rule{
	{category: "Primary Packaging", market: "Europe", out: []Suggestion{
		{ID: 1, Regulation: "EU Regulation 2025/40 (Packaging Materials)", Reason: "Required for primary packaging materials in European markets", Mandatory: true, Confidence: 95},
		{ID: 2, Regulation: "ISO 15378:2017 (Pharmaceutical Packaging)", Reason: "Global standard for pharmaceutical primary packaging", Mandatory: true, Confidence: 90},
	}},
	{category: "APIs", market: "North America", out: []Suggestion{
		{ID: 3, Regulation: "FDA 21 CFR Part 211 (GMP)", Reason: "Mandatory for API manufacturing in US market", Mandatory: true, Confidence: 98},
	}},
	{category: "Equipment", market: "Europe", out: []Suggestion{
		{ID: 4, Regulation: "CE Marking for Medical Devices", Reason: "Required for medical equipment in European Union", Mandatory: true, Confidence: 92},
	}},
	{market: "Europe", out: []Suggestion{
		{ID: 5, Regulation: "REACH Regulation (Substance Restrictions)", Reason: "Chemical safety requirements for European market", Mandatory: true, Confidence: 88},
	}},
}

// Suggest evaluates every rule against the selection; order follows the rule table.
func Suggest(sel Selection) ([]Suggestion, error) {
	if len(sel.Categories) == 0 && len(sel.Markets) == 0 {
		return nil, ErrEmptySelection
	}
	out := []Suggestion{}
	for _, r := range rules {
		if r.category != "" && !slices.Contains(sel.Categories, r.category) {
			continue
		}
		if r.market != "" && !slices.Contains(sel.Markets, r.market) {
			continue
		}
		out = append(out, r.out...)
	}
	return out, nil
}
