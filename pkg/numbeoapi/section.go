package numbeoapi

import (
	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Section is a rankings category, resolved to the numeric code the API
// expects before any request is sent
type Section string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SectionCostOfLiving  Section = "cost-of-living"
	SectionCrime         Section = "crime"
	SectionHealthCare    Section = "health-care"
	SectionPollution     Section = "pollution"
	SectionTraffic       Section = "traffic"
	SectionQualityOfLife Section = "quality-of-life"
)

var sectionCodes = map[Section]int{
	SectionCostOfLiving:  1,
	SectionCrime:         2,
	SectionHealthCare:    3,
	SectionPollution:     4,
	SectionTraffic:       5,
	SectionQualityOfLife: 6,
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Sections returns the supported rankings categories, in code order
func Sections() []Section {
	return []Section{
		SectionCostOfLiving,
		SectionCrime,
		SectionHealthCare,
		SectionPollution,
		SectionTraffic,
		SectionQualityOfLife,
	}
}

// Code returns the numeric code for the section, or an error when the
// section is not a supported rankings category
func (s Section) Code() (int, error) {
	if code, exists := sectionCodes[s]; exists {
		return code, nil
	}
	return 0, numbeo.ErrUnsupportedSection.Withf("%q", string(s))
}

func (s Section) String() string {
	return string(s)
}
