package prompt

import (
	"strings"

	"github.com/datalakes/metagen/lookup"
)

// researcherSelector presents ORCID candidates on the terminal. It
// implements lookup.Selector[lookup.Researcher].
type researcherSelector struct {
	s *Session
}

func (r researcherSelector) Confirm(c lookup.Researcher) bool {
	s := r.s
	s.printf("\nSingle match found\n")
	s.printf("    Name: %s\n", c.DisplayName)
	if c.Affiliation != "" {
		s.printf("    Current institution: %s\n", c.Affiliation)
	} else {
		s.printf("    No institution listed\n")
	}
	s.printf("    ORCID iD: %s\n", c.ORCID)
	return s.yesNo("\nUse this ORCID iD?")
}

func (r researcherSelector) Pick(cs []lookup.Researcher) (int, bool) {
	s := r.s
	s.printf("\nFound %d potential matches:\n", len(cs))
	s.printf("--------------------------------------------\n")
	for i, c := range cs {
		s.printf("\n%d. %s\n", i+1, c.DisplayName)
		s.printf("    ORCID iD: %s\n", c.ORCID)
		if c.Affiliation != "" {
			s.printf("    Current institution: %s\n", c.Affiliation)
		} else {
			s.printf("    No institution listed\n")
		}
	}
	s.printf("\n%d. None of these match / skip ORCID iD\n", len(cs)+1)

	choice := s.choose("\nSelect option", len(cs)+1)
	if choice == len(cs) {
		return 0, false
	}
	s.printf("\nSelected: %s (%s)\n", cs[choice].DisplayName, cs[choice].ORCID)
	return choice, true
}

// organizationSelector presents ROR candidates on the terminal. It
// implements lookup.Selector[lookup.Organization].
type organizationSelector struct {
	s *Session
}

func aliasSuffix(o lookup.Organization) string {
	if len(o.Aliases) == 0 {
		return ""
	}
	return " (aliases: " + strings.Join(o.Aliases, ", ") + ")"
}

func (r organizationSelector) Confirm(o lookup.Organization) bool {
	s := r.s
	s.printf("\nFound match\n")
	s.printf("    Name: %s%s\n", o.Name, aliasSuffix(o))
	s.printf("    Country: %s\n", o.Country)
	s.printf("    ROR ID: %s\n", o.ID)
	return s.yesNo("\nUse this ROR ID?")
}

func (r organizationSelector) Pick(os []lookup.Organization) (int, bool) {
	s := r.s
	s.printf("\nFound %d potential matches\n", len(os))
	s.printf("-----------------------------------------\n")
	for i, o := range os {
		s.printf("%d. %s%s\n", i+1, o.Name, aliasSuffix(o))
		s.printf("    Country: %s\n", o.Country)
	}
	s.printf("%d. None of these match / skip ROR ID\n", len(os)+1)

	choice := s.choose("\nSelect option", len(os)+1)
	if choice == len(os) {
		return 0, false
	}
	return choice, true
}
