package prompt

import (
	"strings"

	"github.com/datalakes/metagen/helpers"
	"github.com/datalakes/metagen/lookup"
	"github.com/datalakes/metagen/record"
)

func orEmpty(v string) string {
	if v == "" {
		return "None"
	}
	return v
}

func (s *Session) summaryLine(label, value string) {
	s.printf("%s: %s\n", label, orEmpty(value))
}

// personEntry collects one person: name, optional lookup-assisted ORCID iD,
// and affiliation with optional ROR resolution.
func (s *Session) personEntry(namePrompt, affPrompt string, required bool) record.Person {
	name := s.input(namePrompt, required, "")
	p := record.Person{Name: name}
	if name == "" {
		return p
	}

	var suggested string
	if given, family, ok := helpers.SplitName(name); ok {
		s.printf("\nThe ORCID iD is a unique identifier for researchers.\n")
		if s.yesNo("Look up the ORCID iD for this person?") {
			s.printf("Searching for ORCID iD for: %s %s\n", given, family)
			candidates := s.orcid.Search(given, family)
			if len(candidates) == 0 {
				s.printf("\nNo ORCID match found for %s %s. You can enter the iD manually.\n", given, family)
			}
			if c, ok := lookup.Disambiguate(candidates, researcherSelector{s}); ok {
				p.SetIdentifier(record.IdentifierORCID, c.ORCID)
				suggested = c.Affiliation
			}
		}
	} else {
		s.printf("\nCould not split the name into given and family parts for the ORCID lookup.\n")
	}

	if p.ORCID() == "" {
		orcid := s.inputValidated("ORCID iD (optional, format: 0000-0000-0000-0000)", false, "", record.ValidateORCID)
		p.SetIdentifier(record.IdentifierORCID, orcid)
	} else {
		s.printf("Using ORCID iD: %s\n", p.ORCID())
	}

	p.Affiliation = s.affiliationEntry(affPrompt, suggested)
	return p
}

// affiliationEntry collects an affiliation, offering a lookup-suggested name
// first and then the ROR resolution flow.
func (s *Session) affiliationEntry(promptText, suggested string) record.Affiliation {
	var name string
	if suggested != "" {
		s.printf("\nFound affiliation from ORCID: %s\n", suggested)
		if s.yesNo("Use this affiliation?") {
			name = suggested
		}
	}
	if name == "" {
		name = s.input(promptText, false, "")
	}
	if name == "" {
		return record.Affiliation{}
	}

	aff := record.Affiliation{Name: name}
	s.printf("\nThe ROR ID is a unique identifier for an institution.\n")
	if s.yesNo("Look up the ROR ID for this affiliation?") {
		aff.RORID = s.rorFlow(name)
	}
	return aff
}

// rorFlow searches ROR for an affiliation name and resolves the candidates.
func (s *Session) rorFlow(name string) string {
	s.printf("\nSearching for ROR ID for: %s\n", name)
	candidates := s.ror.Search(name)
	if len(candidates) == 0 {
		s.printf("\nNo ROR entries found for %q\n", name)
		return ""
	}
	if o, ok := lookup.Disambiguate(candidates, organizationSelector{s}); ok {
		return o.ID
	}
	return ""
}

func (s *Session) basicInfo() {
	s.banner("BASIC INFORMATION")

	author := s.personEntry("\nPrimary author name", "Primary author affiliation", true)
	if email := s.input("\nAuthor/contact email", true, ""); email != "" {
		author.SetIdentifier(record.IdentifierEmail, email)
	}
	s.rec.SetAuthor(author)

	s.rec.Title = s.input("\nTitle of data", true, "")
	s.rec.Description = s.input("\nDescription/abstract of the data", true, "")
	s.rec.PublicationYear = s.inputValidated("\nData publication year (YYYY)", false, s.defaultYear(), record.ValidateYear)
	s.rec.ResourceType = s.input("\nResource type (e.g. Dataset, Software)", false, s.cfg.Defaults.ResourceType)

	s.reviewFields("BASIC INFORMATION", s.basicSummary, []record.Field{
		record.FieldAuthorName,
		record.FieldAuthorORCID,
		record.FieldAuthorEmail,
		record.FieldAuthorAffiliation,
		record.FieldAuthorAffiliationID,
		record.FieldTitle,
		record.FieldDescription,
		record.FieldPublicationYear,
		record.FieldResourceType,
	})
}

func (s *Session) basicSummary() {
	s.summaryLine("Author", s.rec.Author.Name)
	s.summaryLine("ORCID iD", s.rec.Author.ORCID())
	s.summaryLine("Email", s.rec.Author.Email())
	s.summaryLine("Affiliation", s.rec.Author.Affiliation.Name)
	s.summaryLine("Affiliation ROR ID", s.rec.Author.Affiliation.RORID)
	s.summaryLine("Title", s.rec.Title)
	s.summaryLine("Description", s.rec.Description)
	s.summaryLine("Publication year", s.rec.PublicationYear)
	s.summaryLine("Resource type", s.rec.ResourceType)
}

// reviewFields shows a section summary and runs the correction loop over
// the given fields until the operator confirms the section.
func (s *Session) reviewFields(section string, summary func(), fields []record.Field) {
	for {
		s.printf("\n%s SUMMARY\n---------------------------------\n", section)
		summary()
		if s.yesNo("\nIs this information correct?") {
			return
		}
		f, ok := s.correctionMenu(fields)
		if !ok {
			return
		}
		s.reprompt(f)
	}
}

// reprompt collects a corrected value for one field and applies it through
// the record's correction entry point.
func (s *Session) reprompt(f record.Field) {
	var value string
	switch f {
	case record.FieldTitle:
		value = s.input("Title of data", true, "")
	case record.FieldDescription:
		value = s.input("Description/abstract of the data", true, "")
	case record.FieldPublicationYear:
		value = s.inputValidated("Data publication year (YYYY)", false, s.defaultYear(), record.ValidateYear)
	case record.FieldResourceType:
		value = s.input("Resource type (e.g. Dataset, Software)", false, s.cfg.Defaults.ResourceType)
	case record.FieldAuthorName:
		value = s.input("Primary author name", true, "")
	case record.FieldAuthorORCID:
		value = s.inputValidated("Author's ORCID iD (optional, format: 0000-0000-0000-0000)", false, "", record.ValidateORCID)
	case record.FieldAuthorEmail:
		value = s.input("Author/contact email", true, "")
	case record.FieldAuthorAffiliation:
		aff := s.affiliationEntry("Primary author affiliation", "")
		s.applyCorrection(record.FieldAuthorAffiliation, aff.Name)
		s.applyCorrection(record.FieldAuthorAffiliationID, aff.RORID)
		return
	case record.FieldAuthorAffiliationID:
		value = s.rorFlow(s.rec.Author.Affiliation.Name)
	case record.FieldLicense:
		value = s.input("Data license (recommended: CC BY 4.0)", false, s.cfg.Defaults.License)
	case record.FieldDOI:
		value = s.inputValidated("Data DOI (optional)", false, "", record.ValidateDOI)
	case record.FieldVersion:
		value = s.input("Version of data (optional)", false, "")
	case record.FieldStartDate:
		value = s.inputValidated("Start date (YYYY-MM-DD)", false, "", record.ValidateDate)
	case record.FieldStartTime:
		value = s.inputValidated("Start time (hh:mm:ss), if needed", false, "", record.ValidateTime)
	case record.FieldEndDate:
		value = s.inputValidated("End date (YYYY-MM-DD)", false, "", record.ValidateDate)
	case record.FieldEndTime:
		value = s.inputValidated("End time (hh:mm:ss), if needed", false, "", record.ValidateTime)
	case record.FieldKeywords:
		value = s.input("Keywords (comma separated)", false, "")
	}
	s.applyCorrection(f, value)
}

func (s *Session) applyCorrection(f record.Field, value string) {
	if err := s.rec.Correct(f, value); err != nil {
		s.printf("Could not apply correction: %v\n", err)
	}
}

func (s *Session) summarizePerson(p record.Person) {
	s.printf("--------------------------------\n")
	s.summaryLine(" Name", p.Name)
	s.summaryLine(" ORCID iD", p.ORCID())
	s.summaryLine(" Affiliation", p.Affiliation.Name)
	s.summaryLine(" Affiliation ROR ID", p.Affiliation.RORID)
}

func (s *Session) contributors() {
	s.banner("COAUTHORS & CONTRIBUTORS")
	if !s.yesNo("\nAdd contributors/co-authors?") {
		return
	}

	for {
		s.printf("\nEntering contributor #%d:\n", len(s.rec.Contributors)+1)
		p := s.personEntry("\nContributor/co-author name", "Contributor affiliation", true)
		s.summarizePerson(p)
		if s.yesNo("Is this contributor information correct?") {
			s.rec.AddContributor(p)
			if !s.yesNo("Add another contributor?") {
				break
			}
		} else {
			if s.eof {
				return
			}
			s.printf("Let's re-enter the contributor information.\n")
		}
	}

	s.reviewContributors()
}

func (s *Session) reviewContributors() {
	for len(s.rec.Contributors) > 0 {
		s.printf("\nCONTRIBUTORS SUMMARY\n---------------------------------\n")
		for i, c := range s.rec.Contributors {
			s.printf("%d. %s (%s)\n", i+1, c.Name, orEmpty(c.Affiliation.Name))
		}
		if s.yesNo("\nIs this contributor information correct?") {
			return
		}

		n := len(s.rec.Contributors)
		s.printf("\nWhich contributor would you like to correct?\n")
		for i, c := range s.rec.Contributors {
			s.printf("%d. %s\n", i+1, c.Name)
		}
		s.printf("%d. Remove a contributor\n", n+1)
		s.printf("%d. Cancel corrections\n", n+2)

		choice := s.choose("Enter choice", n+2)
		switch {
		case choice < n:
			s.printf("\nCorrecting contributor: %s\n", s.rec.Contributors[choice].Name)
			p := s.personEntry("\nContributor/co-author name", "Contributor affiliation", true)
			if err := s.rec.UpdateContributor(choice, p); err != nil {
				s.printf("Could not update contributor: %v\n", err)
			}
		case choice == n:
			idx := s.choose("Remove which contributor", n)
			if s.eof {
				return
			}
			if err := s.rec.RemoveContributor(idx); err != nil {
				s.printf("Could not remove contributor: %v\n", err)
			}
		default:
			return
		}
	}
}

func (s *Session) locations() {
	s.banner("LOCATION INFO")

	for {
		var loc record.Location
		loc.Latitude = s.inputValidated("\nLatitude (decimal degrees)", false, "", func(raw string) record.Result {
			return record.ValidateCoordinate(raw, record.Latitude)
		})
		loc.Longitude = s.inputValidated("\nLongitude (decimal degrees)", false, "", func(raw string) record.Result {
			return record.ValidateCoordinate(raw, record.Longitude)
		})
		loc.Place = strings.ToUpper(s.input("\nName of lake", true, ""))

		s.printf("\nLOCATION SUMMARY\n---------------------------------\n")
		s.summaryLine("Place", loc.Place)
		s.summaryLine("Latitude", loc.Latitude)
		s.summaryLine("Longitude", loc.Longitude)

		if s.yesNo("\nIs the location information correct?") {
			s.rec.AddLocation(loc)
			if !s.yesNo("Add another location?") {
				return
			}
		} else {
			if s.eof {
				return
			}
			s.printf("Let's re-enter the location.\n")
		}
	}
}

func (s *Session) temporal() {
	s.banner("TIME PERIOD OF DATA COLLECTION")

	var t record.Temporal
	t.StartDate = s.inputValidated("\nStart date (YYYY-MM-DD)", false, "", record.ValidateDate)
	t.StartTime = s.inputValidated("\nStart time (hh:mm:ss), if needed", false, "", record.ValidateTime)
	t.EndDate = s.inputValidated("\nEnd date (YYYY-MM-DD)", false, "", record.ValidateDate)
	t.EndTime = s.inputValidated("\nEnd time (hh:mm:ss), if needed", false, "", record.ValidateTime)
	s.rec.SetTemporal(t)

	s.reviewFields("TEMPORAL COVERAGE", func() {
		s.summaryLine("Start date", s.rec.Temporal.StartDate)
		s.summaryLine("Start time", s.rec.Temporal.StartTime)
		s.summaryLine("End date", s.rec.Temporal.EndDate)
		s.summaryLine("End time", s.rec.Temporal.EndTime)
	}, []record.Field{
		record.FieldStartDate,
		record.FieldStartTime,
		record.FieldEndDate,
		record.FieldEndTime,
	})
}

func (s *Session) attribution() {
	s.banner("DATA INFO")

	var a record.Attribution
	a.License = s.input("\nData license (recommended: CC BY 4.0)", false, s.cfg.Defaults.License)
	a.DOI = s.inputValidated("\nData DOI (optional)", false, "", record.ValidateDOI)
	a.Version = s.input("\nVersion of data (optional)", false, "")
	s.rec.SetAttribution(a)

	s.reviewFields("DATA INFO", func() {
		s.summaryLine("License", s.rec.Attribution.License)
		s.summaryLine("DOI", s.rec.Attribution.DOI)
		s.summaryLine("Version", s.rec.Attribution.Version)
	}, []record.Field{
		record.FieldLicense,
		record.FieldDOI,
		record.FieldVersion,
	})
}

func (s *Session) keywords() {
	s.banner("KEYWORDS")

	for {
		s.rec.SetKeywords(s.input("\nKeywords (comma separated)", false, ""))

		s.printf("\nKEYWORDS SUMMARY\n---------------------------------\n")
		if len(s.rec.Keywords) == 0 {
			s.printf("Keywords: None\n")
		} else {
			s.printf("Keywords: %s\n", strings.Join(s.rec.Keywords, ", "))
		}

		if s.yesNo("\nIs this keyword information correct?") {
			return
		}
		if s.eof {
			return
		}
		s.printf("Let's re-enter the keywords.\n")
	}
}
