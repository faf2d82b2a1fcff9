// Package prompt implements the terminal question/answer session that
// assembles a metadata record. It is a thin presentation layer: every value
// passes through the record validators, and lookup results are resolved
// through the shared disambiguation policy before anything lands in the
// record.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/datalakes/metagen/config"
	"github.com/datalakes/metagen/lookup"
	"github.com/datalakes/metagen/record"
)

// maxRequiredAttempts bounds re-prompting for a required field so a
// non-interactive stdin cannot loop forever.
const maxRequiredAttempts = 6

// Session drives one interactive entry session.
type Session struct {
	in    *bufio.Reader
	out   io.Writer
	cfg   config.Config
	orcid *lookup.ORCIDClient
	ror   *lookup.RORClient
	rec   *record.Record
	eof   bool
}

// NewSession creates a session reading answers from in and writing prompts
// to out.
func NewSession(in io.Reader, out io.Writer, cfg config.Config) *Session {
	orcid := lookup.NewORCIDClient(cfg.ORCID.BaseURL, cfg.ORCID.Timeout())
	if cfg.ORCID.MaxResults > 0 {
		orcid.MaxResults = cfg.ORCID.MaxResults
	}

	ror := lookup.NewRORClient(cfg.ROR.BaseURL, cfg.ROR.Timeout())
	if cfg.ROR.MaxResults > 0 {
		ror.MaxResults = cfg.ROR.MaxResults
	}

	return &Session{
		in:    bufio.NewReader(in),
		out:   out,
		cfg:   cfg,
		orcid: orcid,
		ror:   ror,
		rec:   record.New(),
	}
}

// Run walks through every section and returns the assembled record.
func (s *Session) Run() *record.Record {
	s.welcome()
	s.basicInfo()
	s.contributors()
	s.locations()
	s.attribution()
	s.keywords()
	s.temporal()
	return s.rec
}

// Record returns the record being assembled.
func (s *Session) Record() *record.Record {
	return s.rec
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) banner(title string) {
	s.printf("---------------------------------\n %s\n---------------------------------\n", title)
}

func (s *Session) welcome() {
	s.printf("=========================================================\n")
	s.printf(" THIS TOOL HELPS CREATE METADATA FOR A DATALAKES UPLOAD\n")
	s.printf(" see the README for the information you will need\n")
	s.printf("=========================================================\n")
}

// readLine reads one trimmed answer. EOF reads as an empty answer and is
// remembered so prompt loops can stop re-asking a drained input.
func (s *Session) readLine() string {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(line)
}

// input prompts for a single value. An empty answer takes the default when
// one is given; a required field re-prompts up to maxRequiredAttempts and
// then gives up with an empty value.
func (s *Session) input(prompt string, required bool, def string) string {
	for attempts := 0; attempts < maxRequiredAttempts; attempts++ {
		if def != "" {
			s.printf("%s (default: %s): ", prompt, def)
		} else {
			s.printf("%s: ", prompt)
		}

		answer := s.readLine()
		if answer != "" {
			return answer
		}
		if def != "" {
			return def
		}
		if !required {
			return ""
		}
		if attempts < maxRequiredAttempts-1 {
			s.printf("This field is required. Please enter a value.\n")
		}
	}
	s.printf("Max attempts reached. Skipping this field.\n")
	return ""
}

// yesNo prompts until the answer is a recognizable yes or no.
func (s *Session) yesNo(prompt string) bool {
	for {
		s.printf("%s (y/n): ", prompt)
		switch strings.ToLower(s.readLine()) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		case "":
			// EOF: answer no rather than spin.
			return false
		}
		s.printf("Please enter 'y' or 'n'\n")
	}
}

// inputValidated prompts for a value and runs it through a field validator.
// A rejected value can be re-entered or skipped (left blank); a warning is
// surfaced but the value is kept.
func (s *Session) inputValidated(prompt string, required bool, def string, validate func(string) record.Result) string {
	for {
		raw := s.input(prompt, required, def)
		res := validate(raw)
		if res.OK {
			if res.Warning != "" {
				s.printf("Warning: %s\n", res.Warning)
			}
			return res.Value
		}

		s.printf("Warning: %s\n", res.Message)
		if !s.yesNo("Re-enter the value?") {
			return ""
		}
	}
}

// choose prompts for a selection between 1 and max, returning the
// zero-based index. Drained input resolves to the last option, which every
// menu reserves for its cancel/"none of these" escape.
func (s *Session) choose(prompt string, max int) int {
	for {
		s.printf("%s (1-%d): ", prompt, max)
		answer := s.readLine()
		if s.eof {
			return max - 1
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= max {
			return n - 1
		}
		s.printf("Please enter a number between 1 and %d\n", max)
	}
}

// correctionMenu offers the given fields for correction. It returns the
// chosen field, or ok=false when corrections are cancelled.
func (s *Session) correctionMenu(fields []record.Field) (record.Field, bool) {
	s.printf("\nWhich field would you like to correct?\n")
	for i, f := range fields {
		s.printf("%d. %s\n", i+1, f)
	}
	s.printf("%d. Cancel corrections\n", len(fields)+1)

	choice := s.choose("Enter", len(fields)+1)
	if choice == len(fields) {
		return 0, false
	}
	return fields[choice], true
}

func (s *Session) defaultYear() string {
	return strconv.Itoa(time.Now().Year())
}
