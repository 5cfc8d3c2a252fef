package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Reporter receives non-fatal data-quality findings from the parser.
type Reporter interface {
	ReportUnparseable(raw string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(raw string)

func (f ReporterFunc) ReportUnparseable(raw string) { f(raw) }

type nopReporter struct{}

func (nopReporter) ReportUnparseable(string) {}

// Option configures a Parser.
type Option func(*Parser)

// WithReporter sets where unparseable inputs are reported.
func WithReporter(r Reporter) Option {
	return func(p *Parser) {
		if r != nil {
			p.reporter = r
		}
	}
}

// WithClock overrides the clock used for the "now" fallback.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// Parser converts event date fields to NormalizedDate values in a fixed location.
type Parser struct {
	location *time.Location
	reporter Reporter
	now      func() time.Time
}

// NewParser creates a parser for the given IANA timezone, e.g. "America/Recife".
// An empty timezone means the process local time.
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc := time.Local
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	return NewParserInLocation(loc, opts...), nil
}

// NewParserInLocation creates a parser anchored to loc.
func NewParserInLocation(loc *time.Location, opts ...Option) *Parser {
	if loc == nil {
		loc = time.Local
	}
	p := &Parser{
		location: loc,
		reporter: nopReporter{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the wall-clock location dates are interpreted in.
func (p *Parser) Location() *time.Location { return p.location }

// Now returns the current time in the parser location.
func (p *Parser) Now() time.Time { return p.now().In(p.location) }

// ParseString is shorthand for Parse(FromString(s)).
func (p *Parser) ParseString(s string) NormalizedDate {
	return p.Parse(FromString(s))
}

// Parse never fails. Formats are tried in order and the first match wins:
// native time, ISO 8601, "15 de Outubro, 2025" / "7 de novembro de 2005",
// DD/MM/YYYY or DD-MM-YYYY, and an embedded YYYY-MM-DD. Anything else is
// reported and resolves to now.
func (p *Parser) Parse(in Input) NormalizedDate {
	n, _ := p.ParseChecked(in)
	return n
}

// ParseChecked is Parse that also tells whether a format matched.
// ok is false when the result is the "now" fallback.
func (p *Parser) ParseChecked(in Input) (n NormalizedDate, ok bool) {
	if in.IsTime() {
		return NormalizedDate{Time: in.t, HasTime: true}, true
	}

	raw := strings.TrimSpace(in.raw)
	steps := []func(string) (NormalizedDate, bool){
		p.parseISO,
		p.parseLongForm,
		p.parseNumeric,
		p.parseEmbeddedISODate,
	}
	for _, step := range steps {
		if n, ok := step(raw); ok {
			return n, true
		}
	}

	p.reporter.ReportUnparseable(in.raw)
	return NormalizedDate{Time: p.Now(), HasTime: true}, false
}

var isoLayouts = []struct {
	layout  string
	hasTime bool
}{
	{time.RFC3339, true},
	{"2006-01-02 15:04:05Z07:00", true},
	{"2006-01-02T15:04:05Z0700", true},
	{"2006-01-02 15:04:05Z0700", true},
	{"2006-01-02T15:04:05Z07", true},
	{"2006-01-02 15:04:05Z07", true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04", true},
	{DayLayout, false},
}

// parseISO accepts ISO 8601 timestamps with or without offset and plain dates.
// Values with an offset are converted to the parser location.
func (p *Parser) parseISO(s string) (NormalizedDate, bool) {
	for _, l := range isoLayouts {
		t, err := time.ParseInLocation(l.layout, s, p.location)
		if err != nil {
			continue
		}
		return NormalizedDate{Time: t.In(p.location), HasTime: l.hasTime}, true
	}
	return NormalizedDate{}, false
}

// ptMonths is matched against the lowercased month word.
var ptMonths = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// MonthFromName resolves a Portuguese month name in any letter case.
func MonthFromName(name string) (time.Month, bool) {
	m, ok := ptMonths[strings.ToLower(trimComma(name))]
	return m, ok
}

// parseLongForm handles "15 de Outubro, 2025" (4 words) and
// "7 de novembro de 2005" (5 words). The word count picks the branch.
func (p *Parser) parseLongForm(s string) (NormalizedDate, bool) {
	words := strings.Fields(s)

	var dayStr, monthStr, yearStr string
	switch len(words) {
	case 4:
		if !isConnector(words[1]) {
			return NormalizedDate{}, false
		}
		dayStr, monthStr, yearStr = words[0], words[2], words[3]
	case 5:
		if !isConnector(words[1]) || !isConnector(words[3]) {
			return NormalizedDate{}, false
		}
		dayStr, monthStr, yearStr = words[0], words[2], words[4]
	default:
		return NormalizedDate{}, false
	}

	day, err := strconv.Atoi(trimComma(dayStr))
	if err != nil {
		return NormalizedDate{}, false
	}
	month, ok := MonthFromName(monthStr)
	if !ok {
		return NormalizedDate{}, false
	}
	year, err := strconv.Atoi(trimComma(yearStr))
	if err != nil {
		return NormalizedDate{}, false
	}
	return p.dateOnly(year, month, day)
}

var numericDateRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)

// parseNumeric handles DD/MM/YYYY and DD-MM-YYYY anywhere in the string.
func (p *Parser) parseNumeric(s string) (NormalizedDate, bool) {
	m := numericDateRe.FindStringSubmatch(s)
	if m == nil {
		return NormalizedDate{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return p.dateOnly(year, time.Month(month), day)
}

var embeddedISODateRe = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)

// parseEmbeddedISODate finds a YYYY-MM-DD date inside free text.
func (p *Parser) parseEmbeddedISODate(s string) (NormalizedDate, bool) {
	m := embeddedISODateRe.FindStringSubmatch(s)
	if m == nil {
		return NormalizedDate{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return p.dateOnly(year, time.Month(month), day)
}

// dateOnly builds a date without time of day, rejecting impossible dates.
func (p *Parser) dateOnly(year int, month time.Month, day int) (NormalizedDate, bool) {
	if !validDate(year, month, day) {
		return NormalizedDate{}, false
	}
	return NormalizedDate{Time: time.Date(year, month, day, 0, 0, 0, 0, p.location)}, true
}

func validDate(year int, month time.Month, day int) bool {
	if year <= 0 || month < time.January || month > time.December || day < 1 {
		return false
	}
	return day <= daysIn(year, month)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isConnector(w string) bool {
	return strings.EqualFold(w, "de")
}

func trimComma(s string) string {
	return strings.TrimRight(s, ",")
}
