// Package intake holds the conversation-side components of a consultation:
// metric extraction, bottleneck identification and the stage machine.
// Everything here is pure over the input text; persistence and orchestration
// live in the consulting usecase.
package intake

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/vfg2006/business-doctor-api/internal/domain"
)

// extractionRule binds a pattern to the metrics field it populates. The rules
// form a declarative table so new extractions are added as data, not branches.
type extractionRule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(match []string, update *domain.MetricsUpdate)
}

// Closed industry set. Unrecognized industries fall back to the default
// benchmark row downstream, so the extractor only maps known synonyms.
var industryKeywords = []struct {
	industry string
	pattern  *regexp.Regexp
}{
	{"legal", regexp.MustCompile(`(?i)\b(?:law firm|legal|lawyers?|attorneys?)\b`)},
	{"accounting", regexp.MustCompile(`(?i)\b(?:accounting|accountants?|bookkeep\w*|cpa)\b`)},
	{"consulting", regexp.MustCompile(`(?i)\b(?:consulting|consultancy|consultants?)\b`)},
	{"msp", regexp.MustCompile(`(?i)\b(?:msp|managed services?|it services?|it support)\b`)},
}

var technologyKeywords = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"excel", regexp.MustCompile(`(?i)\bexcel\b`)},
	{"spreadsheets", regexp.MustCompile(`(?i)\bspreadsheets?\b`)},
	{"quickbooks", regexp.MustCompile(`(?i)\bquick\s?books\b`)},
	{"salesforce", regexp.MustCompile(`(?i)\bsalesforce\b`)},
	{"outlook", regexp.MustCompile(`(?i)\boutlook\b`)},
	{"sharepoint", regexp.MustCompile(`(?i)\bshare\s?point\b`)},
	{"slack", regexp.MustCompile(`(?i)\bslack\b`)},
	{"hubspot", regexp.MustCompile(`(?i)\bhubspot\b`)},
	{"xero", regexp.MustCompile(`(?i)\bxero\b`)},
}

var challengeIndicator = regexp.MustCompile(
	`(?i)\b(?:struggl\w*|problems?|challeng\w*|frustrat\w*|pain(?:ful)?|bottlenecks?|overwhelm\w*)\b`)

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// Extractor finds company facts in free transcript text.
type Extractor struct {
	rules []extractionRule
}

func NewExtractor() *Extractor {
	return &Extractor{
		rules: []extractionRule{
			{
				name: "employee_count",
				pattern: regexp.MustCompile(
					`(?i)\b(\d{1,6})\s*(?:employees|people|staff|headcount|team members|folks)\b`),
				apply: func(match []string, update *domain.MetricsUpdate) {
					count, err := strconv.Atoi(match[1])
					if err != nil || count <= 0 {
						return
					}
					update.EmployeeCount = &count
				},
			},
			{
				// "$8.5 million in revenue", "$500k a year"
				name: "revenue_amount_first",
				pattern: regexp.MustCompile(
					`(?i)\$\s?([\d,]+(?:\.\d+)?)\s*(million|mil|m|thousand|k)?\b[^.!?]{0,30}\b(?:revenue|turnover|a year|per year|annually)`),
				apply: applyRevenue,
			},
			{
				// "revenue of about $8.5m", "our turnover is $500,000"
				name: "revenue_keyword_first",
				pattern: regexp.MustCompile(
					`(?i)\b(?:revenue|turnover)\b[^.!?$]{0,30}\$\s?([\d,]+(?:\.\d+)?)\s*(million|mil|m|thousand|k)?\b`),
				apply: applyRevenue,
			},
			{
				name: "company_name",
				pattern: regexp.MustCompile(
					`(?:(?:[Oo]ur company(?: is)?(?: called)?|[Ww]e(?:'re| are) called|[Cc]ompany name is|[Ii] run|[Ii] own)\s+)([A-Z][A-Za-z0-9&'.\- ]{1,60}?)(?:[,.!?]|$)`),
				apply: func(match []string, update *domain.MetricsUpdate) {
					name := strings.TrimSpace(match[1])
					if name != "" {
						update.CompanyName = &name
					}
				},
			},
		},
	}
}

func applyRevenue(match []string, update *domain.MetricsUpdate) {
	raw := strings.ReplaceAll(match[1], ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		return
	}

	switch strings.ToLower(match[2]) {
	case "million", "mil", "m":
		amount *= 1_000_000
	case "thousand", "k":
		amount *= 1_000
	}

	update.AnnualRevenue = &amount
}

// Extract returns the partial metrics update detected in the text. No match is
// not an error: the zero update is the default result. Malformed input is
// sanitized and, when nothing survives, treated as empty.
func (e *Extractor) Extract(text string) domain.MetricsUpdate {
	update := domain.MetricsUpdate{}

	text = SanitizeInput(text)
	if text == "" {
		return update
	}

	for _, rule := range e.rules {
		if match := rule.pattern.FindStringSubmatch(text); match != nil {
			rule.apply(match, &update)
		}
	}

	for _, entry := range industryKeywords {
		if entry.pattern.MatchString(text) {
			industry := entry.industry
			update.Industry = &industry
			break
		}
	}

	for _, entry := range technologyKeywords {
		if entry.pattern.MatchString(text) {
			update.Technologies = append(update.Technologies, entry.label)
		}
	}

	for _, sentence := range sentenceSplitter.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 10 && challengeIndicator.MatchString(sentence) {
			update.Challenges = append(update.Challenges, sentence)
		}
	}

	return update
}

// SanitizeInput strips invalid UTF-8 and control characters. A payload that is
// not usable text comes back empty and the turn is processed as such.
func SanitizeInput(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(text)
}
