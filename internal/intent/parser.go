package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// reduceFactor is the fixed scale applied by "reduce <subject>" requests;
// the grammar does not let callers pick their own factor.
const reduceFactor = 0.5

var (
	reLightenVerbed = regexp.MustCompile(`(?i)\b(?:make|set)\s+([a-z]+)\s+(?:lighter|light|easier|easy|shorter|short)\b`)
	reLightenDirect = regexp.MustCompile(`(?i)\b(?:lighten|ease)\s+(?:up\s+)?([a-z]+)\b`)
	reMove          = regexp.MustCompile(`(?i)\bmove\s+(.+?)\s+to\s+(.+)$`)
	reReduce        = regexp.MustCompile(`(?i)\b(?:reduce|less|cut|lower)\s+(.+)$`)
	reCap           = regexp.MustCompile(`(?i)\bcap\s+(.+?)\s+(?:at|to)\s+(\d+)\s*(?:minutes|minute|mins|min)?\b`)

	reDayListSplit = regexp.MustCompile(`(?i)[/,&]|\band\b`)
)

// Parser pattern-matches free text against the four fixed adjustment
// grammars. Day and subject vocabulary come from alias tables that config
// may extend.
type Parser struct {
	dayAliases     map[string]domain.Weekday
	subjectAliases map[string]domain.SubjectBucket
}

// NewParser returns a parser loaded with the stock alias tables.
func NewParser() *Parser {
	p := &Parser{
		dayAliases:     make(map[string]domain.Weekday),
		subjectAliases: make(map[string]domain.SubjectBucket),
	}
	for alias, day := range defaultDayAliases {
		p.dayAliases[alias] = day
	}
	for alias, subject := range defaultSubjectAliases {
		p.subjectAliases[alias] = subject
	}
	return p
}

// AddDayAlias registers an extra spelling for a weekday.
func (p *Parser) AddDayAlias(alias string, day domain.Weekday) {
	p.dayAliases[normalizeToken(alias)] = day
}

// AddSubjectAlias registers an extra spelling for a subject bucket.
func (p *Parser) AddSubjectAlias(alias string, subject domain.SubjectBucket) {
	p.subjectAliases[normalizeToken(alias)] = subject
}

// Parse maps free text onto one structured adjustment, or nil when no
// pattern matches. Patterns are tried in fixed order; the first structural
// match wins, and a match whose day or subject fails alias resolution
// yields nil rather than falling through. Callers treat nil as
// "unparseable", not as an error.
func (p *Parser) Parse(text string) domain.Adjustment {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if m := reLightenVerbed.FindStringSubmatch(text); m != nil {
		return p.lightenFrom(m[1])
	}
	if m := reLightenDirect.FindStringSubmatch(text); m != nil {
		return p.lightenFrom(m[1])
	}
	if m := reMove.FindStringSubmatch(text); m != nil {
		return p.moveFrom(m[1], m[2])
	}
	if m := reReduce.FindStringSubmatch(text); m != nil {
		subject, ok := p.resolveSubject(m[1])
		if !ok {
			return nil
		}
		return domain.ReduceSubject{Subject: subject, Factor: reduceFactor}
	}
	if m := reCap.FindStringSubmatch(text); m != nil {
		subject, ok := p.resolveSubject(m[1])
		if !ok {
			return nil
		}
		minutes, err := strconv.Atoi(m[2])
		if err != nil {
			return nil
		}
		return domain.CapSubjectTime{Subject: subject, MaxMinutesPerDay: minutes}
	}
	return nil
}

func (p *Parser) lightenFrom(dayToken string) domain.Adjustment {
	day, ok := p.resolveDay(dayToken)
	if !ok {
		return nil
	}
	return domain.LightenDay{Day: day}
}

func (p *Parser) moveFrom(subjectToken, dayList string) domain.Adjustment {
	subject, ok := p.resolveSubject(subjectToken)
	if !ok {
		return nil
	}
	var days []domain.Weekday
	for _, token := range reDayListSplit.Split(dayList, -1) {
		if day, ok := p.resolveDay(token); ok {
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return nil
	}
	return domain.MoveSubject{Subject: subject, ToDays: days}
}

func (p *Parser) resolveDay(token string) (domain.Weekday, bool) {
	day, ok := p.dayAliases[normalizeToken(token)]
	return day, ok
}

func (p *Parser) resolveSubject(token string) (domain.SubjectBucket, bool) {
	subject, ok := p.subjectAliases[normalizeToken(token)]
	return subject, ok
}

func normalizeToken(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.Trim(token, ".,!?")
	return strings.Join(strings.Fields(token), " ")
}

var defaultDayAliases = map[string]domain.Weekday{
	"mon":       domain.Monday,
	"monday":    domain.Monday,
	"tue":       domain.Tuesday,
	"tues":      domain.Tuesday,
	"tuesday":   domain.Tuesday,
	"wed":       domain.Wednesday,
	"weds":      domain.Wednesday,
	"wednesday": domain.Wednesday,
	"thu":       domain.Thursday,
	"thur":      domain.Thursday,
	"thurs":     domain.Thursday,
	"thursday":  domain.Thursday,
	"fri":       domain.Friday,
	"friday":    domain.Friday,
}

var defaultSubjectAliases = map[string]domain.SubjectBucket{
	"math":           domain.SubjectMath,
	"maths":          domain.SubjectMath,
	"arithmetic":     domain.SubjectMath,
	"la":             domain.SubjectLanguageArts,
	"ela":            domain.SubjectLanguageArts,
	"writing":        domain.SubjectLanguageArts,
	"english":        domain.SubjectLanguageArts,
	"language arts":  domain.SubjectLanguageArts,
	"handwriting":    domain.SubjectLanguageArts,
	"reading":        domain.SubjectReading,
	"books":          domain.SubjectReading,
	"read aloud":     domain.SubjectReading,
	"science":        domain.SubjectScience,
	"history":        domain.SubjectSocialStudies,
	"ss":             domain.SubjectSocialStudies,
	"social studies": domain.SubjectSocialStudies,
}
