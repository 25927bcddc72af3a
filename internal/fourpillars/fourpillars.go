// Package fourpillars computes a simplified Four Pillars (四柱推命) chart
// from a birthdate by modular arithmetic over the sexagenary cycle.
package fourpillars

import (
	"fmt"
	"github.com/miyakoshi/septade/internal/errors"
	"time"
)

// Unknown is the sentinel shown when the hour pillar cannot be resolved
// because no birth time was supplied. The result page renders it verbatim.
const Unknown = "不明"

// ErrInvalidDate is returned for birthdates or birth times that do not parse.
// The calculator never silently falls back to "today" or the epoch.
var ErrInvalidDate = errors.NewSentinel("invalid date")

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
	// epochYear anchors the sexagenary cycle; 1924 was the start of a
	// 60-year cycle (甲子).
	epochYear = 1924
	// dayOffset aligns the day count from the epoch with the traditional
	// day-pillar sequence.
	dayOffset = 10
	cycle     = 60
)

var stems = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// hiddenStems associates each branch with its hidden stem reading. Pure
// table lookup.
var hiddenStems = map[string]string{
	"子": "癸",
	"丑": "己癸辛",
	"寅": "甲丙戊",
	"卯": "乙",
	"辰": "戊乙癸",
	"巳": "丙庚戊",
	"午": "丁己",
	"未": "己丁乙",
	"申": "庚壬戊",
	"酉": "辛",
	"戌": "戊辛丁",
	"亥": "壬甲",
}

// Pillar is one stem/branch pair of the chart.
type Pillar struct {
	Stem        string `json:"stem"`
	Branch      string `json:"branch"`
	HiddenStems string `json:"hiddenStems"`
}

// Chart holds the four pillars of a birthdate. The hour pillar carries the
// Unknown sentinel in all fields when no birth time was supplied.
type Chart struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

func pillarAt(stemIndex, branchIndex int) Pillar {
	branch := branches[branchIndex]
	return Pillar{
		Stem:        stems[stemIndex],
		Branch:      branch,
		HiddenStems: hiddenStems[branch],
	}
}

func yearPillar(year int) Pillar {
	offset := mod(year-epochYear, cycle)
	return pillarAt(offset%len(stems), offset%len(branches))
}

// monthPillar derives the month pillar from the year stem and the calendar
// month. This is a simplified approximation of the traditional rule: a real
// month pillar changes on solar-term boundary dates, not on the 1st of the
// calendar month. Downstream consumers expect the simplified output, so the
// approximation is preserved on purpose.
func monthPillar(year int, month time.Month) Pillar {
	yearStemIndex := mod(year-epochYear, cycle) % len(stems)
	monthBase := (yearStemIndex % 5) * 2
	stemIndex := mod(monthBase+int(month)-1, len(stems))
	branchIndex := mod(int(month)+1, len(branches))
	return pillarAt(stemIndex, branchIndex)
}

func dayPillar(date time.Time) Pillar {
	epoch := time.Date(epochYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(date.Sub(epoch).Hours() / 24)
	offset := mod(days+dayOffset, cycle)
	return pillarAt(offset%len(stems), offset%len(branches))
}

func hourPillar(day Pillar, hour int) Pillar {
	dayStemIndex := 0
	for i, stem := range stems {
		if stem == day.Stem {
			dayStemIndex = i
			break
		}
	}
	branchIndex := ((hour + 1) / 2) % len(branches)
	stemIndex := mod((dayStemIndex%5)*2+branchIndex, len(stems))
	return pillarAt(stemIndex, branchIndex)
}

// Calculate builds the chart for a birthdate in "YYYY-MM-DD" form and an
// optional birth time in "HH:MM" form. An empty birthTime leaves the hour
// pillar unknown.
func Calculate(birthdate string, birthTime string) (Chart, error) {
	date, err := time.ParseInLocation(dateLayout, birthdate, time.UTC)
	if err != nil {
		return Chart{}, errors.Wrap(ErrInvalidDate, fmt.Sprintf("parse birthdate %q", birthdate))
	}

	day := dayPillar(date)

	hour := Pillar{Stem: Unknown, Branch: Unknown, HiddenStems: Unknown}
	if birthTime != "" {
		clock, err := time.Parse(timeLayout, birthTime)
		if err != nil {
			return Chart{}, errors.Wrap(ErrInvalidDate, fmt.Sprintf("parse birth time %q", birthTime))
		}
		hour = hourPillar(day, clock.Hour())
	}

	return Chart{
		Year:  yearPillar(date.Year()),
		Month: monthPillar(date.Year(), date.Month()),
		Day:   day,
		Hour:  hour,
	}, nil
}

// mod is the Euclidean remainder, always in [0, m).
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
