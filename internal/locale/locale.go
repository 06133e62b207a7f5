package locale

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/status"
)

// Locale holds the user-facing labels of one language.
type Locale struct {
	Tag language.Tag

	months         [12]string // nominative, lower case
	monthsGenitive [12]string // used inside long dates
	weekdaysShort  [7]string  // Monday first
	weekdaysLong   [7]string  // time.Weekday order, lower case
	statuses       [2]string  // indexed by status.Status
	hints          [2]string
	heading        string
	back           string
	today          string
}

var russian = &Locale{
	Tag: language.Russian,
	months: [12]string{
		"январь", "февраль", "март", "апрель", "май", "июнь",
		"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
	},
	monthsGenitive: [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	},
	weekdaysShort: [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
	weekdaysLong: [7]string{
		"воскресенье", "понедельник", "вторник", "среда",
		"четверг", "пятница", "суббота",
	},
	statuses: [2]string{"Свободен", "Занят"},
	hints: [2]string{
		`В этот день вы свободны. Нажмите "Занят" чтобы изменить статус.`,
		`В этот день вы заняты. Нажмите "Свободен" чтобы изменить статус.`,
	},
	heading: "Статус дня",
	back:    "Назад к календарю",
	today:   "сегодня",
}

var english = &Locale{
	Tag: language.English,
	months: [12]string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	},
	weekdaysShort: [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	weekdaysLong: [7]string{
		"sunday", "monday", "tuesday", "wednesday",
		"thursday", "friday", "saturday",
	},
	statuses: [2]string{"Free", "Busy"},
	hints: [2]string{
		`You are free on this day. Press "Busy" to change the status.`,
		`You are busy on this day. Press "Free" to change the status.`,
	},
	heading: "Day status",
	back:    "Back to calendar",
	today:   "today",
}

func init() {
	for i, m := range english.months {
		english.monthsGenitive[i] = english.title(m)
	}
}

var matcher = language.NewMatcher([]language.Tag{language.Russian, language.English})

// Default is the Russian locale.
func Default() *Locale {
	return russian
}

// Match picks the supported locale closest to pref (a BCP 47 tag, an
// Accept-Language list or a POSIX locale such as en_US.UTF-8). Unknown or
// empty preferences fall back to Russian.
func Match(pref string) *Locale {
	pref = strings.TrimSpace(pref)
	if i := strings.IndexAny(pref, ".@"); i >= 0 {
		pref = pref[:i]
	}
	if pref == "" || pref == "C" || pref == "POSIX" {
		return russian
	}
	tag, _ := language.MatchStrings(matcher, pref)
	if base, _ := tag.Base(); base.String() == "en" {
		return english
	}
	return russian
}

// FromEnv matches the locale named by LC_ALL, LC_MESSAGES or LANG.
func FromEnv() *Locale {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return Match(v)
		}
	}
	return russian
}

// Supported reports whether name selects a locale explicitly.
func Supported(name string) bool {
	tag, err := language.Parse(name)
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(tag)
	return conf >= language.High
}

// MonthName is the capitalized nominative month name ("Март").
func (l *Locale) MonthName(m time.Month) string {
	return l.title(l.months[monthIndex(m)])
}

// MonthGenitive is the month form used after a day number ("марта").
func (l *Locale) MonthGenitive(m time.Month) string {
	return l.monthsGenitive[monthIndex(m)]
}

// Title is the month grid heading ("Март 2024").
func (l *Locale) Title(ym calendar.YearMonth) string {
	ym = ym.Normalize()
	return fmt.Sprintf("%s %d", l.MonthName(ym.Month), ym.Year)
}

// WeekdayHeaders lists short weekday names from Monday to Sunday.
func (l *Locale) WeekdayHeaders() []string {
	return append([]string(nil), l.weekdaysShort[:]...)
}

// WeekdayLong is the capitalized full weekday name.
func (l *Locale) WeekdayLong(wd time.Weekday) string {
	return l.title(l.weekdaysLong[wd%7])
}

// title capitalizes s. A cases.Caser keeps state, so each call gets its own.
func (l *Locale) title(s string) string {
	return cases.Title(l.Tag).String(s)
}

// FormatLong renders a day as "15 марта 2024".
func (l *Locale) FormatLong(d calendar.Day) string {
	return fmt.Sprintf("%d %s %d", d.Day, l.MonthGenitive(d.Month), d.Year)
}

// StatusLabel names a status ("Занят").
func (l *Locale) StatusLabel(s status.Status) string {
	if s == status.Busy {
		return l.statuses[1]
	}
	return l.statuses[0]
}

// Hint explains the current status of the open day.
func (l *Locale) Hint(s status.Status) string {
	if s == status.Busy {
		return l.hints[1]
	}
	return l.hints[0]
}

// Heading titles the status section of the day view.
func (l *Locale) Heading() string {
	return l.heading
}

// Back labels the way back to the month grid.
func (l *Locale) Back() string {
	return l.back
}

// TodayLabel names the current date in legends.
func (l *Locale) TodayLabel() string {
	return l.today
}

func monthIndex(m time.Month) int {
	return int(calendar.YearMonth{Month: m}.Normalize().Month) - 1
}
