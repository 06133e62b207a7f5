package locale

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/status"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pref string
		want language.Tag
	}{
		{"", language.Russian},
		{"ru", language.Russian},
		{"ru_RU.UTF-8", language.Russian},
		{"en", language.English},
		{"en_US.UTF-8", language.English},
		{"en-GB", language.English},
		{"de-DE", language.Russian},
		{"C", language.Russian},
	}
	for _, tt := range tests {
		t.Run(tt.pref, func(t *testing.T) {
			if got := Match(tt.pref).Tag; got != tt.want {
				t.Fatalf("Match(%q)=%v want %v", tt.pref, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	if !Supported("en") || !Supported("ru") {
		t.Fatalf("en and ru must be supported")
	}
	if Supported("de") {
		t.Fatalf("de is not supported")
	}
	if Supported("not a tag!") {
		t.Fatalf("garbage is not supported")
	}
}

func TestRussianLabels(t *testing.T) {
	l := Default()
	if got := l.Title(calendar.YearMonth{Year: 2024, Month: time.March}); got != "Март 2024" {
		t.Fatalf("Title=%q", got)
	}
	if got := l.FormatLong(calendar.NewDay(2024, time.March, 15)); got != "15 марта 2024" {
		t.Fatalf("FormatLong=%q", got)
	}
	if got := l.WeekdayLong(time.Friday); got != "Пятница" {
		t.Fatalf("WeekdayLong=%q", got)
	}
	headers := l.WeekdayHeaders()
	if len(headers) != 7 || headers[0] != "Пн" || headers[6] != "Вс" {
		t.Fatalf("headers should run Monday to Sunday, got %v", headers)
	}
	if l.StatusLabel(status.Busy) != "Занят" || l.StatusLabel(status.Free) != "Свободен" {
		t.Fatalf("unexpected status labels")
	}
}

func TestEnglishLabels(t *testing.T) {
	l := Match("en")
	if got := l.Title(calendar.YearMonth{Year: 2023, Month: 13}); got != "January 2024" {
		t.Fatalf("Title=%q", got)
	}
	if got := l.FormatLong(calendar.NewDay(2024, time.March, 15)); got != "15 March 2024" {
		t.Fatalf("FormatLong=%q", got)
	}
	if got := l.Hint(status.Busy); got == l.Hint(status.Free) {
		t.Fatalf("hints must differ per status")
	}
}

func TestLabelsFromParallelTests(t *testing.T) {
	for _, name := range []string{"ru", "en", "ru-RU", "en-GB"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			l := Match(name)
			for i := 0; i < 100; i++ {
				m := time.Month(i%12 + 1)
				if l.MonthName(m) == "" || l.WeekdayLong(time.Weekday(i%7)) == "" {
					t.Fatalf("empty label for %v", m)
				}
			}
		})
	}
}
