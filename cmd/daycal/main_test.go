package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/render"
	"github.com/lululau/daycal/internal/status"
	"github.com/lululau/daycal/internal/tui"
)

func TestParseRequest(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	tests := []struct {
		name     string
		showYear bool
		args     []string
		want     request
		wantErr  bool
	}{
		{"no args", false, nil, request{Month: calendar.YearMonth{Year: 2024, Month: time.March}}, false},
		{"year flag", true, nil, request{Month: calendar.YearMonth{Year: 2024, Month: time.January}, WholeYear: true}, false},
		{"month only", false, []string{"9"}, request{Month: calendar.YearMonth{Year: 2024, Month: time.September}}, false},
		{"year only", false, []string{"1983"}, request{Month: calendar.YearMonth{Year: 1983, Month: time.January}, WholeYear: true}, false},
		{"year and month", false, []string{"2012", "12"}, request{Month: calendar.YearMonth{Year: 2012, Month: time.December}}, false},
		{"year flag small year", true, []string{"9"}, request{Month: calendar.YearMonth{Year: 9, Month: time.January}, WholeYear: true}, false},
		{"bad month", false, []string{"2012", "13"}, request{}, true},
		{"not a number", false, []string{"march"}, request{}, true},
		{"year flag with two args", true, []string{"2012", "1"}, request{}, true},
		{"too many", false, []string{"1", "2", "3"}, request{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRequest(now, tt.showYear, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("parseRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRecords(t *testing.T) {
	records, err := parseRecords([]string{"2024-02-14", "2024-02-15"}, []string{"2024-02-15=free"})
	if err != nil {
		t.Fatalf("parseRecords failed: %v", err)
	}
	want := []status.Record{
		{Day: calendar.NewDay(2024, time.February, 14), Status: status.Busy},
		{Day: calendar.NewDay(2024, time.February, 15), Status: status.Busy},
		{Day: calendar.NewDay(2024, time.February, 15), Status: status.Free},
	}
	if len(records) != len(want) {
		t.Fatalf("parseRecords=%v want %v", records, want)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("parseRecords=%v want %v", records, want)
		}
	}
	if _, err := parseRecords([]string{"14.02.2024"}, nil); err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if _, err := parseRecords(nil, []string{"2024-02-14=maybe"}); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestPlainRun(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Cleanup(func() {
		render.SetNoColor(false)
		tui.SetNoColor(false)
	})

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"-n", "-N", "--lang", "en",
		"--busy", "2024-02-14", "--busy", "2024-02-20", "--day", "2024-02-20=free", "2024", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v (stderr: %s)", err, errOut.String())
	}

	output := out.String()
	for _, want := range []string{"February 2024", "Busy: 1  Free: 28", "Mo", "Busy: 14 February 2024\n"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	for _, args := range [][]string{
		{"-n", "--busy", "tomorrow"},
		{"-n", "--lang", "de"},
		{"-n", "2024", "13"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
