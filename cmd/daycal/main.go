package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/config"
	"github.com/lululau/daycal/internal/coordinator"
	"github.com/lululau/daycal/internal/logging"
	"github.com/lululau/daycal/internal/render"
	"github.com/lululau/daycal/internal/status"
	"github.com/lululau/daycal/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// request is what the positional arguments ask for.
type request struct {
	Month     calendar.YearMonth
	WholeYear bool
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		showYear   bool
		plain      bool
		busy       []string
		days       []string
	)
	v := config.New()

	cmd := &cobra.Command{
		Use:   "daycal [year] [month]",
		Short: "Busy/free day calendar for the terminal",
		Long: `Shows a Monday-first month grid where every day is either busy or free.

  no arguments   current month
  -y             current year
  9              September of the current year
  1983           the whole year 1983
  2012 12        December 2012
  -y 9           the whole year 9`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			req, err := parseRequest(time.Now(), showYear, args)
			if err != nil {
				return err
			}
			seeded, err := cfg.Records()
			if err != nil {
				return err
			}
			flagged, err := parseRecords(busy, days)
			if err != nil {
				return err
			}

			nonInteractive := plain || req.WholeYear
			var console io.Writer
			if nonInteractive {
				console = cmd.ErrOrStderr()
			}
			logger, err := logging.New(logging.Options{
				File:    cfg.Log.File,
				Level:   cfg.Log.Level,
				Console: console,
			})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cfg.NoColor || (nonInteractive && !render.IsTerminal()) {
				render.SetNoColor(true)
				tui.SetNoColor(true)
			}

			loc := cfg.Locale()
			c := coordinator.New(req.Month, coordinator.WithLogger(logger))
			for _, rec := range append(seeded, flagged...) {
				c.SetDayStatus(rec.Day, rec.Status)
			}
			logger.Debug("starting",
				zap.Stringer("month", req.Month),
				zap.Bool("whole_year", req.WholeYear),
				zap.Bool("interactive", !nonInteractive),
				zap.String("lang", loc.Tag.String()),
				zap.Int("busy_days", c.Store().Len()))

			if nonInteractive {
				return render.RunPlain(render.PlainOptions{
					Writer:    cmd.OutOrStdout(),
					Service:   c.Service(),
					Month:     req.Month,
					WholeYear: req.WholeYear,
					Locale:    loc,
					Store:     c.Store(),
				})
			}
			return tui.Run(c, loc, logger)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&showYear, "year", "y", false, "show the whole year")
	flags.BoolVarP(&plain, "plain", "n", false, "render once and exit (non-interactive)")
	flags.BoolP("no-color", "N", false, "disable all color output")
	flags.String("lang", "", "label language: ru or en (default from $LANG)")
	flags.StringArrayVar(&busy, "busy", nil, "mark a day (YYYY-MM-DD) busy; repeatable")
	flags.StringArrayVar(&days, "day", nil, "set a day status (YYYY-MM-DD=busy|free); repeatable, applied after --busy")
	flags.StringVarP(&configPath, "config", "c", "", "config file path")
	flags.String("log-file", "", "write a JSON log to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	_ = v.BindPFlag("no_color", flags.Lookup("no-color"))
	_ = v.BindPFlag("lang", flags.Lookup("lang"))
	_ = v.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	return cmd
}

func parseRequest(now time.Time, showYear bool, args []string) (request, error) {
	ym := calendar.YearMonth{Year: now.Year(), Month: now.Month()}

	switch len(args) {
	case 0:
		// defaults
	case 1:
		if showYear {
			val, err := parseNumber(args[0], "year")
			if err != nil {
				return request{}, err
			}
			ym.Year = val
		} else {
			val, err := parseNumber(args[0], "month/year")
			if err != nil {
				return request{}, err
			}
			if val >= 1 && val <= 12 {
				ym.Month = time.Month(val)
			} else {
				ym.Year = val
				showYear = true
			}
		}
	case 2:
		if showYear {
			return request{}, errors.New("-y takes at most one year argument")
		}
		y, err := parseNumber(args[0], "year")
		if err != nil {
			return request{}, err
		}
		m, err := parseNumber(args[1], "month")
		if err != nil {
			return request{}, err
		}
		if m < 1 || m > 12 {
			return request{}, fmt.Errorf("month must be between 1 and 12 (got %d)", m)
		}
		ym = calendar.YearMonth{Year: y, Month: time.Month(m)}
	default:
		return request{}, errors.New("too many arguments, see --help")
	}

	if showYear {
		ym.Month = time.January
	}
	return request{Month: ym, WholeYear: showYear}, nil
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}

// parseRecords turns --busy dates and --day DATE=STATUS pairs into records,
// busy ones first.
func parseRecords(busy, days []string) ([]status.Record, error) {
	records := make([]status.Record, 0, len(busy)+len(days))
	for _, s := range busy {
		d, err := calendar.ParseDay(s)
		if err != nil {
			return nil, fmt.Errorf("--busy: %w", err)
		}
		records = append(records, status.Record{Day: d, Status: status.Busy})
	}
	for _, s := range days {
		rec, err := status.ParseRecord(s)
		if err != nil {
			return nil, fmt.Errorf("--day: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
