package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mind-engage/reductionlab/internal/config"
	"github.com/mind-engage/reductionlab/internal/convert"
	"github.com/mind-engage/reductionlab/internal/db"
	"github.com/mind-engage/reductionlab/internal/storage"
	"github.com/mind-engage/reductionlab/internal/store"
)

// curveFlags are shared by every subcommand that needs a controller.
type curveFlags struct {
	configFile *string
	xMax       *int
	steps      *int
}

func setupCurveFlags(fs *flag.FlagSet) *curveFlags {
	return &curveFlags{
		configFile: fs.String("config", "", "YAML config file"),
		xMax:       fs.Int("x-max", 0, "efficiency ceiling (overrides config)"),
		steps:      fs.Int("steps", 0, "samples per unit (overrides config)"),
	}
}

func (f *curveFlags) load() (config.Config, *convert.Controller, error) {
	cfg, err := config.Load(*f.configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if *f.xMax > 0 {
		cfg.Curve.XMax = *f.xMax
	}
	if *f.steps > 0 {
		cfg.Curve.StepsPerUnit = *f.steps
	}
	ctl, err := convert.New(cfg.ConvertOptions())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, ctl, nil
}

func runConvertCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(out)
	cf := setupCurveFlags(fs)
	eff := fs.String("efficiency", "", "efficiency field value")
	red := fs.String("reduction", "", "reduction field value")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*eff == "") == (*red == "") {
		return errors.New("convert: give exactly one of -efficiency or -reduction")
	}
	_, ctl, err := cf.load()
	if err != nil {
		return err
	}
	var res convert.Result
	if *eff != "" {
		res = ctl.EfficiencyInput(*eff)
	} else {
		res = ctl.ReductionInput(*red)
	}
	if !res.Valid {
		// cleared: nothing to show, mirror the empty display
		fmt.Fprintln(out)
		return nil
	}
	fmt.Fprintln(out, res.Text)
	if res.Highlight == nil {
		fmt.Fprintln(out, "(outside the plotted window)")
	}
	return nil
}

func runProbeCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.SetOutput(out)
	cf := setupCurveFlags(fs)
	x := fs.Float64("x", 0, "efficiency to look up")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, ctl, err := cf.load()
	if err != nil {
		return err
	}
	p := ctl.Probe(*x)
	fmt.Fprintf(out, "x=%g y=%.6f\n%s\n", p.Point.X, p.Point.Y, p.Tooltip)
	return nil
}

func runCurveCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("curve", flag.ContinueOnError)
	fs.SetOutput(out)
	cf := setupCurveFlags(fs)
	csvOut := fs.Bool("csv", false, "print CSV instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, ctl, err := cf.load()
	if err != nil {
		return err
	}
	c := ctl.Curve()
	if *csvOut {
		return storage.WriteCurveCSV(out, c)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "efficiency\treduction\t")
	for i := 0; i < c.Len(); i++ {
		p := c.At(i)
		fmt.Fprintf(tw, "%.2f%%\t%.2f%%\t\n", p.X*100, p.Y*100)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s samples\n", humanize.Comma(int64(c.Len())))
	return nil
}

func openCurveStore(ctx context.Context, driver, dsn string) (*store.SQLStore, func() error, error) {
	drv, err := db.ParseDriver(driver)
	if err != nil {
		return nil, nil, err
	}
	dbh, err := db.Open(ctx, drv, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open: %w", err)
	}
	return store.NewSQLStore(dbh), dbh.Close, nil
}

func runExportCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(out)
	cf := setupCurveFlags(fs)
	driver := fs.String("db-driver", "sqlite", "sqlite|postgres")
	dsn := fs.String("db-dsn", "", "database DSN (driver default when empty)")
	csvDir := fs.String("csv-dir", "", "also write curves/<id>.csv under this directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, ctl, err := cf.load()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s, closeDB, err := openCurveStore(ctx, *driver, *dsn)
	if err != nil {
		return err
	}
	defer closeDB()

	start := time.Now()
	id, err := s.SaveCurve(ctx, ctl.Curve(), cfg.Curve.StepsPerUnit, cfg.Curve.XMax)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(out, "exported curve %s: %s samples in %s\n",
		id, humanize.Comma(int64(ctl.Curve().Len())), time.Since(start).Round(time.Millisecond))

	if *csvDir != "" {
		bs, err := storage.NewFSStore(*csvDir)
		if err != nil {
			return err
		}
		key, err := storage.PutCurveCSV(bs, id, ctl.Curve())
		if err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		u, _ := bs.URL(key)
		fmt.Fprintf(out, "wrote %s\n", u)
	}
	return nil
}

func runListCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(out)
	driver := fs.String("db-driver", "sqlite", "sqlite|postgres")
	dsn := fs.String("db-dsn", "", "database DSN (driver default when empty)")
	limit := fs.Int("limit", 20, "max curves to list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, closeDB, err := openCurveStore(ctx, *driver, *dsn)
	if err != nil {
		return err
	}
	defer closeDB()

	list, err := s.ListCurves(ctx, *limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTEPS\tX MAX\tSAMPLES\tCREATED")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", c.ID, c.StepsPerUnit, c.XMax,
			humanize.Comma(int64(c.Points)), humanize.Time(time.Unix(c.CreatedAt, 0)))
	}
	return tw.Flush()
}
