// Command reductionctl converts between efficiency and reduction from the
// shell, probes the sampled curve, and exports curves to SQL or CSV.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const usage = `usage: reductionctl <command> [flags]

commands:
  convert  -efficiency V | -reduction V   convert one value
  probe    -x V                           nearest sample to an efficiency
  curve                                   print the sampled curve
  export   -db-driver D -db-dsn DSN [-csv-dir DIR]
  list     -db-driver D -db-dsn DSN       list exported curves
`

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "reductionctl:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return nil
	}
	switch args[0] {
	case "convert":
		return runConvertCmd(args[1:], out)
	case "probe":
		return runProbeCmd(args[1:], out)
	case "curve":
		return runCurveCmd(args[1:], out)
	case "export":
		return runExportCmd(args[1:], out)
	case "list":
		return runListCmd(args[1:], out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	}
	return fmt.Errorf("unknown command %q\n%s", args[0], usage)
}
