package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.devnw.com/event"
	"go.uber.org/zap"
)

// DEFAULTTTL defines the default ttl for records in zone files that do
// not provide a $TTL.
const DEFAULTTTL = 3600

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		// nolint:gocritic
		os.Exit(1)
	}
}

func exec(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	zl := configLogger()
	defer zl.Sync()
	logger := zl.Sugar()

	cfg := loadConfig()

	target, err := ParseTarget(args[0])
	if err != nil {
		return err
	}

	warnIgnored(logger, cfg, target)

	var action Action
	if cfg.ScriptMode() {
		action, err = ParseAction(cfg.Action)
		if err != nil {
			return err
		}
	}

	files, err := Filenames(ctx, cfg.Files, cfg.Ext)
	if err != nil {
		return err
	}

	logger.Debugw("parsing zone files", "files", files)

	pub := event.NewPublisher(ctx)
	defer pub.Close()
	bridge(ctx, zl, pub)

	loader, err := NewCachedLoader(ctx, logger, &ZoneFileLoader{
		DefaultTTL: cfg.Zone.DefaultTTL,
		Include:    cfg.Zone.Include,
	}, cfg.Cache.TTL)
	if err != nil {
		return err
	}

	scanner, err := NewScanner(logger, cfg.ScriptMode())
	if err != nil {
		return err
	}

	batch, err := NewBatch(logger, pub, loader, scanner)
	if err != nil {
		return err
	}
	batch.FailFast = cfg.FailFast

	report, err := batch.Run(ctx, files, target)
	if err != nil {
		return err
	}

	lines := report.Results.Entries()
	if cfg.ScriptMode() {
		addr := &target
		if cfg.CNAME != "" {
			addr = nil
		}

		lines, err = scriptLines(report.Results, action, addr, cfg.CNAME)
		if err != nil {
			return err
		}
	}

	err = output(cmd.OutOrStdout(), cmd.ErrOrStderr(), lines)
	if err != nil {
		return err
	}

	return report.Err()
}

// warnIgnored logs the flags that have no effect on this run.
func warnIgnored(logger Logger, cfg *Config, target Target) {
	if cfg.AAAA && target.Family() != IPv6 {
		logger.Warnw("ignoring --AAAA; target is not an IPv6 address",
			"target", target.String(),
		)
	}

	if cfg.CNAME != "" && !cfg.ScriptMode() {
		logger.Warnw("ignoring --cname; no script action was given with -o",
			"cname", cfg.CNAME,
		)
	}
}

// scriptLines renders results as script lines for action, using the
// address or the cname target, whichever is set.
func scriptLines(
	results Results,
	action Action,
	addr *Target,
	cname string,
) ([]string, error) {
	mode, value, err := SelectMode(action, addr, cname)
	if err != nil {
		return nil, err
	}

	return Render(results, mode, value), nil
}

// output writes lines to stdout, or reports that there were no results
// on stderr. Finding nothing is not an error.
func output(stdout, stderr io.Writer, lines []string) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(stderr, "no results")
		return err
	}

	_, err := fmt.Fprintln(stdout, strings.Join(lines, "\n"))
	return err
}

func execScript(cmd *cobra.Command, args []string) error {
	zl := configLogger()
	defer zl.Sync()
	logger := zl.Sugar()

	action, err := ParseAction(viper.GetString("script.action"))
	if err != nil {
		return err
	}

	hosts, err := cmd.Flags().GetStringArray("record")
	if err != nil {
		return err
	}

	records, err := HostRecords(hosts...)
	if err != nil {
		return err
	}

	var (
		addr  *Target
		cname string
	)

	target, err := ParseTarget(args[0])
	if err != nil {
		logger.Debugw("target is not an IP address; using it as a CNAME target",
			"target", args[0],
		)
		cname = args[0]
	} else {
		addr = &target
	}

	lines, err := scriptLines(records, action, addr, cname)
	if err != nil {
		return err
	}

	return output(cmd.OutOrStdout(), cmd.ErrOrStderr(), lines)
}

// bridge forwards the publisher's events and errors to the logger until
// ctx is canceled.
func bridge(ctx context.Context, logger *zap.Logger, pub *event.Publisher) {
	events := pub.ReadEvents(0)
	errs := pub.ReadErrors(0)

	go func() {
		for events != nil || errs != nil {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				logger.Debug(e.Event())
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				logger.Debug("zone error", zap.Error(err))
			}
		}
	}()
}
