package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version string
	root    = &cobra.Command{
		Use:   "zonegrep [flags] <ip>",
		Short: "zonegrep finds the zone file entries pointing at an IP address",
		Long: `zonegrep reads BIND9 zone files and prints every entry whose A
(IPv4) or AAAA (IPv6) record contains the given address. With -o it prints
add/del lines for the DNS manager script runner instead.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          exec,
	}

	script = &cobra.Command{
		Use:   "script [flags] <ip|cname>",
		Short: "build DNS manager script lines for the given hostnames",
		Long: `script renders add/del lines for each hostname given with -r.
The target is an IP address, or a CNAME target when it does not parse as
one. The domain of each hostname is its registered domain.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          execScript,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	root.PersistentFlags().CountP(
		"verbose",
		"v",
		"verbosity (-v, -vv)",
	)
	viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.PersistentFlags().BoolP(
		"debug",
		"d",
		false,
		"enable debug logging",
	)
	viper.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))

	root.PersistentFlags().String(
		"config",
		"",
		"config file location",
	)
	viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.PersistentFlags().StringP(
		"output-as-script-type",
		"o",
		"",
		"produce DNS manager script lines; must be add or del",
	)
	viper.BindPFlag("script.action", root.PersistentFlags().Lookup("output-as-script-type"))

	root.Flags().StringSliceP(
		"filenames",
		"f",
		[]string{},
		"zone file(s) to parse (BIND9 format); a single directory is searched for files with --ext",
	)

	root.Flags().StringP(
		"ext",
		"e",
		DEFAULTEXT,
		"zone file extension to target when a directory is given",
	)

	root.Flags().BoolP(
		"AAAA",
		"6",
		false,
		"search AAAA records (the target's address family takes precedence)",
	)

	root.Flags().String(
		"cname",
		"",
		"render CNAME script lines pointing at this target instead of address lines",
	)

	root.Flags().Bool(
		"fail-fast",
		false,
		"abort the run when a zone file fails to load",
	)

	root.Flags().Bool(
		"include",
		false,
		"allow $INCLUDE directives in zone files",
	)

	viper.BindPFlag("files", root.Flags().Lookup("filenames"))
	viper.BindPFlag("ext", root.Flags().Lookup("ext"))
	viper.BindPFlag("aaaa", root.Flags().Lookup("AAAA"))
	viper.BindPFlag("cname", root.Flags().Lookup("cname"))
	viper.BindPFlag("fail_fast", root.Flags().Lookup("fail-fast"))
	viper.BindPFlag("zone.include", root.Flags().Lookup("include"))

	script.Flags().StringArrayP(
		"record",
		"r",
		[]string{},
		"hostname to create a script line for (repeat per hostname)",
	)

	viper.SetDefault("zone.default_ttl", DEFAULTTTL)
	viper.SetDefault("cache.ttl", DEFAULTCACHETTL)

	root.AddCommand(script)
}

func initConfig() {
	viper.SetEnvPrefix("ZONEGREP")
	viper.AutomaticEnv()

	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.SetConfigName("zonegrep")
		viper.AddConfigPath("/etc/zonegrep/")

		// Check home directory/.zonegrep for config
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".zonegrep"))
		}

		// Check working directory for config
		wd, err := os.Getwd()
		if err == nil {
			viper.AddConfigPath(wd)
		}
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		fmt.Fprintf(os.Stderr, "fatal error config file: %s\n", err)
		os.Exit(1)
	}
}
