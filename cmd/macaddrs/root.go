package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/slashdevops/macaddrs"
	"github.com/slashdevops/macaddrs/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can execute it repeatedly.
func newRootCmd() *cobra.Command {
	var configFile string
	v := viper.New()

	rootCmd := &cobra.Command{
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Use:          applicationName,
		Short:        "List the MAC addresses of this machine's network adapters",
		Long: `macaddrs runs the platform network configuration command (ifconfig, ip,
or getmac) and prints the unique MAC addresses found in its output.
All-zero placeholder addresses are never printed.`,
		Example: `  macaddrs
  macaddrs --contains eth0 --json
  macaddrs --skip-virtual --exclude "Media disconnected"
  ip link | macaddrs --input -
  macaddrs --command /usr/sbin/ip --args link`,
		Version: version.Short(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd, configFile)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} version: {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to configuration file (YAML or TOML)")
	flags.StringSlice("contains", nil, "Only scan lines containing any of these substrings")
	flags.StringSlice("exclude", nil, "Skip lines containing any of these substrings")
	flags.Bool("skip-virtual", false, "Skip lines starting with a virtual, VPN, or bridge interface name")
	flags.String("command", "", "Run this command instead of the platform default")
	flags.StringSlice("args", nil, "Arguments for --command")
	flags.String("delimiter", "", "Address group delimiter as a regexp class body (default \":\" for --command and --input)")
	flags.String("input", "", "Read command output from this file, or - for stdin, instead of running a command")
	flags.Duration("timeout", 5*time.Second, "Command execution timeout")
	flags.Bool("json", false, "Output result as JSON")
	flags.Bool("debug", false, "Log command execution to stderr")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func run(cmd *cobra.Command, cfg config) error {
	level := new(slog.LevelVar)
	if cfg.Debug {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	addrs, err := collect(cmd, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to collect MAC addresses: %w", err)
	}

	if cfg.JSON {
		return printJSON(cmd.OutOrStdout(), addrs)
	}

	for _, addr := range addrs.Sorted() {
		fmt.Fprintln(cmd.OutOrStdout(), addr)
	}

	return nil
}

func collect(cmd *cobra.Command, cfg config, logger *slog.Logger) (macaddrs.Set, error) {
	filter := buildFilter(cfg)
	delimiter := cfg.Delimiter
	if delimiter == "" {
		delimiter = macaddrs.DelimiterColon
	}

	if cfg.Input != "" {
		output, err := readInput(cmd.InOrStdin(), cfg.Input)
		if err != nil {
			return nil, err
		}
		logger.Debug("extracting from input", "input", cfg.Input, "bytes", len(output))

		return macaddrs.Extract(output, delimiter, filter)
	}

	provider := macaddrs.New().
		WithFilter(filter).
		WithLogger(logger).
		WithTimeout(cfg.Timeout)

	if cfg.Command != "" {
		provider.WithSources(macaddrs.Source{
			Name:      cfg.Command,
			Args:      cfg.Args,
			Delimiter: delimiter,
		})
	}

	return provider.Addrs(cmd.Context())
}

// buildFilter combines the line filters selected in cfg. With none selected
// every line is accepted.
func buildFilter(cfg config) macaddrs.Filter {
	var filters []macaddrs.Filter

	if len(cfg.Contains) > 0 {
		include := make([]macaddrs.Filter, 0, len(cfg.Contains))
		for _, s := range cfg.Contains {
			include = append(include, macaddrs.Contains(s))
		}
		filters = append(filters, macaddrs.AnyOf(include...))
	}

	for _, s := range cfg.Exclude {
		filters = append(filters, macaddrs.Not(macaddrs.Contains(s)))
	}

	if cfg.SkipVirtual {
		filters = append(filters, macaddrs.SkipVirtualInterfaces)
	}

	return macaddrs.AllOf(filters...)
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), nil
}

func printJSON(w io.Writer, addrs macaddrs.Set) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(map[string]any{
		"addresses": addrs.Sorted(),
		"count":     addrs.Len(),
	})
}
