package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sonos-tools/sonosctl/internal/appconfig"
	"github.com/sonos-tools/sonosctl/internal/sonos"
)

type rootFlags struct {
	IP      string
	Timeout time.Duration
	Format  string
	Debug   bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:          "sonosctl",
		Short:        "Control a Sonos speaker from the command line",
		Long:         "Control a single Sonos speaker over your local network (UPnP/SOAP): playback, volume, mute, the status light, and now-playing info.",
		Example:      "  sonosctl play --ip 192.168.1.50\n  sonosctl volume set 25 --ip 192.168.1.50\n  sonosctl config set defaultIP 192.168.1.50\n  sonosctl status --format json",
		SilenceUsage: true,
		Version:      Version,
	}
	rootCmd.SetVersionTemplate("sonosctl {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flags.IP, "ip", "", "Target speaker IP address (falls back to the configured defaultIP)")
	rootCmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", 5*time.Second, "Timeout for network calls")
	rootCmd.PersistentFlags().StringVar(&flags.Format, "format", "", "Output format: plain|json|tsv")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if flags.Debug {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return applyConfigDefaults(flags)
	}

	rootCmd.AddCommand(newPlayCmd(flags))
	rootCmd.AddCommand(newPauseCmd(flags))
	rootCmd.AddCommand(newStopCmd(flags))
	rootCmd.AddCommand(newNextCmd(flags))
	rootCmd.AddCommand(newPrevCmd(flags))
	rootCmd.AddCommand(newVolumeCmd(flags))
	rootCmd.AddCommand(newMuteCmd(flags))
	rootCmd.AddCommand(newLEDCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	rootCmd.SetContext(context.Background())
	return rootCmd
}

// applyConfigDefaults fills flags the user left unset from the config file.
// A missing or unreadable config file never blocks a command that was given
// explicit flags.
func applyConfigDefaults(flags *rootFlags) error {
	var cfg appconfig.Config
	if s, err := newConfigStore(); err == nil {
		if loaded, err := s.Load(); err == nil {
			cfg = loaded
		}
	}
	if flags.IP == "" {
		flags.IP = cfg.DefaultIP
	}
	if flags.Format == "" {
		flags.Format = cfg.Format
	}
	if flags.Format == "" {
		flags.Format = formatPlain
	}
	format, err := normalizeFormat(flags.Format)
	if err != nil {
		return err
	}
	flags.Format = format
	return nil
}

func speakerClient(flags *rootFlags) (*sonos.Client, error) {
	if flags.IP == "" {
		return nil, errors.New("provide --ip or set a default: sonosctl config set defaultIP <addr>")
	}
	return sonos.NewClient(flags.IP, flags.Timeout), nil
}

// finish maps a control Result onto the CLI contract: UPnP faults and raw
// failures exit non-zero, success prints nothing unless JSON was requested.
func finish(cmd *cobra.Command, flags *rootFlags, action string, res sonos.Result, err error) error {
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	return writeOK(cmd, flags, action, nil)
}
