package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fmclip/internal/daemonctl"
	"fmclip/internal/daemonrun"
	"fmclip/internal/singleton"
)

func newDaemonCommand(ctx *commandContext) *cobra.Command {
	daemonCmd := &cobra.Command{
		Use:   "daemon",
		Short: "Manage the fmclip daemon",
	}

	daemonCmd.AddCommand(newDaemonRunCommand(ctx))
	daemonCmd.AddCommand(newDaemonStartCommand(ctx))
	daemonCmd.AddCommand(newDaemonStopCommand(ctx))
	daemonCmd.AddCommand(newDaemonStatusCommand(ctx))

	return daemonCmd
}

func newDaemonRunCommand(ctx *commandContext) *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:          "run",
		Short:        "Run the fmclip daemon in the foreground",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if ctx.socketFlag != nil {
				if socket := strings.TrimSpace(*ctx.socketFlag); socket != "" {
					cfg.Socket.Path = socket
				}
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{
				LogLevel: strings.TrimSpace(logLevel),
			})
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	return cmd
}

func newDaemonStartCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the fmclip daemon in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			socket := ctx.socketPath()

			if daemonctl.Running(socket) {
				fmt.Fprintln(stdout, "Daemon already running")
				return nil
			}

			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}

			fmt.Fprintln(stdout, "Daemon not running, launching...")
			pid, err := daemonctl.Launch(exe, launchArgs(ctx)...)
			if err != nil {
				return err
			}
			if err := daemonctl.WaitForSocket(socket, 10*time.Second); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Daemon started (pid %d)\n", pid)
			return nil
		},
	}
}

func newDaemonStopCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the fmclip daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			cfg := ctx.configValue()
			if cfg == nil {
				return fmt.Errorf("configuration unavailable")
			}

			pid, err := daemonctl.Stop(cfg.PIDPath(), 5*time.Second)
			if errors.Is(err, daemonctl.ErrDaemonNotRunning) {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Daemon stopped (pid %d)\n", pid)
			return nil
		},
	}
}

func newDaemonStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and clipboard status",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			colorize := isTerminal(stdout)
			socket := ctx.socketPath()

			fmt.Fprintln(stdout, sectionHeader("Daemon", colorize))

			if !daemonctl.Running(socket) {
				fmt.Fprintln(stdout, statusLine("Socket", "DOWN", fmt.Sprintf("%s not serving", socket), colorize))
				fmt.Fprintln(stdout, statusLine("State", "DOWN", "not running", colorize))
				return nil
			}
			fmt.Fprintln(stdout, statusLine("Socket", "OK", socket, colorize))

			if cfg := ctx.configValue(); cfg != nil {
				if pid, err := singleton.ReadPIDFile(cfg.PIDPath()); err == nil {
					fmt.Fprintln(stdout, statusLine("PID", "OK", strconv.Itoa(pid), colorize))
				}
			}

			client := ctx.newClient()
			copied, err := client.GetCopied()
			if err != nil {
				return wrapDialError(err, socket)
			}
			cut, err := client.GetCut()
			if err != nil {
				return wrapDialError(err, socket)
			}

			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, sectionHeader("Clipboard", colorize))
			fmt.Fprintln(stdout, renderCountTable(len(copied), len(cut)))
			return nil
		},
	}
}

// launchArgs rebuilds the flag surface for the detached daemon process so it
// resolves the same socket and config file the CLI did.
func launchArgs(ctx *commandContext) []string {
	args := []string{"daemon", "run"}
	if ctx.socketFlag != nil {
		if socket := strings.TrimSpace(*ctx.socketFlag); socket != "" {
			args = append(args, "--socket", socket)
		}
	}
	if ctx.configFlag != nil {
		if config := strings.TrimSpace(*ctx.configFlag); config != "" {
			args = append(args, "--config", config)
		}
	}
	return args
}
