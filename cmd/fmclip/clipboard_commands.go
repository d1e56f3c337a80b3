package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fmclip/internal/clipboard"
	"fmclip/internal/config"
)

func newCopyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <path>...",
		Short: "Mark paths as copied in the shared clipboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return publishSelection(ctx, cmd, args, false)
		},
	}
}

func newCutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cut <path>...",
		Short: "Mark paths as cut in the shared clipboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return publishSelection(ctx, cmd, args, true)
		},
	}
}

func publishSelection(ctx *commandContext, cmd *cobra.Command, args []string, cut bool) error {
	paths, err := resolvePaths(args)
	if err != nil {
		return err
	}

	cb := clipboard.New(ctx.newClient())
	if err := cb.Synchronize(); err != nil {
		return wrapDialError(err, ctx.socketPath())
	}

	verb := "copied"
	if cut {
		verb = "cut"
		err = cb.AddCut(paths...)
	} else {
		err = cb.AddCopied(paths...)
	}
	if err != nil {
		return wrapDialError(err, ctx.socketPath())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Marked %d path(s) as %s\n", len(paths), verb)
	return nil
}

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty both clipboard selection sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.newClient().PublishClear(); err != nil {
				return wrapDialError(err, ctx.socketPath())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Clipboard cleared")
			return nil
		},
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "list [copied|cut]",
		Short:     "Show the shared clipboard contents",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"copied", "cut"},
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			client := ctx.newClient()
			rows := make([][2]string, 0)

			if filter == "" || filter == "copied" {
				copied, err := client.GetCopied()
				if err != nil {
					return wrapDialError(err, ctx.socketPath())
				}
				for _, path := range copied {
					rows = append(rows, [2]string{"copied", path})
				}
			}
			if filter == "" || filter == "cut" {
				cut, err := client.GetCut()
				if err != nil {
					return wrapDialError(err, ctx.socketPath())
				}
				for _, path := range cut {
					rows = append(rows, [2]string{"cut", path})
				}
			}

			stdout := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(stdout, "Clipboard is empty")
				return nil
			}
			// Plain tab-separated output when piped, table on a terminal.
			if !isTerminal(stdout) {
				for _, row := range rows {
					fmt.Fprintf(stdout, "%s\t%s\n", row[0], row[1])
				}
				return nil
			}
			fmt.Fprintln(stdout, renderSelectionTable(rows))
			return nil
		},
	}
}

func newSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull both selection sets from the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb := clipboard.New(ctx.newClient())
			if err := cb.Synchronize(); err != nil {
				return wrapDialError(err, ctx.socketPath())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synchronized: %d copied, %d cut\n",
				len(cb.Copied()), len(cb.Cut()))
			return nil
		},
	}
}

func resolvePaths(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		expanded, err := config.ExpandPath(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve path %q: %w", arg, err)
		}
		paths = append(paths, filepath.Clean(expanded))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one path is required")
	}
	return paths, nil
}
