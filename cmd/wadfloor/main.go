// Package main provides the wadfloor binary, which lists the flat lumps of a WAD file.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	wad "github.com/stuarthighley/wadfloor"
	"github.com/stuarthighley/wadfloor/internal/config"
	"github.com/stuarthighley/wadfloor/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	all        bool
	levels     bool
	asJSON     bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "wadfloor [flags] <file.wad>",
		Short: "List the lumps of a WAD section",
		Long: `Read the directory of an IWAD file and list the lumps between the
section markers (F_START and F_END unless configured otherwise).

Configuration is read from --config and WADFLOOR_* environment variables,
e.g. WADFLOOR_SECTION_START=S_START.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.Flags().BoolVar(&opts.all, "all", false, "list the whole directory instead of one section")
	cmd.Flags().BoolVar(&opts.levels, "levels", false, "list the map names")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	cmd.MarkFlagsMutuallyExclusive("all", "levels")
	return cmd
}

func run(cmd *cobra.Command, opts options, path string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()
	wad.SetLogger(logger)

	r, err := wad.Open(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.levels {
		names, err := r.LevelNames()
		if err != nil {
			return err
		}
		if opts.asJSON {
			return writeJSON(out, names)
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	var lumps []wad.Lump
	if opts.all {
		lumps, err = r.Directory()
	} else {
		lumps, err = r.ParseSection(wad.Section{Start: cfg.Section.Start, End: cfg.Section.End})
	}
	if err != nil {
		return err
	}
	logger.Info("listed lumps", zap.String("path", path), zap.Int("count", len(lumps)))

	if opts.asJSON {
		return writeJSON(out, lumps)
	}
	return writeTable(out, lumps)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, lumps []wad.Lump) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tFILEPOS\tSIZE")
	for i, l := range lumps {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i, l.Name, l.Filepos, l.Size)
	}
	return tw.Flush()
}
