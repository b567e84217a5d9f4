package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
	"github.com/ironsheep/color-convert-mcp/internal/config"
	"github.com/ironsheep/color-convert-mcp/internal/logging"
	"github.com/ironsheep/color-convert-mcp/internal/server"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "color-mcp",
		Short: "MCP server for color format conversion",
		Long: `color-mcp converts colors between RGB, RGBA, HEX, HEX8, HSL, OKLCH, LAB and CMYK.

Run without a subcommand it serves the MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  COLOR_MCP_LOG_LEVEL=debug    Enable debug logging
  COLOR_MCP_LOG_FORMAT=json    Emit JSON log lines`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(os.Getenv)
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}
			if logLevel != "" {
				if err := cfg.SetLogLevel(logLevel); err != nil {
					return fmt.Errorf("--log-level: %w", err)
				}
			}

			// stdout is reserved for the MCP protocol
			log := logging.New(cfg, os.Stderr)
			log.Info().
				Str("version", Version).
				Str("build_time", BuildTime).
				Str("commit", GitCommit).
				Msg("starting color MCP server")

			srv := server.New(server.WithLogger(log), server.WithVersion(Version))
			if err := srv.Run(); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newConvertCmd() *cobra.Command {
	var from, to string
	var all bool

	cmd := &cobra.Command{
		Use:   "convert COLOR",
		Short: "Convert a single color and print the result",
		Long: `The convert command parses COLOR according to --from and prints it in the --to format.
With --all it prints the color in every supported format.`,
		Example: `  color-mcp convert --from rgb --to hex "rgb(255, 0, 128)"
  color-mcp convert --from hex --all "#ff0080"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if all {
				results, err := colorconv.ConvertAll(from, args[0])
				if err != nil {
					return err
				}
				for _, f := range colorconv.Formats() {
					fmt.Fprintf(out, "%-6s %s\n", f, results[f])
				}
				return nil
			}

			if to == "" {
				return fmt.Errorf("--to is required unless --all is set")
			}
			result, err := colorconv.Convert(from, to, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "Format of the input color")
	cmd.Flags().StringVarP(&to, "to", "t", "", "Format to convert to")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print the color in every supported format")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported color formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(colorconv.Formats()))
			for _, f := range colorconv.Formats() {
				names = append(names, string(f))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "color-convert-mcp %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
