package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fix-package-file/internal/config"
	"fix-package-file/internal/logger"
	"fix-package-file/internal/manifest"
	"fix-package-file/internal/patcher"
)

// rootOptions holds the values bound to the command-line flags.
type rootOptions struct {
	debug      bool
	configPath string
	pack       string
	main       string
	project    string
	indent     int
}

// newRootCmd builds the `fix-package-file` command. Each call returns a fresh
// command tree with its own flag values.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "fix-package-file",
		Short: "Add a main entry to a package.json",
		Long: "Adds a \"main\" entry to pkg/package.json when it is missing or null.\n" +
			"The entry defaults to the project directory name with '-' replaced by '_', plus \".js\".",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		// Set up logging before anything else runs
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.debug, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, opts)
		},
	}

	flags := root.Flags()
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to an optional YAML configuration file")
	flags.StringVar(&opts.pack, "pack", "", "The path to your package.json (default <project>/pkg/package.json)")
	flags.StringVar(&opts.main, "main", "", "Optional name of the main JS file. When omitted, the name is guessed from the project directory")
	flags.StringVar(&opts.project, "project", "", "Project directory (default: directory of this executable)")
	flags.IntVar(&opts.indent, "indent", manifest.DefaultIndent, "Spaces per indentation level in the rewritten manifest")

	return root
}

// runFix merges config file defaults under the flags, patches the manifest and
// prints the report.
func runFix(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	po := patcher.Options{
		Pack:       opts.pack,
		Main:       opts.main,
		ProjectDir: opts.project,
		Indent:     opts.indent,
	}
	if !flags.Changed("pack") && cfg.Pack != "" {
		po.Pack = cfg.Pack
	}
	if !flags.Changed("main") && cfg.Main != "" {
		po.Main = cfg.Main
	}
	if !flags.Changed("project") && cfg.Project != "" {
		po.ProjectDir = cfg.Project
	}
	if !flags.Changed("indent") && cfg.Indent != nil {
		po.Indent = *cfg.Indent
	}
	if po.Indent < 0 {
		return fmt.Errorf("invalid --indent %d: must not be negative", po.Indent)
	}

	res, err := patcher.Run(po)
	if err != nil {
		return err
	}

	// The report names the computed entry even when the manifest kept its own
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.ProjectName)
	fmt.Fprintln(out, "package update, main entry:", res.MainEntry)

	if !res.Updated && res.Main != res.MainEntry {
		logger.Debug("[DEBUG] Manifest keeps main entry %s\n", res.Main)
	}
	return nil
}

// Execute runs the root command and exits with status 1 on any failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
