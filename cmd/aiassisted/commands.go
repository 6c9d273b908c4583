package aiassisted

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/internal/version"
	"github.com/rstlix0x0/aiassisted/pkg/cobrax/topics"
	"github.com/rstlix0x0/aiassisted/pkg/config"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/fetch"
	"github.com/rstlix0x0/aiassisted/pkg/installer"
	"github.com/rstlix0x0/aiassisted/pkg/logging"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
	"github.com/rstlix0x0/aiassisted/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

// goRuntime is the only runtime this binary can execute
const goRuntime = "go"

// annotationConfigOptional marks commands that still run, on defaults, when
// the configuration cannot be loaded
const annotationConfigOptional = "aiassisted/config-optional"

// annotationRuntimeIndependent marks commands that need configuration but
// not a runnable runtime
const annotationRuntimeIndependent = "aiassisted/runtime-independent"

// rootOptions holds the persistent flags
type rootOptions struct {
	path      string
	verbosity int
	quiet     bool
	runtime   string
	baseURL   string
	config    string
	format    string
}

// app is the state shared by subcommands once flags and configuration are
// resolved in PersistentPreRunE
type app struct {
	opts    rootOptions
	cfg     *config.Config
	console *ui.Console
	runtime string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "aiassisted",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.path, "path", "p", ".", MsgFlagPath)
	flags.CountVarP(&a.opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&a.opts.quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.StringVar(&a.opts.runtime, "runtime", "", MsgFlagRuntime)
	flags.StringVar(&a.opts.baseURL, "base-url", "", MsgFlagBaseURL)
	flags.StringVar(&a.opts.config, "config", "", MsgFlagConfig)
	flags.StringVar(&a.opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newRuntimeCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Help topics ship inside the binary
	topicFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		renderer := topics.NewPlainGlamourRenderer()
		if stdoutIsTerminal() {
			renderer = topics.NewGlamourRenderer()
		}
		err = topics.InitializeWithOptions(rootCmd, topicFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   renderer,
		})
	}
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup loads configuration, configures logging, validates the runtime and
// builds the console. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	verbosity := a.opts.verbosity
	if a.opts.quiet {
		verbosity = logging.Quiet
	}

	format, err := ui.ParseFormat(a.opts.format)
	if err != nil {
		logging.SetupLogger(verbosity)
		return err
	}
	a.console = ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, a.opts.quiet)

	overrides := map[string]interface{}{}
	if a.opts.baseURL != "" {
		overrides["source.url"] = a.opts.baseURL
	}
	cfg, loadErr := config.Load(config.Options{
		File:      a.opts.config,
		Overrides: overrides,
	})
	if loadErr != nil {
		if !configOptional(cmd) {
			logging.SetupLogger(verbosity)
			return loadErr
		}
		cfg = config.Default()
	}
	a.cfg = cfg

	logging.SetupLoggerWithFile(verbosity, cfg.Log.File)
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg(MsgErrConfigFallback)
	}
	logging.LogCommand(cmd.CommandPath(), args)

	if configOptional(cmd) || hasAnnotation(cmd, annotationRuntimeIndependent) {
		return nil
	}
	return a.resolveRuntime()
}

// configOptional reports whether cmd can do its job without a valid
// configuration
func configOptional(cmd *cobra.Command) bool {
	if hasAnnotation(cmd, annotationConfigOptional) {
		return true
	}
	name := cmd.Name()
	return name == "help" || strings.HasPrefix(name, cobra.ShellCompRequestCmd)
}

// hasAnnotation looks for key on cmd and its parents
func hasAnnotation(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[key]; ok {
			return true
		}
	}
	return false
}

// resolveRuntime picks the runtime from --runtime or runtime.default and
// checks it against runtime.available
func (a *app) resolveRuntime() error {
	name := a.selectedRuntime()
	if !a.cfg.HasRuntime(name) {
		return errors.Newf(errors.ErrInvalidInput, MsgErrRuntime, name, strings.Join(a.cfg.Runtime.Available, ", ")).
			WithDetail("runtime", name)
	}
	if name != goRuntime {
		return errors.Newf(errors.ErrInvalidInput, MsgErrRuntimeExec, name).
			WithDetail("runtime", name)
	}
	a.runtime = name
	log.Debug().Str("runtime", name).Msg("Runtime selected")
	return nil
}

// target returns the absolute project directory from --path
func (a *app) target() (string, error) {
	return paths.NormalizePath(a.opts.path)
}

// newInstaller wires the HTTP fetcher and installer from configuration
func (a *app) newInstaller() (*installer.Installer, error) {
	source, err := fetch.NewSource(a.cfg.Source.URL)
	if err != nil {
		return nil, err
	}

	fetcher := fetch.NewHTTPFetcher(
		fetch.WithTimeout(a.cfg.HTTP.Timeout),
		fetch.WithUserAgent(version.UserAgent(a.cfg.HTTP.UserAgent)),
		fetch.WithMaxBodySize(a.cfg.HTTP.MaxBytes),
		fetch.WithLogger(logging.GetLogger("fetch")),
	)

	return installer.New(fetcher, source,
		installer.WithLogger(logging.GetLogger("installer")),
		installer.WithPreviewLines(a.cfg.Preview.Lines),
	), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Args:        cobra.NoArgs,
		GroupID:     "misc",
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		Annotations:           map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
