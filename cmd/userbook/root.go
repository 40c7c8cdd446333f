// Root command for the userbook CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/userbook/internal/paths"
	"github.com/mesh-intelligence/userbook/pkg/userbook"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	envFile   string
	jsonMode  bool
	verbose   bool
}

// session is the per-invocation state built by the root PersistentPreRunE.
type session struct {
	flags rootFlags
	cfg   *viper.Viper
	log   *slog.Logger
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	return exitCode(root, root.Execute())
}

// exitCode prints err to the command's stderr and maps it to an exit code.
func exitCode(cmd *cobra.Command, err error) int {
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "userbook:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// newRootCmd creates the top-level "userbook" command with global flags
// and all subcommands registered.
func newRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "userbook",
		Short: "Userbook keeps a local list of users",
		Long: `Userbook stores users (name and email) in a local SQLite database.
Every command ensures the schema, performs its action, and prints the
refreshed list.`,
		Version:       userbook.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return s.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&s.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&s.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	root.PersistentFlags().StringVar(&s.flags.envFile, "env-file", ".env", "optional dotenv file with USERBOOK_* variables")
	root.PersistentFlags().BoolVar(&s.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&s.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(s))
	root.AddCommand(newListCmd(s))
	root.AddCommand(newAddCmd(s))
	root.AddCommand(newDeleteCmd(s))

	return root
}

// setup loads the dotenv file and config.yaml, then builds the logger.
func (s *session) setup(cmd *cobra.Command) error {
	if err := loadEnvFile(s.flags.envFile); err != nil {
		return sysError(fmt.Errorf("load env file: %w", err))
	}

	configDir, err := paths.ResolveConfigDir(s.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}
	s.cfg = cfg

	log, err := newLogger(cmd.ErrOrStderr(), cfg.GetString(cfgKeyLogLevel), s.flags.verbose)
	if err != nil {
		return userError(err)
	}
	s.log = log.With("session", newSessionID())
	s.log.Debug("config loaded", "config_dir", configDir)
	return nil
}

// loadEnvFile loads path into the environment. A missing file is not an error.
// Variables already set in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// newSessionID returns a UUID v7 identifying this invocation in log records.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// resolveDataDir applies the --data-dir > config.yaml > env > default chain.
func (s *session) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(s.flags.dataDir, s.cfg.GetString(cfgKeyDataDir))
}
