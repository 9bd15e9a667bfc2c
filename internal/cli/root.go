package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

const rootLong = `msgprep prepares labelled disaster-response messages for training.

It reads a messages file and a categories file, joins them on the identifier
column, decodes the ';'-joined "name-value" category string into one numeric
column per category, removes rows with a duplicate message text and replaces
a relation in the destination store with the result.

The destination is a SQLite database file, or a PostgreSQL URL
(postgres://... or postgresql://...).

Configuration precedence (highest first):
  1. command-line flags
  2. --env-file files (MSGPREP_* keys, later files win)
  3. --config file, or msgprep.yaml in the working directory
  4. built-in defaults

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (wrong argument count or invalid flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Input unreadable or destination not writable
  21 - Missing columns or inconsistent category encoding
  22 - Non-numeric category value`

// persistentFlagValues holds flags shared by all commands.
type persistentFlagValues struct {
	verbose    bool
	logFormat  string
	configPath string
	envFiles   []string
}

// NewRootCmd builds the msgprep command tree.
// Program output goes to stdout, diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	pflags := &persistentFlagValues{}
	rflags := &runFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "msgprep <messages_path> <categories_path> <destination>",
		Short: "Join, decode and deduplicate disaster-response messages into a database",
		Long:  rootLong,
		Example: `  # Write into a SQLite file; the relation is named after the file
  msgprep disaster_messages.csv disaster_categories.csv DisasterResponse.db

  # Explicit relation name
  msgprep messages.csv categories.csv DisasterResponse.db --table messages

  # PostgreSQL destination (relation defaults to "messages")
  msgprep messages.csv categories.csv postgres://user@localhost/etl`,
		Args:         requireRunArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, args, pflags, rflags)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&pflags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.StringVar(&pflags.logFormat, "log-format", "", "Log format: console or json (default console)")
	pf.StringVar(&pflags.configPath, "config", "", "Path to a yaml config file (default ./msgprep.yaml if present)")
	pf.StringArrayVar(&pflags.envFiles, "env-file", nil, "Path to a .env file with MSGPREP_* settings (repeatable)")

	addRunFlags(rootCmd, rflags)

	rootCmd.AddCommand(newInspectCmd(pflags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return NewRootCmd(os.Stdout, os.Stderr).Execute()
}
