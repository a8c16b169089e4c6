package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdocconfig "github.com/msto63/mDoc/core/config"
	mdoclog "github.com/msto63/mDoc/core/log"
	"github.com/msto63/mDoc/docfmt"
)

var (
	cfgFile string
	verbose bool
	strict  bool
)

var rootCmd = &cobra.Command{
	Use:   "mdoc",
	Short: "mDoc - Parser für tag-strukturierte Dokumente",
	Long: `mDoc verarbeitet tag-strukturierte Textdokumente und wandelt sie
in eine JSON-Baumdarstellung um.

Unterstützte Tags:
  <head>...</head>        Überschrift eines Blocks
  <block>...</block>      Verschachtelter Abschnitt
  <dict sep=":">...</dict>  Schlüssel/Wert-Zeilen
  <list kind=".">...</list> Nummerierte oder Aufzählungslisten

Befehle:
  parse     - Dokument parsen und als JSON ausgeben
  validate  - Dokument nur prüfen
  test      - Alle *.txt eines Verzeichnisses prüfen
  tree      - Dokumentbaum anzeigen`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Strikte Listen-Verschachtelung")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// loadConfig loads the config file when one is given, otherwise defaults
// plus MDOC_* environment overrides apply.
func loadConfig() (*mdocconfig.Config, error) {
	if cfgFile == "" {
		return mdocconfig.New(), nil
	}
	return mdocconfig.Load(cfgFile)
}

// newLogger builds the CLI logger from config; --verbose forces debug level.
func newLogger(cfg *mdocconfig.Config) *mdoclog.Logger {
	level, err := mdoclog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		level = mdoclog.DefaultLevel()
	}
	if verbose {
		level = mdoclog.LevelDebug
	}

	format, err := mdoclog.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		format = mdoclog.FormatConsole
	}

	return mdoclog.NewWithConfig(mdoclog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "mdoc",
	})
}

// newEngine wires config and flags into a document engine. --strict wins
// over the config file.
func newEngine() (*docfmt.Engine, *mdocconfig.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	strictNesting := cfg.GetBool("parser.strict_nesting")
	if strict {
		strictNesting = true
	}

	engine := docfmt.NewEngine(docfmt.Options{
		Logger:         newLogger(cfg),
		MaxInputLength: cfg.GetInt("parser.max_input_size"),
		StrictNesting:  strictNesting,
	})
	return engine, cfg, nil
}
