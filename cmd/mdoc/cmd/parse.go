package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mDoc/docfmt"
)

var (
	parseOutput  string
	parsePretty  bool
	parseCompact bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <datei>",
	Short: "Dokument parsen und als JSON ausgeben",
	Long: `Parst ein tag-strukturiertes Dokument und gibt den Baum als JSON aus.

Beispiele:
  mdoc parse bericht.txt
  mdoc parse bericht.txt --output bericht.json
  mdoc parse bericht.txt --compact
  mdoc parse --strict bericht.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Ausgabedatei (default: stdout)")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "JSON eingerückt ausgeben (default)")
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "JSON einzeilig ausgeben")
}

func runParse(cmd *cobra.Command, args []string) {
	engine, cfg, err := newEngine()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		os.Exit(3)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		printError("Datei konnte nicht gelesen werden", err)
		os.Exit(1)
	}

	root, err := engine.Parse(string(data))
	if err != nil {
		printError(fmt.Sprintf("Parsen von %s fehlgeschlagen", args[0]), err)
		os.Exit(2)
	}

	pretty := cfg.GetBool("output.pretty")
	if parsePretty {
		pretty = true
	}
	if parseCompact {
		pretty = false
	}

	out, err := docfmt.EncodeJSON(root, pretty)
	if err != nil {
		printError("JSON-Ausgabe fehlgeschlagen", err)
		os.Exit(3)
	}

	if parseOutput == "" {
		os.Stdout.Write(out)
		return
	}

	if err := os.WriteFile(parseOutput, out, 0o644); err != nil {
		printError("Ausgabedatei konnte nicht geschrieben werden", err)
		os.Exit(3)
	}
	fmt.Printf("JSON geschrieben nach %s\n", parseOutput)
}
