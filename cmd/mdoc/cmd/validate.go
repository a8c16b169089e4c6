package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mDoc/docfmt/ast"
)

var validateCmd = &cobra.Command{
	Use:   "validate <datei>",
	Short: "Dokument prüfen",
	Long: `Parst ein Dokument, ohne es auszugeben, und meldet das Ergebnis.

Beispiele:
  mdoc validate bericht.txt
  mdoc validate --strict bericht.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	engine, _, err := newEngine()
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
		printError(fmt.Sprintf("%s ist ungültig", args[0]), err)
		os.Exit(2)
	}

	fmt.Printf("%s ist gültig\n", args[0])
	fmt.Printf("  Elemente: %d\n", ast.CountNodes(root))
	if root.HasHead() {
		fmt.Printf("  Titel:    %s\n", root.Head)
	}
}
