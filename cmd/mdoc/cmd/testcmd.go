package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test <verzeichnis>",
	Short: "Alle *.txt eines Verzeichnisses prüfen",
	Long: `Parst jede *.txt-Datei im Verzeichnis und fasst das Ergebnis zusammen.

Beispiele:
  mdoc test testdaten/
  mdoc test --strict testdaten/`,
	Args: cobra.ExactArgs(1),
	Run:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) {
	engine, _, err := newEngine()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		os.Exit(3)
	}

	files, err := filepath.Glob(filepath.Join(args[0], "*.txt"))
	if err != nil {
		printError("Verzeichnis konnte nicht gelesen werden", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("Keine *.txt-Dateien in %s gefunden\n", args[0])
		os.Exit(1)
	}
	sort.Strings(files)

	var passed, failed int
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("  [-] %s - nicht lesbar: %v\n", filepath.Base(file), err)
			failed++
			continue
		}

		if _, err := engine.Parse(string(data)); err != nil {
			fmt.Printf("  [-] %s - %v\n", filepath.Base(file), err)
			failed++
			continue
		}

		fmt.Printf("  [+] %s\n", filepath.Base(file))
		passed++
	}

	fmt.Println()
	fmt.Printf("%d bestanden, %d fehlgeschlagen\n", passed, failed)

	if failed > 0 {
		os.Exit(1)
	}
}
