package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/mDoc/docfmt/ast"
	mdocstringx "github.com/msto63/mDoc/utils/stringx"
)

var treeMaxText int

var (
	treeKindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	treeHeadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	treeTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB"))

	treeMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)
)

var treeCmd = &cobra.Command{
	Use:   "tree <datei>",
	Short: "Dokumentbaum anzeigen",
	Long: `Parst ein Dokument und zeigt den Knotenbaum eingerückt an.

Beispiele:
  mdoc tree bericht.txt
  mdoc tree --max-text 40 bericht.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().IntVar(&treeMaxText, "max-text", 60, "Textvorschau auf N Zeichen kürzen")
}

func runTree(cmd *cobra.Command, args []string) {
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
		printError(fmt.Sprintf("Parsen von %s fehlgeschlagen", args[0]), err)
		os.Exit(2)
	}

	fmt.Println(treeMetaStyle.Render(args[0]))
	printNode(root, 0)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func preview(s string) string {
	return mdocstringx.Ellipsis(strings.ReplaceAll(s, "\n", " "), treeMaxText)
}

func printNode(n ast.Node, depth int) {
	switch node := n.(type) {
	case *ast.Block:
		label := treeKindStyle.Render("block")
		if node.Number != "" {
			label += treeMetaStyle.Render(" #" + node.Number)
		}
		if node.HasHead() {
			label += " " + treeHeadStyle.Render(preview(node.Head))
		}
		fmt.Println(indent(depth) + label)
		for _, child := range node.Body {
			printNode(child, depth+1)
		}

	case *ast.Text:
		fmt.Println(indent(depth) + treeTextStyle.Render(preview(node.Content)))

	case *ast.Dictionary:
		fmt.Printf("%s%s %s\n", indent(depth),
			treeKindStyle.Render("dict"),
			treeMetaStyle.Render(fmt.Sprintf("(sep=%c, %d Einträge)", node.Separator, node.Len())))
		for _, key := range node.Keys {
			value, _ := node.Get(key)
			fmt.Printf("%s%s: %s\n", indent(depth+1),
				treeHeadStyle.Render(key),
				treeTextStyle.Render(preview(value)))
		}

	case *ast.ListBlock:
		fmt.Printf("%s%s %s\n", indent(depth),
			treeKindStyle.Render("list"),
			treeMetaStyle.Render(fmt.Sprintf("(%s, %d Einträge)", node.Ordering, len(node.Items))))
		for _, item := range node.Items {
			printNode(item, depth+1)
		}

	case *ast.ListItem:
		label := treeMetaStyle.Render(node.Label)
		if node.Content != nil && node.Content.HasHead() {
			label += " " + treeTextStyle.Render(preview(node.Content.Head))
		}
		fmt.Println(indent(depth) + label)
		if node.Content != nil {
			for _, child := range node.Content.Body {
				printNode(child, depth+1)
			}
		}
		for _, child := range node.Children {
			printNode(child, depth+1)
		}
	}
}
