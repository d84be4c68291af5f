package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/doctorbhh/Menu-plus/internal/menu"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "parse [menu.xlsx]",
		Short: "Convert a menu workbook to JSON",
		Long: `Parse reads a weekly menu workbook and writes the parsed menu as JSON.
Without --output the result is written next to the input as <name>_menu.json.
Use --output - to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]

			doc, err := parseFile(inputPath)
			if err != nil {
				return err
			}

			data, err := encode(doc, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if outputPath == "" {
				outputPath = defaultOutputPath(inputPath)
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "✅ %d veg/non-veg and %d special days written to %s\n",
				len(doc.Menu.VegNonVeg), len(doc.Menu.Special), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <name>_menu.json, - for stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func parseFile(path string) (*menu.Document, error) {
	if err := menu.ValidateFileExtension(path); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}

	doc, err := menu.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func encode(doc *menu.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// defaultOutputPath turns ".../feb.xlsx" into ".../feb_menu.json".
func defaultOutputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_menu.json"
}
