package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"geolocator/internal/app"
	"geolocator/internal/models"

	"github.com/spf13/cobra"
)

func newImportCmd(run runner) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "geocode every place name in a CSV file and record the results",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, a *app.App, _ []string) error {
			names, err := parseCSV(file)
			if err != nil {
				return fmt.Errorf("parsing CSV: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Parsed %d places from %s\n", len(names), file)

			imported, failed := 0, 0
			for _, name := range names {
				loc, err := a.Geocode.Geocode(cmd.Context(), name)
				switch {
				case err == nil:
					imported++
				case loc != nil && errors.Is(err, models.ErrSaveFailed):
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%q: resolved but not saved: %v\n", name, err)
				default:
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%q: %s\n", name, describe(err))
				}
			}

			fmt.Fprintf(out, "Successfully imported %d records, %d failed\n", imported, failed)
			return nil
		}),
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a CSV file with a header row and place names in the first column")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// parseCSV returns the first column of every row after the header. Blank names are skipped.
func parseCSV(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var names []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		if name := strings.TrimSpace(record[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
