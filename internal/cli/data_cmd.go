package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/cli/formatter"
	"github.com/alexanderramin/apex/internal/importer"
	"github.com/spf13/cobra"
)

func importRequest(path string) (app.ImportRequest, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return app.ImportRequest{}, err
	}
	return app.ImportRequest{Schema: schema}, nil
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Create the profile from an athlete JSON file",
		Long: "Create the profile from a JSON file holding identity, known loads, " +
			"program position and past sessions. Replaces onboarding.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := importRequest(args[0])
			if err != nil {
				return err
			}
			resp, err := app.Import.Import(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImport(resp))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the profile and session history as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Export.Export(context.Background())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sessions to %s\n", len(doc.Sessions), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
