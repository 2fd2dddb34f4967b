package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-companion/internal/config"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/naming"
	"github.com/KirkDiggler/rpg-companion/internal/services/character"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet/pdfform"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet/workbook"
)

var (
	sheetFormat     string
	sheetTemplate   string
	sheetOutput     string
	sheetPlayerName string
	sheetJSON       bool
)

var sheetCmd = &cobra.Command{
	Use:   "sheet CHARACTER_ID",
	Short: "Project a stored character onto a character sheet",
	Long: `Project a stored character onto the fillable 5e sheet fields and write them out.

--format pdf (the default) fills the form fields of a PDF character sheet template.
--format xlsx writes a workbook: with a template the values go into its mapped cells,
without one a two-column field/value workbook is produced.
--format json (or --json) writes the field map instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := sheetFormat
		if format == "" {
			format = cfg.Sheet.Format
		}
		if sheetJSON {
			format = config.SheetJSON
		}
		switch format {
		case config.SheetPDF, config.SheetWorkbook, config.SheetJSON:
		default:
			return errors.InvalidArgumentf("unknown sheet format %q", format)
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.service.ProjectSheet(cmd.Context(), &character.ProjectSheetInput{
			CharacterID: args[0],
			PlayerName:  sheetPlayerName,
		})
		if err != nil {
			return err
		}

		switch format {
		case config.SheetJSON:
			return writeSheetJSON(cmd, out)
		case config.SheetWorkbook:
			return writeSheetWorkbook(cmd, out)
		default:
			return writeSheetPDF(cmd, out)
		}
	},
}

func init() {
	sheetCmd.Flags().StringVar(&sheetFormat, "format", "", "output format: pdf, xlsx or json (defaults to sheet.format)")
	sheetCmd.Flags().StringVar(&sheetTemplate, "template", "",
		"template for the chosen format (defaults to sheet.template_path for pdf, sheet.workbook_template for xlsx)")
	sheetCmd.Flags().StringVarP(&sheetOutput, "output", "o", "", "output file (default derived from the character name)")
	sheetCmd.Flags().StringVar(&sheetPlayerName, "player", "", "player name written to the sheet")
	sheetCmd.Flags().BoolVar(&sheetJSON, "json", false, "shorthand for --format json")
}

func writeSheetJSON(cmd *cobra.Command, out *character.ProjectSheetOutput) error {
	sink := sheet.NewMapSink(sheet.FieldNames()...)
	if failed := out.Fields.Apply(sink); failed > 0 {
		slog.Warn("Some sheet fields were not written", "failed", failed)
	}

	data, err := json.MarshalIndent(sink.Values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sheet fields: %w", err)
	}

	if sheetOutput == "" || sheetOutput == "-" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(sheetOutput, data, 0o600)
}

func writeSheetPDF(cmd *cobra.Command, out *character.ProjectSheetOutput) error {
	template := sheetTemplate
	if template == "" {
		template = cfg.Sheet.TemplatePath
	}
	if template == "" {
		return errors.InvalidArgument("a PDF template is required: pass --template or set sheet.template_path")
	}

	form, err := pdfform.Open(template)
	if err != nil {
		return err
	}

	if failed := out.Fields.Apply(form); failed > 0 {
		slog.Warn("Some sheet fields were not written", "failed", failed)
	}

	path := sheetOutput
	if path == "" {
		path = naming.SheetFilename(out.CharacterName, pdfform.Extension)
	}
	if err := form.SaveAs(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sheet for %s to %s\n", out.CharacterName, path)
	return nil
}

func writeSheetWorkbook(cmd *cobra.Command, out *character.ProjectSheetOutput) error {
	template := sheetTemplate
	if template == "" {
		template = cfg.Sheet.WorkbookTemplate
	}

	var (
		book *workbook.Workbook
		err  error
	)
	if template != "" {
		book, err = workbook.Open(template)
	} else {
		book, err = workbook.New()
	}
	if err != nil {
		return err
	}
	defer func() { _ = book.Close() }()

	if failed := out.Fields.Apply(book); failed > 0 {
		slog.Warn("Some sheet fields were not written", "failed", failed)
	}

	path := sheetOutput
	if path == "" {
		path = naming.SheetFilename(out.CharacterName, workbook.Extension)
	}
	if err := book.SaveAs(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sheet for %s to %s\n", out.CharacterName, path)
	return nil
}
