package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-companion/internal/services/character"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export CHARACTER_ID",
	Short: "Export a stored character as a companion document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.service.ExportCharacter(cmd.Context(), &character.ExportCharacterInput{CharacterID: args[0]})
		if err != nil {
			return err
		}

		if exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(append(out.Data, '\n'))
			return err
		}

		path := exportOutput
		if path == "" {
			path = out.Filename
		}
		if err := os.WriteFile(path, out.Data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", out.Export.Name, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, - for stdout (default derived from the character name)")
}
