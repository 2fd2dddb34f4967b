package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/services/character"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a companion export into the host store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.service.ImportCharacter(cmd.Context(), &character.ImportCharacterInput{Data: data})
		if err != nil {
			if offset, ok := errors.Offset(err); ok {
				return errors.Wrapf(err, "%s is not a valid export (byte %d)", args[0], offset)
			}
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Imported %s as %s (%d items)\n", out.Character.Name, out.Character.ID, len(out.Items))
		if len(out.Unresolved) > 0 {
			fmt.Fprintf(w, "\nPlaceholders created for %d unresolved items:\n", len(out.Unresolved))
			for _, name := range out.Unresolved {
				fmt.Fprintf(w, "  - %s\n", name)
			}
		}
		return nil
	},
}
