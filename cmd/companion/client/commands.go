package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-companion/internal/handlers/companion/v1alpha1"
)

var (
	playerName  string
	listLimit   int
	resolveType string
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a companion export through the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return call(cmd, v1alpha1.MethodImportCharacter, map[string]any{"data": string(data)})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export CHARACTER_ID",
	Short: "Export a stored character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.MethodExportCharacter, map[string]any{"characterId": args[0]})
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet CHARACTER_ID",
	Short: "Project a stored character onto sheet fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.MethodProjectSheet, map[string]any{
			"characterId": args[0],
			"playerName":  playerName,
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get CHARACTER_ID",
	Short: "Get a stored character and its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.MethodGetCharacter, map[string]any{"characterId": args[0]})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.MethodListCharacters, map[string]any{"limit": listLimit})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete CHARACTER_ID",
	Short: "Delete a stored character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.MethodDeleteCharacter, map[string]any{"characterId": args[0]})
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME",
	Short: "Resolve a name against the server's catalogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.MethodResolveItem, map[string]any{
			"name": args[0],
			"type": resolveType,
		})
	},
}

func init() {
	sheetCmd.Flags().StringVar(&playerName, "player", "", "player name written to the sheet")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum characters to list (0 for all)")
	resolveCmd.Flags().StringVar(&resolveType, "type", "", "item type the record must have")
}
