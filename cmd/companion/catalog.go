package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/services/character"
)

var catalogType string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog commands",
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search NAME",
	Short: "Resolve a name against the configured catalogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		out, err := a.service.ResolveItem(cmd.Context(), &character.ResolveItemInput{
			Name: args[0],
			Type: catalogType,
		})
		if err != nil {
			return err
		}

		if out.Item == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No catalog has %q\n", args[0])
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "Name\t%s\n", out.Item.Name)
		fmt.Fprintf(tw, "Type\t%s\n", out.Item.Type)
		if out.Item.Img != "" {
			fmt.Fprintf(tw, "Icon\t%s\n", out.Item.Img)
		}
		if desc := out.Item.Description(); desc != "" {
			fmt.Fprintf(tw, "Description\t%d characters\n", len(desc))
		}
		return tw.Flush()
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured catalogs in search order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tName\tKind\tRecords")
		for i, catalog := range a.catalogs.List {
			index, err := catalog.GetIndex(cmd.Context(), compendium.IndexFields)
			records := fmt.Sprint(len(index))
			if err != nil {
				records = "error: " + err.Error()
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, catalog.Name(), cfg.Catalogs[i].Kind, records)
		}
		return tw.Flush()
	},
}

func init() {
	catalogSearchCmd.Flags().StringVar(&catalogType, "type", "", "item type the record must have (weapon, spell, race, ...)")

	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
