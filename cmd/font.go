package cmd

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/marcus/kanafont/internal/catalog"
	"github.com/marcus/kanafont/internal/output"
)

const maxSuggestions = 3

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Read or change the stored font without the picker",
}

var fontGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the selected font",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opened, err := openStore(cfg.Backend, dataDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer opened.Close()

		fmt.Fprintln(cmd.OutOrStdout(), opened.Store.Font())
		return nil
	},
}

var fontSetCmd = &cobra.Command{
	Use:   "set NAME",
	Short: "Select a font from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, ok := resolveFontName(args[0])
		if !ok {
			err := fmt.Errorf("unknown font %q", args[0])
			output.Error("%v", err)
			if s := suggestFonts(args[0]); len(s) > 0 {
				output.Warning("did you mean: %s", strings.Join(s, ", "))
			}
			return err
		}

		opened, err := openStore(cfg.Backend, dataDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer opened.Close()

		opened.Store.SetFont(name)
		fmt.Fprintln(cmd.OutOrStdout(), output.Success("FONT %s", name))
		return nil
	},
}

var fontListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the font catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opened, err := openStore(cfg.Backend, dataDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer opened.Close()

		numbered, _ := cmd.Flags().GetBool("numbered")
		names := catalog.Names()
		fmt.Fprintf(cmd.OutOrStdout(), "FONTS (%d)\n", len(names))
		fmt.Fprintln(cmd.OutOrStdout(), output.RenderFontListString(names, opened.Store.Font(),
			output.FontListOptions{Numbered: numbered}))
		return nil
	},
}

func init() {
	fontListCmd.Flags().BoolP("numbered", "n", false, "number the entries")

	fontCmd.AddCommand(fontGetCmd, fontSetCmd, fontListCmd)
	rootCmd.AddCommand(fontCmd)
}

// resolveFontName returns the catalog spelling of name, ignoring case.
func resolveFontName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, n := range catalog.Names() {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// suggestFonts returns the closest catalog names by fuzzy score.
func suggestFonts(name string) []string {
	matches := fuzzy.Find(name, catalog.Names())
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
