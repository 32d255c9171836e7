package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"parkgrip/internal/domain"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var (
		search    string
		amenities []string
		only      string
		format    string
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "Print the parks matching a search and amenity filter",
		Long: "Loads the dataset once, applies the same search and amenity filters as the\n" +
			"interactive directory and prints the visible parks in their original order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			dir := sess.Directory()
			if err := dir.Load(cmd.Context()); err != nil {
				return err
			}

			dir.SetSearchTerm(search)
			for _, a := range amenities {
				dir.ToggleAmenity(a)
			}
			if only != "" {
				dir.FilterByAmenity(only)
			}

			parks := dir.VisibleParks()
			if len(parks) == 0 && format == "text" {
				fmt.Fprintln(cmd.ErrOrStderr(), "No parks match.")
				return nil
			}
			return writeParks(cmd.OutOrStdout(), parks, format)
		},
	}

	c.Flags().StringVarP(&search, "search", "q", "", "case-insensitive substring of the park name")
	c.Flags().StringSliceVarP(&amenities, "amenity", "a", nil, "require an amenity (repeatable, all must match)")
	c.Flags().StringVar(&only, "only", "", "filter by exactly one amenity")
	c.Flags().StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")
	c.MarkFlagsMutuallyExclusive("amenity", "only")
	return c
}

func writeParks(w io.Writer, parks []domain.Park, format string) error {
	switch format {
	case "text":
		for _, p := range parks {
			if len(p.Amenities) == 0 {
				fmt.Fprintln(w, p.Name)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\n", p.Name, strings.Join(p.Amenities, ", "))
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(parks)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(parks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
