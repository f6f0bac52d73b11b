package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/restype"
)

var typesLegacy bool

// TypesCmd represents the types command
var TypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported resource types",
	Long: `List the resource types r2gen generates groups for, in the order the
groups appear in generated classes, with the annotation each constant carries.
Symbols of any other type are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return pterm.DefaultTable.WithHasHeader().WithData(typesTable(typesLegacy)).Render()
	},
}

func init() {
	TypesCmd.Flags().BoolVar(&typesLegacy, "legacy", false, "Show android.support.annotation names")
}

func typesTable(legacy bool) pterm.TableData {
	data := pterm.TableData{{"Type", "Annotation"}}
	for _, t := range restype.All() {
		data = append(data, []string{t.String(), t.Annotation(legacy)})
	}
	return data
}
