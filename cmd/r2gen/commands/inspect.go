package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/generate"
	"github.com/teranos/r2gen/restype"
	"github.com/teranos/r2gen/symtab"
	"gopkg.in/yaml.v3"
)

var (
	inspectFormat string
	inspectLegacy bool
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect <R.txt>",
	Short: "Dump the grouped symbols as JSON, YAML or TOML",
	Long: `Read a symbol table and print the model r2gen would generate from:
symbols grouped by resource type in registry order, each group with its
annotation, plus counts of the lines that were skipped.

Examples:
  r2gen inspect app/build/R.txt
  r2gen inspect R.txt --format yaml
  r2gen inspect R.txt --format toml --legacy`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	InspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "json", "Output format: json, yaml, toml")
	InspectCmd.Flags().BoolVar(&inspectLegacy, "legacy", false, "Show android.support.annotation names")
}

// inspectModel is the serialized form of a loaded symbol table.
type inspectModel struct {
	SymbolTable string         `json:"symbol_table" yaml:"symbol_table" toml:"symbol_table"`
	Symbols     int            `json:"symbols" yaml:"symbols" toml:"symbols"`
	Stats       symtab.Stats   `json:"stats" yaml:"stats" toml:"stats"`
	Groups      []inspectGroup `json:"groups" yaml:"groups" toml:"groups"`
}

type inspectGroup struct {
	Type       restype.Type    `json:"type" yaml:"type" toml:"type"`
	Annotation string          `json:"annotation" yaml:"annotation" toml:"annotation"`
	Symbols    []symtab.Symbol `json:"symbols" yaml:"symbols" toml:"symbols"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	model, err := buildInspectModel(generate.New(afero.NewOsFs()), args[0], inspectLegacy)
	if err != nil {
		return err
	}

	data, err := marshalFormat(model, inspectFormat)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func buildInspectModel(g *generate.Generator, path string, legacy bool) (*inspectModel, error) {
	class, stats, err := g.Load(path)
	if err != nil {
		return nil, err
	}

	model := &inspectModel{SymbolTable: path, Symbols: class.Len(), Stats: stats, Groups: []inspectGroup{}}
	for _, group := range class.Groups() {
		model.Groups = append(model.Groups, inspectGroup{
			Type:       group.Type,
			Annotation: group.Type.Annotation(legacy),
			Symbols:    group.Symbols,
		})
	}
	return model, nil
}

// marshalFormat renders v as json, yaml or toml.
func marshalFormat(v interface{}, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal JSON")
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal YAML")
		}
		return data, nil
	case "toml":
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal TOML")
		}
		return data, nil
	default:
		return nil, usageError(fmt.Sprintf("unsupported format: %s", format), "supported formats: json, yaml, toml")
	}
}
