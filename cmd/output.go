package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutputFormat(format string) error {
	switch format {
	case outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use json or yaml)", format)
	}
}

func writeOutput(cmd *cobra.Command, format string, v any) error {
	return encodeOutput(cmd.OutOrStdout(), format, v)
}

func encodeOutput(w io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		// Round-trip through JSON so YAML keys follow the API's json tags.
		generic, err := toGeneric(v)
		if err != nil {
			return err
		}
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(generic); err != nil {
			return fmt.Errorf("encode yaml output: %w", err)
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encode json output: %w", err)
		}
		return nil
	}
}

func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}

	return generic, nil
}
