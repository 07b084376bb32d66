// internal/output/yaml.go
package output

import (
	"io"

	"alnedit/internal/jobs"
	"gopkg.in/yaml.v3"
)

// WriteYAML writes one YAML document holding a sequence of v1 records.
func WriteYAML(w io.Writer, list []jobs.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPIList(list)); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
