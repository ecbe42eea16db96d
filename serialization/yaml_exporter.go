package serialization

import (
	"gopkg.in/yaml.v3"

	"doclens/errors"
	"doclens/pkg/docmodel"
)

// YAMLExporter renders the documentation graph as YAML.
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAML exporter.
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Export implements Exporter.
func (e *YAMLExporter) Export(objects *docmodel.Registry) ([]byte, error) {
	data, err := yaml.Marshal(dump(objects))
	if err != nil {
		return nil, errors.WrapError(err, "EXPORT_FAILED", "failed to render YAML export")
	}
	return data, nil
}

// GetName returns the name of the export format.
func (e *YAMLExporter) GetName() string {
	return "yaml"
}
