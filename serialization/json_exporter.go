package serialization

import (
	"encoding/json"

	"doclens/errors"
	"doclens/pkg/docmodel"
)

// JSONExporter renders the documentation graph as indented JSON.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export implements Exporter.
func (e *JSONExporter) Export(objects *docmodel.Registry) ([]byte, error) {
	data, err := json.MarshalIndent(dump(objects), "", "  ")
	if err != nil {
		return nil, errors.WrapError(err, "EXPORT_FAILED", "failed to render JSON export")
	}
	return append(data, '\n'), nil
}

// GetName returns the name of the export format.
func (e *JSONExporter) GetName() string {
	return "json"
}
