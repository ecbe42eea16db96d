// Package serialization renders the collected documentation graph in
// machine-readable formats for downstream tooling.
package serialization

import (
	"fmt"

	"doclens/errors"
	"doclens/pkg/docmodel"
)

// ObjectDump is the flat wire form of one documentation object. Fields
// that do not apply to the object's kind stay empty and are omitted.
type ObjectDump struct {
	Path       string   `json:"path" yaml:"path"`
	Kind       string   `json:"kind" yaml:"kind"`
	Name       string   `json:"name" yaml:"name"`
	File       string   `json:"file,omitempty" yaml:"file,omitempty"`
	Line       int      `json:"line,omitempty" yaml:"line,omitempty"`
	Docstring  string   `json:"docstring,omitempty" yaml:"docstring,omitempty"`
	Dynamic    bool     `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`
	Visibility string   `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Scope      string   `json:"scope,omitempty" yaml:"scope,omitempty"`
	Superclass string   `json:"superclass,omitempty" yaml:"superclass,omitempty"`
	Mixins     []string `json:"mixins,omitempty" yaml:"mixins,omitempty"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Value      string   `json:"value,omitempty" yaml:"value,omitempty"`
	Readable   bool     `json:"readable,omitempty" yaml:"readable,omitempty"`
	Writable   bool     `json:"writable,omitempty" yaml:"writable,omitempty"`
}

// Exporter defines the interface for rendering a documentation registry.
type Exporter interface {
	// Export renders every registered object in path order
	Export(objects *docmodel.Registry) ([]byte, error)

	// GetName returns the name of the export format
	GetName() string
}

// ExporterRegistry holds the available exporters by format name.
type ExporterRegistry struct {
	exporters map[string]Exporter
}

// NewExporterRegistry creates an empty exporter registry.
func NewExporterRegistry() *ExporterRegistry {
	return &ExporterRegistry{exporters: make(map[string]Exporter)}
}

// RegisterExporter adds an exporter under its format name.
func (r *ExporterRegistry) RegisterExporter(exporter Exporter) {
	r.exporters[exporter.GetName()] = exporter
}

// GetExporter returns the exporter for a format name.
func (r *ExporterRegistry) GetExporter(name string) (Exporter, error) {
	exporter, ok := r.exporters[name]
	if !ok {
		return nil, errors.NewUserError("UNKNOWN_FORMAT",
			fmt.Sprintf("unknown export format '%s'", name))
	}
	return exporter, nil
}

// NewDefaultExporterRegistry creates a registry with every built-in
// exporter registered.
func NewDefaultExporterRegistry() *ExporterRegistry {
	registry := NewExporterRegistry()
	registry.RegisterExporter(NewJSONExporter())
	registry.RegisterExporter(NewYAMLExporter())
	return registry
}

// Export renders the registry using the named format.
func Export(objects *docmodel.Registry, format string) ([]byte, error) {
	exporter, err := NewDefaultExporterRegistry().GetExporter(format)
	if err != nil {
		return nil, err
	}
	return exporter.Export(objects)
}

// dump flattens the registry to wire form, in path order.
func dump(objects *docmodel.Registry) []ObjectDump {
	dumps := make([]ObjectDump, 0, objects.Count())
	for _, obj := range objects.All() {
		dumps = append(dumps, dumpObject(obj))
	}
	return dumps
}

func dumpObject(obj docmodel.Object) ObjectDump {
	base := obj.Base()
	d := ObjectDump{
		Path:      obj.Path(),
		Kind:      obj.Kind(),
		Name:      base.Name,
		File:      base.File,
		Line:      base.Line,
		Docstring: base.Docstring,
		Dynamic:   base.Dynamic,
	}

	switch o := obj.(type) {
	case *docmodel.ModuleObject:
		d.Mixins = referencePaths(o.Mixins)
	case *docmodel.ClassObject:
		if o.Superclass != nil {
			d.Superclass = o.Superclass.Path()
		}
		d.Mixins = referencePaths(o.Mixins)
	case *docmodel.MethodObject:
		d.Visibility = o.Visibility.String()
		d.Scope = o.Scope.String()
		d.Parameters = o.Parameters
	case *docmodel.AttributeObject:
		d.Visibility = o.Visibility.String()
		d.Scope = o.Scope.String()
		d.Readable = o.Readable
		d.Writable = o.Writable
	case *docmodel.ConstantObject:
		d.Value = o.Value
	}

	return d
}

func referencePaths(refs []*docmodel.Reference) []string {
	if len(refs) == 0 {
		return nil
	}
	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		paths = append(paths, ref.Path())
	}
	return paths
}
