package variant

// FormatVersion identifies the version of the JSON export document format.
type FormatVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// Format wraps the document format version in the JSON exports.
type Format struct {
	Version FormatVersion `json:"version"`
}

// SingleExport is the JSON document describing one variant.
type SingleExport struct {
	Format  Format   `json:"format"`
	Variant *Variant `json:"variant"`
	Version string   `json:"version"`
}

// AllExport is the JSON document describing all the variants along with
// the detection order.
type AllExport struct {
	Format   Format              `json:"format"`
	Order    []string            `json:"order"`
	Variants map[string]*Variant `json:"variants"`
	Version  string              `json:"version"`
}

func currentFormat() Format {
	return Format{Version: FormatVersion{Major: FormatMajor, Minor: FormatMinor}}
}

// ExportSingle builds the JSON export document for a single variant.
func ExportSingle(vnt *Variant) SingleExport {
	return SingleExport{
		Format:  currentFormat(),
		Variant: vnt,
		Version: Version,
	}
}

// ExportAll builds the JSON export document for the whole registry.
func (r *Registry) ExportAll() AllExport {
	order := make([]string, 0, len(r.order))
	for _, vnt := range r.order {
		order = append(order, vnt.Name)
	}
	return AllExport{
		Format:   currentFormat(),
		Order:    order,
		Variants: r.variants,
		Version:  Version,
	}
}
