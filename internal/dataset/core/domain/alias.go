package domain

// AliasTable maps a geometry label to the dataset's entity identifier.
// Labels absent from the table are already entity identifiers.
type AliasTable map[string]string

// DefaultAliases lists the known spelling differences between the province
// geometry collection and the case dataset.
func DefaultAliases() AliasTable {
	return AliasTable{
		"Jakarta Raya":     "DKI Jakarta",
		"Yogyakarta":       "Daerah Istimewa Yogyakarta",
		"North Kalimantan": "Kalimantan Utara",
		"Bangka-Belitung":  "Kepulauan Bangka Belitung",
	}
}

// Resolve is total: unknown labels map to themselves.
func (a AliasTable) Resolve(label string) string {
	if id, ok := a[label]; ok {
		return id
	}
	return label
}
