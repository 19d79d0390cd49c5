// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ManifestItem describes one input file in a session manifest. Zero
// values mean "use the ingestion defaults": include=true, order assigned
// at the end of the sequence, group B.
type ManifestItem struct {
	// Path is the filesystem path to the input file.
	Path string `json:"path" yaml:"path"`

	// Name overrides the display name; defaults to the path basename.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Include excludes the item from generation when set to false.
	Include *bool `json:"include,omitempty" yaml:"include,omitempty"`

	// Order overrides the assigned sort key when non-zero.
	Order int `json:"order,omitempty" yaml:"order,omitempty"`

	// Group assigns the manual bucket ("A" or "B").
	Group GroupLabel `json:"group,omitempty" yaml:"group,omitempty"`
}

// Manifest is the YAML description of one build session: the inputs in
// sequence plus suggested output names. It is read-only input plumbing;
// the session itself lives in memory and is never written back.
type Manifest struct {
	// Output is the suggested filename for a combined build.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// OutputA and OutputB are the suggested filenames for a grouped build.
	OutputA string `json:"output_a,omitempty" yaml:"output_a,omitempty"`
	OutputB string `json:"output_b,omitempty" yaml:"output_b,omitempty"`

	// Items lists the inputs in ingestion order.
	Items []ManifestItem `json:"items" yaml:"items"`
}
