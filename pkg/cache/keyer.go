package cache

// Keyer derives cache keys from content hashes and the options that affect
// the cached value.
type Keyer interface {
	// LayoutKey returns the key for a layout computed from a scene.
	LayoutKey(sceneHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for an artifact rendered from a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the engine options that change a layout.
type LayoutKeyOpts struct {
	Force   float64 `json:"force"`
	MaxIter int     `json:"max_iter"`
	Seed    uint64  `json:"seed"`
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Anchors   bool   `json:"anchors"`
	Leaders   bool   `json:"leaders"`
	Conflicts bool   `json:"conflicts"`
}

// DefaultKeyer produces keys of the form "<type>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(sceneHash string, opts LayoutKeyOpts) string {
	return hashKey(KeyTypeLayout, sceneHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, layoutHash, opts)
}
