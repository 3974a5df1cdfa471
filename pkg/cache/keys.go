package cache

// layoutVersion is mixed into every artifact key. Bump it whenever the
// layout or drawing changes so stale images are not served.
const layoutVersion = 1

// ArtifactKeyOpts are the render settings that affect the output bytes.
type ArtifactKeyOpts struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`
	Font          string `json:"font,omitempty"`
	FontHash      string `json:"font_hash,omitempty"` // content hash of the font file
	MaxIterations int    `json:"max_iterations,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for an image rendered from the spec with
	// content hash specHash.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutVersion, specHash, opts)
}
