package types

type OutputStyle int

const (
	StyleHuman OutputStyle = iota
	StyleHumanVerbose
	StyleMachineJSON
)

// FileConfig mirrors the optional logpush.yml file. Every field can be
// overridden by its corresponding environment variable.
type FileConfig struct {
	APIToken    string   `yaml:"api_token,omitempty"`
	EndpointURL string   `yaml:"endpoint_url,omitempty"`
	AuthHeader  string   `yaml:"auth_header,omitempty"`
	Datasets    []string `yaml:"datasets,omitempty"`
}

// Initiator stores information about who started a run - a user at a
// terminal or a service account in a pipeline.
type Initiator struct {
	Type   string `json:"type"`   // "user", "ci"
	Id     string `json:"id"`     // "dgilmore"
	Tenant string `json:"tenant"` // hostname
}
