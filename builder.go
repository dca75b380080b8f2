package snowflakedriver

import (
	"net/url"

	"github.com/samber/lo"
)

// Builder collects the parameters used to load a Driver.
// A nil ADBCVersion is resolved to DefaultADBCVersion by TryLoad.
// Copies share the pointer: set the version with WithADBCVersion, which
// allocates a new one, rather than writing through ADBCVersion.
type Builder struct {
	ADBCVersion *ADBCVersion
}

// NewBuilder returns a Builder with no version set.
func NewBuilder() Builder {
	return Builder{}
}

// FromEnv returns a Builder seeded from ADBC_SNOWFLAKE_ADBC_VERSION.
// A .env file is loaded first when present. Unset or unparseable values
// leave the version unset; FromEnv never fails.
func FromEnv(opts ...EnvOption) Builder {
	o := defaultEnvOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.dotenv != nil {
		if err := o.dotenv(); err != nil {
			debugLogger.Printf("dotenv not loaded: %v", err)
		}
	}
	cfg, err := readEnvConfig(o.lookup)
	if err != nil {
		debugLogger.Printf("read environment: %v", err)
		return NewBuilder()
	}
	b := NewBuilder()
	if cfg.ADBCVersion == "" {
		return b
	}
	version, err := ParseADBCVersion(cfg.ADBCVersion)
	if err != nil {
		debugLogger.Printf("ignore %s: %v", ADBCVersionEnv, err)
		return b
	}
	return b.WithADBCVersion(version)
}

// WithADBCVersion overrides any version already set on b.
func (b Builder) WithADBCVersion(version ADBCVersion) Builder {
	b.ADBCVersion = lo.ToPtr(version)
	return b
}

func (b Builder) resolvedADBCVersion() ADBCVersion {
	return lo.FromPtrOr(b.ADBCVersion, DefaultADBCVersion)
}

func (b Builder) String() string {
	params := url.Values{}
	if b.ADBCVersion != nil {
		params.Set("adbc_version", b.ADBCVersion.String())
	}
	return params.Encode()
}
