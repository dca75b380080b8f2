package snowflakedriver

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// ADBCVersion is the version of the ADBC API a driver instance presents.
type ADBCVersion int

const (
	ADBCVersion1_0_0 ADBCVersion = iota + 1
	ADBCVersion1_1_0
)

// DefaultADBCVersion is used when the builder carries no explicit version.
const DefaultADBCVersion = ADBCVersion1_1_0

type adbcVersionEntry struct {
	version ADBCVersion
	code    int32
	names   []string
}

var adbcVersionEntries = []adbcVersionEntry{
	{version: ADBCVersion1_0_0, code: 1000000, names: []string{"1.0.0", "1_0_0", "100"}},
	{version: ADBCVersion1_1_0, code: 1001000, names: []string{"1.1.0", "1_1_0", "110"}},
}

func SupportedADBCVersions() []ADBCVersion {
	return lo.Map(adbcVersionEntries, func(e adbcVersionEntry, _ int) ADBCVersion {
		return e.version
	})
}

func lookupADBCVersionEntry(v ADBCVersion) (adbcVersionEntry, bool) {
	return lo.Find(adbcVersionEntries, func(e adbcVersionEntry) bool {
		return e.version == v
	})
}

// ParseADBCVersion accepts "1.0.0", "1_0_0", "100" (and the 1.1.0 equivalents)
// as well as the numeric C API codes such as "1001000".
func ParseADBCVersion(s string) (ADBCVersion, error) {
	entry, ok := lo.Find(adbcVersionEntries, func(e adbcVersionEntry) bool {
		return lo.Contains(e.names, s) || strconv.FormatInt(int64(e.code), 10) == s
	})
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownADBCVersion, s)
	}
	return entry.version, nil
}

func (v ADBCVersion) IsValid() bool {
	_, ok := lookupADBCVersionEntry(v)
	return ok
}

func (v ADBCVersion) String() string {
	entry, ok := lookupADBCVersionEntry(v)
	if !ok {
		return fmt.Sprintf("ADBCVersion(%d)", int(v))
	}
	return entry.names[0]
}

// Code returns the value of the ADBC_VERSION_* constant of the C API.
func (v ADBCVersion) Code() int32 {
	entry, ok := lookupADBCVersionEntry(v)
	if !ok {
		return 0
	}
	return entry.code
}

func (v ADBCVersion) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownADBCVersion, int(v))
	}
	return []byte(v.String()), nil
}

func (v *ADBCVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseADBCVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
