package snowflakedriver

import (
	"errors"
	"sync"
	"testing"
)

type mockDriverConstructor struct {
	mu       sync.Mutex
	calls    []ADBCVersion
	LoadFunc func(version ADBCVersion) (*Driver, error)
}

func (m *mockDriverConstructor) Construct(version ADBCVersion) (*Driver, error) {
	m.mu.Lock()
	m.calls = append(m.calls, version)
	m.mu.Unlock()
	if m.LoadFunc == nil {
		return nil, errors.New("unexpected call Construct")
	}
	return m.LoadFunc(version)
}

func (m *mockDriverConstructor) Calls() []ADBCVersion {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ADBCVersion{}, m.calls...)
}

// useMockDriverConstructor installs m as DriverConstructor for the duration of t.
func useMockDriverConstructor(t *testing.T, m *mockDriverConstructor) {
	t.Helper()
	prev := DriverConstructor
	DriverConstructor = m.Construct
	t.Cleanup(func() {
		DriverConstructor = prev
	})
}

func lookupFromMap(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}
