package factory

import (
	_ "embed"

	"github.com/warp/staff-registry/staff"
)

//go:embed demo.yaml
var demoRoster []byte

// DemoRosterYAML returns the bundled demo roster document.
func DemoRosterYAML() []byte {
	out := make([]byte, len(demoRoster))
	copy(out, demoRoster)
	return out
}

// LoadDemo loads the bundled demo roster into reg.
func (f *RosterFactory) LoadDemo(reg *staff.Registry) (LoadReport, error) {
	roster, err := f.Parse(demoRoster)
	if err != nil {
		return LoadReport{}, err
	}
	return f.Load(reg, roster), nil
}
