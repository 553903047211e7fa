package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ManagerConstraint returns the raw "uvm" version constraint, if the
// manifest declares one.
func (d *Document) ManagerConstraint() (string, bool) {
	raw, ok := d.raw(KeyManager)
	if !ok {
		return "", false
	}
	var c string
	if err := json.Unmarshal(raw, &c); err != nil {
		return "", false
	}
	return c, true
}

// CheckManager verifies that the running uvm version satisfies the
// manifest's "uvm" constraint. Manifests without a constraint and
// development builds (non-semver versions such as "dev") always pass.
func (d *Document) CheckManager(version string) error {
	raw, ok := d.ManagerConstraint()
	if !ok {
		return nil
	}

	constraint, err := semver.NewConstraint(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid uvm constraint %q: %v", ErrMalformed, raw, err)
	}

	current, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil
	}

	if !constraint.Check(current) {
		return fmt.Errorf("%w: %s is required, running %s", ErrIncompatibleManager, raw, current)
	}
	return nil
}
