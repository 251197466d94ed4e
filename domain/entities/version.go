package entities

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionReq is a semantic version requirement such as `^1.2`, `>=1, <2` or `*`.
// A bare version (`1.2.3`) is a caret requirement.
type VersionReq struct {
	raw         string
	constraints *semver.Constraints
}

// ParseVersionReq parses a version requirement.
func ParseVersionReq(s string) (VersionReq, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return VersionReq{}, fmt.Errorf("version requirement cannot be empty")
	}

	if strings.Contains(raw, "||") {
		return VersionReq{}, fmt.Errorf("unexpected `||` in `%s`: comparators are separated by `,`", raw)
	}

	parts := strings.Split(raw, ",")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return VersionReq{}, fmt.Errorf("unexpected empty comparator in `%s`", raw)
		}
		if err := checkComparator(part); err != nil {
			return VersionReq{}, err
		}
		if isBareVersion(part) {
			part = "^" + part
		}
		parts[i] = part
	}

	c, err := semver.NewConstraint(strings.Join(parts, ", "))
	if err != nil {
		return VersionReq{}, err
	}
	return VersionReq{raw: raw, constraints: c}, nil
}

// comparatorOps are the operators a comparator may start with.
var comparatorOps = map[string]struct{}{
	"": {}, "=": {}, ">": {}, ">=": {}, "<": {}, "<=": {}, "~": {}, "^": {},
}

// checkComparator rejects comparator syntax outside the Cargo grammar that
// the constraint parser would otherwise accept: unknown operators, a `v`
// prefix and space-separated comparators.
func checkComparator(part string) error {
	op := part[:len(part)-len(strings.TrimLeft(part, "=<>~^"))]
	if _, ok := comparatorOps[op]; !ok {
		return fmt.Errorf("unexpected operator `%s` in comparator `%s`", op, part)
	}

	version := strings.TrimSpace(part[len(op):])
	switch {
	case version == "":
		return fmt.Errorf("missing version in comparator `%s`", part)
	case strings.ContainsAny(version, " \t"):
		return fmt.Errorf("unexpected whitespace in comparator `%s`: comparators are separated by `,`", part)
	case version[0] == 'v' || version[0] == 'V':
		return fmt.Errorf("unexpected `%c` prefix in comparator `%s`", version[0], part)
	}
	return nil
}

// isBareVersion reports whether a comparator has no operator and no wildcard.
func isBareVersion(part string) bool {
	if part[0] < '0' || part[0] > '9' {
		return false
	}
	return !strings.ContainsAny(part, "*xX")
}

// Matches reports whether v satisfies the requirement.
func (r VersionReq) Matches(v *semver.Version) bool {
	if r.constraints == nil || v == nil {
		return false
	}
	return r.constraints.Check(v)
}

// IsZero reports whether the requirement is unset.
func (r VersionReq) IsZero() bool {
	return r.constraints == nil
}

// String returns the requirement as written in the manifest.
func (r VersionReq) String() string {
	return r.raw
}

// MarshalText implements encoding.TextMarshaler.
func (r VersionReq) MarshalText() ([]byte, error) {
	return []byte(r.raw), nil
}
