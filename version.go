package sdl2

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Symbol names the version string is derived from.
const (
	symVersion        = "version"
	symMajorVersion   = "SDL_MAJOR_VERSION"
	symMinorVersion   = "SDL_MINOR_VERSION"
	symPatchLevel     = "SDL_PATCHLEVEL"
	symRevisionNumber = "SDL_GetRevisionNumber"
)

// resolveVersion returns the table's own "version" string if it has one,
// otherwise "<major>.<minor>.<patch> (<revision>)". The revision is left out
// when the library has no SDL_GetRevisionNumber.
func resolveVersion(t *SymbolTable) (string, error) {
	if v, ok := t.Get(symVersion).(string); ok && v != "" {
		return v, nil
	}

	release, err := releaseVersion(t)
	if err != nil {
		return "", err
	}

	switch rev := t.Get(symRevisionNumber).(type) {
	case func() int32:
		return fmt.Sprintf("%s (%d)", release, rev()), nil
	case func() int:
		return fmt.Sprintf("%s (%d)", release, rev()), nil
	}
	return release, nil
}

// releaseVersion assembles "<major>.<minor>.<patch>" from the version
// constants.
func releaseVersion(t *SymbolTable) (string, error) {
	var parts [3]int64
	for i, name := range []string{symMajorVersion, symMinorVersion, symPatchLevel} {
		n, ok := asInt(t.Get(name))
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
		}
		parts[i] = n
	}
	return fmt.Sprintf("%d.%d.%d", parts[0], parts[1], parts[2]), nil
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

// canonicalVersion converts "2.0.10" or "v2.0.10 (rev)" to semver form.
func canonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", v)
	}
	return semver.Canonical(v), nil
}

// checkMinVersion fails when version is older than minVersion.
func checkMinVersion(version, minVersion string) error {
	if minVersion == "" {
		return nil
	}
	want, err := canonicalVersion(minVersion)
	if err != nil {
		return err
	}
	have, err := canonicalVersion(version)
	if err != nil {
		return err
	}
	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrVersionTooOld, strings.TrimPrefix(have, "v"), strings.TrimPrefix(want, "v"))
	}
	return nil
}
