// ABOUTME: pyenv version listing, numeric sorting, and prefix matching
// ABOUTME: Versions sort by integer components, not lexicographically

package pyenv

import (
	"sort"
	"strconv"
	"strings"
)

// parseVersions splits pyenv output into non-empty version lines.
func parseVersions(out string) []string {
	var versions []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			versions = append(versions, line)
		}
	}
	return versions
}

// sortVersions orders version strings numerically by their integer
// components, so "3.10.0" sorts after "3.9.0". Non-numeric components
// count as zero.
func sortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) < 0
	})
}

// compareVersions compares two dotted version strings component-wise.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		av := componentValue(as[i])
		bv := componentValue(bs[i])
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	// Equal prefix: the shorter version sorts first ("3.6" < "3.6.1").
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

func componentValue(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// matchVersion scans sorted versions for entries starting with the
// requested MAJOR.MINOR prefix. The last match wins, which after the
// numeric sort is the greatest matching version.
func matchVersion(sorted []string, prefix string) string {
	var match string
	for _, v := range sorted {
		if strings.HasPrefix(v, prefix) {
			match = v
		}
	}
	return match
}
