package hydrate

import (
	"os"
	"path/filepath"
)

// Resolution records where a marker's source document was looked up.
type Resolution struct {
	// Primary is the marker's directory joined with its reference.
	Primary string

	// Fallback is Primary rewritten into the canonical sibling checkout.
	Fallback string

	// Source is the location that holds an existing regular file, or ""
	// when neither does.
	Source string

	// UsedFallback is true when Source is the fallback location.
	UsedFallback bool
}

// Found reports whether a source document exists for the marker.
func (r Resolution) Found() bool {
	return r.Source != ""
}

// FallbackPath rewrites a resolved source path into the canonical sibling
// checkout: the directory segment containing the file is replaced by
// CanonicalProjectDir, keeping the final filename. The rewrite starts from
// the resolved path, not the marker's location.
func FallbackPath(primary string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(primary)), CanonicalProjectDir, filepath.Base(primary))
}

// Resolve locates the source document for a marker reference. The primary
// location is tried first, then the canonical-sibling fallback. A path that
// exists but is not a regular file counts as missing.
func Resolve(markerDir, ref string) Resolution {
	primary := filepath.Join(markerDir, ref)
	res := Resolution{
		Primary:  primary,
		Fallback: FallbackPath(primary),
	}

	if isRegular(res.Primary) {
		res.Source = res.Primary
		return res
	}

	if isRegular(res.Fallback) {
		res.Source = res.Fallback
		res.UsedFallback = true
	}

	return res
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
