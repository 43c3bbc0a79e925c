package hydrate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
)

// Dehydrate replaces a hydrated document with a replacement marker holding
// ref, the inverse of Run for a single file. The reference must resolve
// (primary or fallback) from the document's directory so a later hydration
// can restore it. The marker is fully written before the document is
// removed. Returns the marker path.
func Dehydrate(target, ref string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", errors.ValidationError(fmt.Sprintf("cannot read target %s: %v", target, err))
	}
	if !info.Mode().IsRegular() {
		return "", errors.ValidationError(fmt.Sprintf("not a regular file: %s", target))
	}
	if !strings.HasSuffix(target, TargetExt) {
		return "", errors.ValidationError(fmt.Sprintf("target must be a %s document: %s", TargetExt, target))
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.ValidationError("source reference must not be empty")
	}
	if filepath.IsAbs(ref) {
		return "", errors.ValidationError(fmt.Sprintf("source reference must be relative: %s", ref))
	}

	dir := filepath.Dir(target)
	markerPath := filepath.Join(dir, MarkerName(filepath.Base(target)))

	if _, err := os.Stat(markerPath); err == nil {
		return "", errors.ValidationError(fmt.Sprintf("marker already exists: %s", markerPath))
	}

	res := Resolve(dir, ref)
	if !res.Found() {
		return "", errors.SourceNotFound(markerPath, res.Primary)
	}
	if filepath.Clean(res.Source) == filepath.Clean(target) {
		return "", errors.ValidationError(fmt.Sprintf("source reference resolves to the target itself: %s", ref))
	}

	if err := stageWrite(markerPath, []byte(ref+"\n")); err != nil {
		return "", errors.WriteFailure("write", markerPath, err)
	}

	if err := os.Remove(target); err != nil {
		return "", errors.WriteFailure("remove", target, err)
	}

	logging.Debug("dehydrated document", "target", target, "marker", markerPath, "ref", ref)
	return markerPath, nil
}
