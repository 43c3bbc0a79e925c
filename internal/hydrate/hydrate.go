package hydrate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
)

// Entry is one marker discovered by Scan, together with its target path and
// source resolution. Err is set when the marker cannot be hydrated as found:
// an invalid marker or an unresolved source.
type Entry struct {
	Marker Marker
	Target string
	Res    Resolution
	Err    error
}

// Report accumulates the results of a hydration run.
type Report struct {
	// Hydrated lists markers whose targets were written and which were
	// then removed.
	Hydrated []Entry

	// Failed lists markers left in place, each with the error that
	// stopped hydration.
	Failed []Entry
}

// Empty reports whether the run found no markers at all.
func (r *Report) Empty() bool {
	return len(r.Hydrated) == 0 && len(r.Failed) == 0
}

// Scan walks root depth-first and resolves every replacement marker without
// modifying the tree. Entries come back in walk order. An unreadable root is
// fatal; unreadable subdirectories are logged and skipped.
func Scan(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("cannot read directory %s", root), err)
	}
	if !info.IsDir() {
		return nil, errors.ValidationError(fmt.Sprintf("not a directory: %s", root))
	}

	var entries []Entry

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logging.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if !d.Type().IsRegular() || !IsMarker(d.Name()) {
			return nil
		}

		entries = append(entries, scanMarker(path))
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("cannot read directory %s", root), walkErr)
	}

	return entries, nil
}

// scanMarker reads one marker file and resolves its source.
func scanMarker(path string) Entry {
	dir := filepath.Dir(path)
	target := filepath.Join(dir, TargetName(filepath.Base(path)))

	marker, err := ReadMarker(path)
	if err != nil {
		return Entry{Marker: Marker{Path: path, Dir: dir}, Target: target, Err: err}
	}

	entry := Entry{
		Marker: marker,
		Target: target,
		Res:    Resolve(marker.Dir, marker.Ref),
	}

	logging.Debug("resolved marker",
		"marker", path,
		"ref", marker.Ref,
		"source", entry.Res.Source,
		"fallback", entry.Res.UsedFallback)

	if !entry.Res.Found() {
		entry.Err = errors.SourceNotFound(path, entry.Res.Primary)
	}

	return entry
}

// Run hydrates every marker under root: each resolved source is copied to
// its target, then the marker is removed. The copy fully lands before the
// marker is touched, so a marker only disappears once its document exists.
// Failures are isolated per marker; the run continues across the rest of
// the tree. Running again over a hydrated tree is a no-op.
func Run(root string) (*Report, error) {
	entries, err := Scan(root)
	if err != nil {
		return nil, err
	}

	report := &Report{}

	for _, entry := range entries {
		if entry.Err != nil {
			report.Failed = append(report.Failed, entry)
			continue
		}

		if err := copyFile(entry.Res.Source, entry.Target); err != nil {
			entry.Err = errors.WriteFailure("write", entry.Target, err)
			report.Failed = append(report.Failed, entry)
			continue
		}

		if err := os.Remove(entry.Marker.Path); err != nil {
			entry.Err = errors.WriteFailure("remove", entry.Marker.Path, err)
			report.Failed = append(report.Failed, entry)
			continue
		}

		logging.Debug("hydrated marker", "marker", entry.Marker.Path, "target", entry.Target)
		report.Hydrated = append(report.Hydrated, entry)
	}

	return report, nil
}

// copyFile copies src to dst byte for byte. A failed copy never leaves a
// partial target, and an existing target survives until the replacement is
// complete.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return stageWrite(dst, data)
}

// stageWrite writes data to path through a temp file in the same directory,
// renamed into place once fully written.
func stageWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}
