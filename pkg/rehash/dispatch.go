package rehash

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/rtenv/pkg/errors"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
	"github.com/glorpus-work/rtenv/pkg/versionfile"
)

// Which returns the executable a shim named program dispatches to for
// version. The system version searches pathList, skipping the shims
// directory so a shim never resolves to itself.
func Which(root, version, program, pathList string) (string, error) {
	if version != versionfile.System {
		prefix := fsutil.PrefixFor(root, version)
		if !fsutil.DirExists(prefix) {
			return "", errors.Wrapf(errors.ErrVersionNotInstalled, "%s", version)
		}
		candidate := filepath.Join(fsutil.BinDir(prefix), program)
		if !fsutil.IsExecutable(candidate) {
			return "", errors.Wrapf(errors.ErrProgramNotFound, "%s (version %s)", program, version)
		}
		return candidate, nil
	}

	shims := filepath.Clean(fsutil.ShimsDir(root))
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" || filepath.Clean(dir) == shims {
			continue
		}
		if candidate := filepath.Join(dir, program); fsutil.IsExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", errors.Wrapf(errors.ErrProgramNotFound, "%s", program)
}

// Environ returns base with the bin directory of version put first on PATH,
// so programs started by the dispatched one see the same version.
func Environ(base []string, root, version string) []string {
	if version == versionfile.System {
		return base
	}
	bin := fsutil.BinDir(fsutil.PrefixFor(root, version))

	out := make([]string, 0, len(base)+1)
	found := false
	for _, kv := range base {
		if value, ok := strings.CutPrefix(kv, "PATH="); ok {
			kv = "PATH=" + bin + string(os.PathListSeparator) + value
			found = true
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, "PATH="+bin)
	}
	return out
}
