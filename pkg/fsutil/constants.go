package fsutil

// File and directory permission constants used for everything rtenv itself
// writes (config, shims, version files). The builder owns the modes inside a prefix.
const (
	FileModeDefault = 0o644 // -rw-r--r--: Default for regular files
	FileModeExec    = 0o755 // -rwxr-xr-x: For shims and other executables

	DirModeDefault = 0o755 // drwxr-xr-x: Default for directories
)
