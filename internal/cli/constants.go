package cli

// Default values for CLI output.
const (
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
	// InstallCommand is the hook directory name of the install command.
	InstallCommand = "install"
)
