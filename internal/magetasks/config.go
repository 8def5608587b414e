package magetasks

import (
	"os"
	"path/filepath"
)

var (
	// ModulePath is the Go module path.
	ModulePath = "github.com/dkoosis/termly"

	// BinPath is the output path for the demo binary.
	BinPath = "./bin/termly"

	// ProjectRoot is the directory mage was started in.
	ProjectRoot string
)

// Initialize records the project root and creates the bin directory.
// Call it from the Magefile init function.
func Initialize() error {
	var err error
	if ProjectRoot, err = os.Getwd(); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(ProjectRoot, "bin"), 0o750)
}
