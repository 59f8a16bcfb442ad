package cli

import (
	"os"
	"path/filepath"
)

func (a appPaths) dirName() string {
	return a.tag
}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, "Library", "Application Support")
	}
	return filepath.Join(c, a.dirName())
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.home, "Library", "Logs", a.dirName())
}
