package platform

import (
	"os"
	"path/filepath"
)

// ReadmeFile is the documentation file shown by the README dialog
const ReadmeFile = "README.md"

// FindReadme returns the README content from the first directory that has
// one. With no arguments the working directory and then the executable's
// directory are searched.
func FindReadme(dirs ...string) (string, bool) {
	if len(dirs) == 0 {
		dirs = defaultReadmeDirs()
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, ReadmeFile))
		if err == nil {
			return string(data), true
		}
	}
	return "", false
}

func defaultReadmeDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}
