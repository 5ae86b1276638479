package airmon

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func filenameWithSuffix(fpath string, iter uint) string {
	ext := filepath.Ext(fpath)
	base := strings.TrimSuffix(fpath, ext)
	if n, err := strconv.Atoi(strings.TrimPrefix(filepath.Ext(base), ".")); err == nil && n > 0 {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if iter == 0 {
		return base + ext
	}
	return base + "." + strconv.FormatUint(uint64(iter), 10) + ext
}

// CreateFileWithoutOverwrite creates fpath, or the first
// "<name>.<n><ext>" variant that does not exist yet. Missing parent
// directories are created. It returns the actual file name used.
func CreateFileWithoutOverwrite(fpath string) (*os.File, string, error) {
	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		return nil, "", err
	}
	for iter := uint(0); ; iter++ {
		candidate := filenameWithSuffix(fpath, iter)
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if os.IsExist(err) {
			continue
		}
		return f, candidate, err
	}
}
