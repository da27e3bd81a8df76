package cmake

import (
	"bufio"
	"bytes"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheInspector = (*CacheInspector)(nil)

const (
	cacheKeyCompiler  = "CMAKE_CXX_COMPILER"
	cacheKeyToolchain = "CMAKE_TOOLCHAIN_FILE"

	compilerRecord = "CMakeCXXCompiler.cmake"
	systemRecord   = "CMakeSystem.cmake"
)

var (
	compilerIDPattern = regexp.MustCompile(`set\(CMAKE_CXX_COMPILER_ID\s+"([^"]*)"\)`)
	includePattern    = regexp.MustCompile(`include\("([^"]*)"\)`)
)

// CacheInspector implements ports.CacheInspector by parsing CMakeCache.txt
// and the per-version records under CMakeFiles.
type CacheInspector struct {
	fs ports.FileSystem
}

// NewCacheInspector creates a CacheInspector reading through fs.
func NewCacheInspector(fs ports.FileSystem) *CacheInspector {
	return &CacheInspector{fs: fs}
}

// Inspect returns what CMake recorded in dir.
func (c *CacheInspector) Inspect(dir string) (domain.CacheMetadata, error) {
	var meta domain.CacheMetadata

	cachePath := filepath.Join(dir, domain.CMakeCacheFile)
	ok, err := c.fs.Exists(cachePath)
	if err != nil {
		return meta, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", cachePath)
	}
	if !ok {
		return meta, nil
	}

	data, err := c.fs.ReadFile(cachePath)
	if err != nil {
		return meta, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", cachePath)
	}
	entries := ParseCache(data)

	meta.Configured = true
	meta.CompilerPath = entries[cacheKeyCompiler]
	meta.ToolchainFile = entries[cacheKeyToolchain]

	if meta.CompilerID, err = c.recordMatch(dir, compilerRecord, compilerIDPattern); err != nil {
		return meta, err
	}
	if meta.SystemToolchainFile, err = c.recordMatch(dir, systemRecord, includePattern); err != nil {
		return meta, err
	}

	return meta, nil
}

// recordMatch returns the first submatch of pattern in the newest CMakeFiles/<version>/<name>.
func (c *CacheInspector) recordMatch(dir, name string, pattern *regexp.Regexp) (string, error) {
	matches, err := c.fs.Glob(filepath.Join(dir, domain.CMakeFilesDir, "*", name))
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	if len(matches) == 0 {
		return "", nil
	}

	newest := slices.MaxFunc(matches, func(a, b string) int {
		return compareVersions(filepath.Base(filepath.Dir(a)), filepath.Base(filepath.Dir(b)))
	})

	data, err := c.fs.ReadFile(newest)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", newest)
	}

	m := pattern.FindSubmatch(data)
	if m == nil {
		return "", nil
	}
	return string(m[1]), nil
}

// ParseCache reads KEY:TYPE=VALUE lines. Comments and malformed lines are skipped.
func ParseCache(data []byte) map[string]string {
	entries := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		head, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, _, _ := strings.Cut(head, ":")
		entries[key] = value
	}

	return entries
}

// compareVersions orders dotted version strings numerically. Non-numeric parts compare as text.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := range max(len(as), len(bs)) {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}

		xi, xErr := strconv.Atoi(x)
		yi, yErr := strconv.Atoi(y)
		if xErr == nil && yErr == nil {
			if xi != yi {
				return xi - yi
			}
			continue
		}
		if c := strings.Compare(x, y); c != 0 {
			return c
		}
	}
	return 0
}
