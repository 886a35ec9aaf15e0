package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesFromGlobs expands every pattern with filepath.Glob and concatenates
// the matches in pattern order. Matches are not deduplicated, so overlapping
// patterns yield the same path more than once.
func FilesFromGlobs(globs []string) ([]string, error) {
	files := make([]string, 0, len(globs))
	for _, glob := range globs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			return nil, fmt.Errorf("globbing files with pattern %q: %w", glob, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// DeriveOutputPath maps an input path to its subtitle output path: the
// first occurrence of marker is removed from the filename (case-sensitive,
// literal match), then the file extension is replaced with ext.
//
//	talk_response.json -> talk.srt
//	bar.json           -> bar.srt
func DeriveOutputPath(inputPath, marker, ext string) string {
	dir := filepath.Dir(inputPath)
	name := strings.Replace(filepath.Base(inputPath), marker, "", 1)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ext
	return filepath.Join(dir, name)
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// downloadSuffixes are the temp-file extensions browsers and download
// managers use while a file is still being written.
var downloadSuffixes = []string{
	".part",       // Firefox, wget, curl
	".crdownload", // Chrome, Edge, Opera
	".download",   // Safari
	".partial",    // IE/Edge Legacy
	".tmp",
	".aria2",
}

// IsPartialDownload reports whether path appears to still be downloading,
// by looking for a companion temp file next to it.
func IsPartialDownload(path string) bool {
	for _, suffix := range downloadSuffixes {
		if FileExists(path + suffix) {
			return true
		}
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	// Some tools name the temp file after the stem ("talk.part" next to
	// "talk.json").
	for _, suffix := range downloadSuffixes {
		if FileExists(filepath.Join(dir, stem+suffix)) {
			return true
		}
	}

	// Firefox inserts a hash between stem and extension while downloading
	// ("talk.a1b2c3.json.part").
	ext := filepath.Ext(base)
	for _, suffix := range downloadSuffixes {
		pattern := filepath.Join(dir, stem+".*"+ext+suffix)
		if matches, err := filepath.Glob(pattern); err == nil && len(matches) > 0 {
			return true
		}
	}

	return false
}
