// Package builtins provides the module types of the standard library
// modules a submission may import. Definitions are embedded JSON type
// records.
package builtins

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"shapecheck/internal/typecodec"
	"shapecheck/internal/types"
)

//go:embed modules/*.json
var moduleFS embed.FS

// FS exposes the embedded module definitions.
func FS() fs.FS { return moduleFS }

var (
	loadOnce sync.Once
	records  map[string]*typecodec.Record
	loadErr  error
)

func load() {
	records = make(map[string]*typecodec.Record)
	entries, err := fs.ReadDir(moduleFS, "modules")
	if err != nil {
		loadErr = err
		return
	}
	for _, e := range entries {
		data, err := fs.ReadFile(moduleFS, path.Join("modules", e.Name()))
		if err != nil {
			loadErr = err
			return
		}
		rec, err := decodeRecord(data)
		if err != nil {
			loadErr = fmt.Errorf("builtins: %s: %w", e.Name(), err)
			return
		}
		records[strings.TrimSuffix(e.Name(), ".json")] = rec
	}
}

// Names lists the available modules, sorted.
func Names() ([]string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Lookup returns a fresh module type for name. Dotted names resolve
// submodules ("os.path"). Each call decodes a new value, so callers may
// mutate the result.
func Lookup(name string) (*types.Type, bool, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, false, loadErr
	}
	head, rest, _ := strings.Cut(name, ".")
	rec, ok := records[head]
	if !ok {
		return nil, false, nil
	}
	mod, err := typecodec.Decode(rec)
	if err != nil {
		return nil, false, err
	}
	for rest != "" {
		var part string
		part, rest, _ = strings.Cut(rest, ".")
		sub, ok := mod.Mod.Submodules[part]
		if !ok {
			return nil, false, nil
		}
		mod = sub
	}
	return mod, true, nil
}
