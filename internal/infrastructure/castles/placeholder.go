package castles

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/castellan-host/castellan/internal/domain/castle"
	"github.com/castellan-host/castellan/internal/shared/authorization"
)

//go:embed placeholder.yaml
var placeholderYAML []byte

type placeholderFile struct {
	Castles []placeholderEntry `yaml:"castles"`
}

type placeholderEntry struct {
	IGGID  string `yaml:"igg_id"`
	Name   string `yaml:"name"`
	Level  int    `yaml:"level"`
	Power  int64  `yaml:"power"`
	Troops int64  `yaml:"troops"`
}

var (
	placeholderOnce    sync.Once
	placeholderEntries []castle.Entry
)

// placeholderDataset returns the embedded demo castles. The file is part
// of the binary, so parsing can only fail on a build defect; that panics
// at first use rather than limping along.
func placeholderDataset() []castle.Entry {
	placeholderOnce.Do(func() {
		var file placeholderFile
		if err := yaml.Unmarshal(placeholderYAML, &file); err != nil {
			panic(fmt.Sprintf("castles: invalid embedded placeholder dataset: %v", err))
		}

		placeholderEntries = make([]castle.Entry, 0, len(file.Castles))
		for _, e := range file.Castles {
			placeholderEntries = append(placeholderEntries, castle.Entry{
				IGGID:  e.IGGID,
				Name:   e.Name,
				Level:  e.Level,
				Power:  e.Power,
				Troops: e.Troops,
			})
		}
	})
	return placeholderEntries
}

// placeholderResult filters the demo dataset through the access gate, the
// same way live directories are filtered.
func placeholderResult(identity authorization.Identity) *castle.ResolutionResult {
	dataset := placeholderDataset()

	entries := make([]castle.Entry, 0, len(dataset))
	for _, e := range dataset {
		if identity.CanAccessCastle(e.IGGID) {
			entries = append(entries, e)
		}
	}

	return &castle.ResolutionResult{
		Entries: entries,
		Source:  castle.SourcePlaceholder,
	}
}
