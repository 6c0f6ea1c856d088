package session

import (
	"embed"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// ============================================================================
// SAMPLE DATASETS — bundled CSVs for trying the dashboard without an upload
// ============================================================================

//go:embed samples/*.csv
var sampleFS embed.FS

const samplesDir = "samples"

// Samples returns the bundled sample dataset names, sorted.
func Samples() []string {
	entries, err := sampleFS.ReadDir(samplesDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)
	return names
}

// LoadSample loads a bundled sample dataset into the session.
func (s *Session) LoadSample(name string) (int, error) {
	data, err := sampleFS.ReadFile(samplesDir + "/" + name + ".csv")
	if err != nil {
		return 0, eris.Wrapf(err, "session: unknown sample %q", name)
	}
	return s.Load("sample:"+name, data)
}
