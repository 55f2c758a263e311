package rates

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
)

// Write serializes the merged mapping as indented JSON, overwriting any
// existing file at path.
func Write(path string, records map[string]Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return eris.Wrap(err, "write: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "write: %s", path)
	}
	return nil
}
