// SPDX-License-Identifier: MPL-2.0

package envstore

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"
)

// LoadEnvFile reads a dotenv-format file ('#' comments, optional quoting,
// optional "export " prefix) and upserts every entry with the given source.
// Keys are applied in sorted order so repeated loads behave deterministically.
func (s *Store) LoadEnvFile(path string, source Source) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		s.Upsert(key, vars[key], source)
	}
	return nil
}
