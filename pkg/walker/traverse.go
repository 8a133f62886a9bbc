// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package walker

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// TraverseToFile ascends from start through its parent directories
// until one of them contains any of the named files, and returns that
// directory. height limits how many parents are visited; zero or
// negative means unlimited. Useful for locating project roots
// (go.mod, .git, a config file) from a nested working directory.
func TraverseToFile(start string, height int, names ...string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("traverse: at least one file name is required")
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Errorf("resolving start directory: %w", err)
	}

	for level := 0; ; level++ {
		if height > 0 && level > height {
			break
		}

		for _, name := range names {
			info, err := os.Stat(filepath.Join(dir, name))
			if err == nil && info.Mode().IsRegular() {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.Errorf("%q not found in %s or its parents", names[0], start)
}
