package am

import (
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/teranos/r2gen/errors"
)

// UnknownKeys decodes the TOML file at path strictly and returns the keys
// that do not map onto Config. Viper ignores such keys silently, so a typo
// like `clas_name` would otherwise fall back to the default without notice.
func UnknownKeys(path string) ([]string, error) {
	var config Config
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	undecoded := meta.Undecoded()
	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return keys, nil
}
