package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	ImplTwoLock = "twolock"
	ImplShared  = "shared"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration of the historical benchmark: 8000
// operations over 2, 4, 6 and 8 threads, 30 runs each, on a queue large
// enough to hold every item.
func Default() Config {
	return Config{
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     7,
			MaxSize:    100,
		},
		Queue: Queue{
			Capacity:       8000,
			Implementation: ImplTwoLock,
		},
		Bench: Bench{
			Threads:    []int{2, 4, 6, 8},
			Operations: 8000,
			Repeat:     30,
		},
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
