package configuration

import (
	"maps"
	"os"
	"strings"
	"sync"

	"github.com/thanhminhmr/go-generic-error/internal"

	"github.com/go-viper/mapstructure/v2"
)

var (
	globalMutex    sync.RWMutex
	globalDefaults = make(map[string]string)
	globalDotEnv   = make(map[string]string)
)

func init() {
	// .env file have higher priority than defaults
	if bytes, err := os.ReadFile(".env"); err == nil {
		saveEnvironments(globalDotEnv, strings.Split(string(bytes), "\n"))
	}
}

func saveEnvironments(target map[string]string, lines []string) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if key, value, found := strings.Cut(line, "="); found {
			target[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
}

// SetDefault registers the value used when key is neither in the process
// environment nor in the .env file. It is meant to be called from init.
func SetDefault(key string, value string) {
	globalMutex.Lock()
	defer globalMutex.Unlock()
	globalDefaults[key] = value
}

// Load decodes the variables starting with the joined prefixes into config,
// then validates it. Field tags name the variable without the prefix:
//
//	type Config struct {
//		Limit int `env:"LIMIT" validate:"min=0"`
//	}
//
//	err := configuration.Load(&config, "MY_MODULE") // reads MY_MODULE_LIMIT
//
// The process environment is read at every call and wins over the .env file,
// which wins over the defaults.
func Load[T any](config *T, prefixes ...string) error {
	prefix := ""
	if len(prefixes) > 0 {
		prefix = strings.Join(prefixes, "_") + "_"
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "env",
		DecodeHook:       internal.DecodeHookFunc,
		ZeroFields:       true,
		WeaklyTypedInput: true,
		Result:           config,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(getEnvironment(prefix)); err != nil {
		return err
	}
	return internal.Validator.Struct(config)
}

// Loader returns Load as a constructor, ready for fx.Provide.
func Loader[T any](config *T, prefixes ...string) func() (*T, error) {
	return func() (*T, error) {
		err := Load(config, prefixes...)
		return config, err
	}
}

func getEnvironment(prefix string) map[string]string {
	processEnv := make(map[string]string)
	saveEnvironments(processEnv, os.Environ())

	globalMutex.RLock()
	sources := []map[string]string{globalDefaults, globalDotEnv, processEnv}
	merged := make(map[string]string)
	for _, source := range sources {
		maps.Copy(merged, source)
	}
	globalMutex.RUnlock()

	environments := make(map[string]string)
	for key, value := range merged {
		if fixedKey, hasPrefix := strings.CutPrefix(key, prefix); hasPrefix {
			environments[fixedKey] = value
		}
	}
	return environments
}
