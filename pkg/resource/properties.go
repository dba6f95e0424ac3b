package resource

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// init loads application properties from YAML, after a local .env when present
func init() {
	_ = godotenv.Load()

	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if err := Init(value); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Properties file %s not found, using defaults", value)
			return
		}
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init (re)loads the properties file at filepath, resolving ${ENV:default} placeholders.
func Init(filepath string) error {
	if _, err := os.Stat(filepath); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	if err := v.MergeConfigMap(resolved); err != nil {
		return err
	}

	properties = v
	return nil
}

// parsePropertiesMap walks the YAML tree and flattens scalar values into result
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value or its default.
// Plain strings are returned unchanged.
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is unset or zero.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := properties.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is unset or zero.
func GetIntOrDefault(key string, defaultValue int) int {
	if value := properties.GetInt(key); value != 0 {
		return value
	}
	return defaultValue
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
