package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	PropertiesFile  string
}

var Env *EnvConfig

func init() {
	// .env never overrides variables already set in the process
	_ = godotenv.Load()

	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "weather-dashboard"),
		PropertiesFile:  getStringOrDefault(env, "PROPERTIES_FILE_PATH", "configs/application.yml"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
