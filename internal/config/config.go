package config

import (
	"os"
)

type Config struct {
	AppPort string

	TeachersFile   string
	ActivitiesFile string
	StaticDir      string
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "8000"),

		TeachersFile:   getenv("TEACHERS_FILE", "./teachers.json"),
		ActivitiesFile: getenv("ACTIVITIES_FILE", "./activities.yaml"),
		StaticDir:      getenv("STATIC_DIR", "./static"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
