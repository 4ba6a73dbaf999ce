package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvFile = "./configs/.env"

type Config struct {
}

// New loads env file once (ENV_FILE or ./configs/.env). Variables already set
// in the environment win over the file; a missing file is not an error.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		err := godotenv.Load(path)
		if err != nil {
			log.Println("loading envs error, using process environment: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (c *Config) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 {
		return def
	}
	return v
}

// GetWeekday parses full english weekday name, case-insensitive.
func (c *Config) GetWeekday(key string, def time.Weekday) time.Weekday {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()) == v {
			return wd
		}
	}
	return def
}

// GetLocation loads IANA zone named by key, falling back to time.Local.
func (c *Config) GetLocation(key string) *time.Location {
	name := strings.TrimSpace(os.Getenv(key))
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Println("unknown time zone " + name + ", using local")
		return time.Local
	}
	return loc
}
