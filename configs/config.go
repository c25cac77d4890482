package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	DatabaseURL string
	SQLitePath  string

	MongoURI string
	MongoDB  string

	UploadsDir string
}

func LoadConfig() *Config {
	// .env is optional; real deployments use plain env vars
	_ = godotenv.Load()

	ttl := 24 * time.Hour
	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      ttl,
		DatabaseURL: postgresURL(),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "digital_diner"),
		UploadsDir:  getEnv("UPLOADS_DIR", "uploads"),
	}
}

// postgresURL prefers DATABASE_URL and otherwise assembles a DSN from the
// discrete DB_* variables.
func postgresURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "digital_diner")
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
