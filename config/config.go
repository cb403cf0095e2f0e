package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything read from the environment. Call Load after
// godotenv has populated the process env.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	UploadDir    string
	BaseURL      string
	ResetURLBase string
	ContactEmail string

	StorageBackend string // "local" or "minio"
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	VerticalsFile string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment with development
// defaults.
func Load() Config {
	useSSL := false
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			useSSL = b
		}
	}

	return Config{
		Port:           getenv("PORT", "8080"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "nss_portal"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		BaseURL:        getenv("BASE_URL", "http://localhost:8080"),
		ResetURLBase:   getenv("RESET_URL_BASE", "http://localhost:3000/reset-password"),
		ContactEmail:   getenv("CONTACT_EMAIL", os.Getenv("SMTP_USER")),
		StorageBackend: getenv("STORAGE_BACKEND", "local"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getenv("MINIO_BUCKET", "nss-portal"),
		MinioUseSSL:    useSSL,
		VerticalsFile:  os.Getenv("VERTICALS_FILE"),
	}
}

// defaultVerticals maps known verticals to their dashboard routes.
var defaultVerticals = map[string]string{
	"photography": "/vertical-dashboard/photography",
	"events":      "/vertical-dashboard/events",
	"social":      "/vertical-dashboard/social",
}

type verticalsFile struct {
	Verticals map[string]string `yaml:"verticals"`
}

// LoadVerticals reads the vertical→dashboard mapping from a YAML file,
// falling back to the built-in defaults when no path is given. Keys are
// matched case-insensitively at login, so they are stored lowercased.
func LoadVerticals(path string) (map[string]string, error) {
	if path == "" {
		return defaultVerticals, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read verticals file: %w", err)
	}
	var vf verticalsFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("parse verticals file: %w", err)
	}
	if len(vf.Verticals) == 0 {
		return nil, fmt.Errorf("verticals file %s defines no verticals", path)
	}

	verticals := make(map[string]string, len(vf.Verticals))
	for name, dashboard := range vf.Verticals {
		verticals[strings.ToLower(name)] = dashboard
	}
	return verticals, nil
}
