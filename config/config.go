package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Mail    MailConfig    `yaml:"mail"`
	Blog    BlogConfig    `yaml:"blog"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	APIPrefix   string   `yaml:"api_prefix"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// MailConfig holds the SMTP settings used for contact notifications.
// Credentials normally come from the environment, not from config.yaml.
type MailConfig struct {
	SMTPServer string        `yaml:"smtp_server"`
	SMTPPort   int           `yaml:"smtp_port"`
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password"`
	Recipient  string        `yaml:"recipient"`
	Timeout    time.Duration `yaml:"timeout"`
}

type BlogConfig struct {
	ContentDir        string `yaml:"content_dir"`
	Extension         string `yaml:"extension"`
	DefaultAuthor     string `yaml:"default_author"`
	CoverImagePattern string `yaml:"cover_image_pattern"`
	// FrontMatter enables the optional YAML header at the top of post files.
	FrontMatter bool `yaml:"front_matter"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when neither config.yaml nor the
// environment provide a value.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:        ":8001",
			APIPrefix:   "/api",
			CORSOrigins: []string{"*"},
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "widia",
		},
		Mail: MailConfig{
			SMTPPort:  587,
			Recipient: "contato@widia.io",
			Timeout:   10 * time.Second,
		},
		Blog: BlogConfig{
			ContentDir:        "content/blog",
			Extension:         ".md",
			DefaultAuthor:     "Equipe Widia",
			CoverImagePattern: "/images/blog/{slug}.jpg",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

var config *AppConfig

func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Load reads .env and config.yaml from basePath and applies environment
// overrides on top of the defaults. A missing config.yaml is not an error.
func Load(basePath string) (AppConfig, error) {
	// load environment variables
	_ = godotenv.Load(filepath.Join(basePath, ENV_FILE))

	c := Default()
	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("config: parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return AppConfig{}, fmt.Errorf("config: read %s: %w", CONFIG_FILE, err)
	}

	if err := applyEnv(&c); err != nil {
		return AppConfig{}, err
	}
	if c.Blog.ContentDir != "" && !filepath.IsAbs(c.Blog.ContentDir) && basePath != "" {
		c.Blog.ContentDir = filepath.Join(basePath, c.Blog.ContentDir)
	}
	return c, nil
}

func applyEnv(c *AppConfig) error {
	setString(&c.Mongo.URI, "MONGO_URL")
	setString(&c.Mongo.Database, "DB_NAME")
	setString(&c.Mail.SMTPServer, "SMTP_SERVER")
	setString(&c.Mail.Username, "SMTP_USERNAME")
	setString(&c.Mail.Password, "SMTP_PASSWORD")
	setString(&c.Mail.Recipient, "CONTACT_EMAIL_TO")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Server.Addr, "SERVER_ADDR")
	setString(&c.Blog.ContentDir, "BLOG_CONTENT_DIR")

	if v := strings.TrimSpace(os.Getenv("SMTP_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid SMTP_PORT %q: %w", v, err)
		}
		c.Mail.SMTPPort = port
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSOrigins = origins
	}
	if c.Mail.SMTPPort == 0 {
		c.Mail.SMTPPort = 587
	}
	if c.Mail.Timeout <= 0 {
		c.Mail.Timeout = 10 * time.Second
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
