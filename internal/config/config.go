package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Source      SourceConfig   `yaml:"source"`
	Club        ClubConfig     `yaml:"club"`
	Assets      AssetsConfig   `yaml:"assets"`
	Players     PlayersConfig  `yaml:"players"`
	Environment string         `yaml:"environment"`
	LogLevel    string         `yaml:"log_level"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type SourceConfig struct {
	BaseURL      string        `yaml:"base_url"`
	FixturesPath string        `yaml:"fixtures_path"`
	CDNBaseURL   string        `yaml:"cdn_base_url"`
	UserAgent    string        `yaml:"user_agent"`
	Timeout      time.Duration `yaml:"timeout"`
	RequestDelay time.Duration `yaml:"request_delay"`
	Retry        RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ClubConfig struct {
	Name      string `yaml:"name"`
	HomeVenue string `yaml:"home_venue"`
	CrestURL  string `yaml:"crest_url"`
}

type AssetsConfig struct {
	Dir         string   `yaml:"dir"`
	TeamBases   []string `yaml:"team_bases"`
	LeagueBases []string `yaml:"league_bases"`
}

type PlayersConfig struct {
	SquadURL string        `yaml:"squad_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://www.zerozero.pt"
	}
	if c.Source.FixturesPath == "" {
		c.Source.FixturesPath = "/equipa/sporting/jogos?grp=0&equipa_1=16&menu=allmatches"
	}
	if c.Source.CDNBaseURL == "" {
		c.Source.CDNBaseURL = "https://cdn-img.zerozero.pt"
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/95.0.4638.69 Safari/537.36"
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 30 * time.Second
	}
	if c.Source.RequestDelay == 0 {
		c.Source.RequestDelay = 500 * time.Millisecond
	}
	if c.Source.Retry.MaxAttempts == 0 {
		c.Source.Retry.MaxAttempts = 3
	}
	if c.Source.Retry.InitialBackoff == 0 {
		c.Source.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Source.Retry.MaxBackoff == 0 {
		c.Source.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Club.Name == "" {
		c.Club.Name = "Sporting"
	}
	if c.Club.HomeVenue == "" {
		c.Club.HomeVenue = "Estádio José de Alvalade"
	}
	if c.Club.CrestURL == "" {
		c.Club.CrestURL = "https://cdn-img.zerozero.pt/img/logos/equipas/16_imgbank.png"
	}
	if c.Assets.Dir == "" {
		c.Assets.Dir = "images"
	}
	if len(c.Assets.TeamBases) == 0 {
		c.Assets.TeamBases = []string{
			"https://www.zerozero.pt/img/logos/equipas/",
			"https://www.zerozero.pt/img/logos/edicoes/",
		}
	}
	if len(c.Assets.LeagueBases) == 0 {
		c.Assets.LeagueBases = []string{
			"https://www.zerozero.pt/img/logos/competicoes/",
			"https://www.zerozero.pt/img/logos/edicoes/",
		}
	}
	if c.Players.SquadURL == "" {
		c.Players.SquadURL = "https://www.sporting.pt/pt/futebol/equipa-principal/plantel"
	}
	if c.Players.Timeout == 0 {
		c.Players.Timeout = 30 * time.Second
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
