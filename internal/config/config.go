package config

import (
	"fmt"
	"time"

	"church-office-go/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort                string                `envconfig:"HTTP_PORT" default:"8080"`
	Env                     string                `envconfig:"ENV" default:"development"`
	TimeZone                string                `envconfig:"TIME_ZONE" default:"Asia/Seoul"`
	CORSAllowedOrigins      []string              `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	RequestTimeout          time.Duration         `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	SeedFacilitiesOnBoot    bool                  `envconfig:"SEED_FACILITIES_ON_BOOT" default:"true"`
	SeedServingPeopleOnBoot bool                  `envconfig:"SEED_SERVING_PEOPLE_ON_BOOT" default:"true"`
	DB                      DBConfig              `envconfig:"DB"`
	Redis                   RedisConfig           `envconfig:"REDIS"`
	Rabbit                  RabbitConfig          `envconfig:"RABBIT"`
	FacilityCache           CacheConfig           `envconfig:"FACILITY_CACHE"`
	Roles                   RolesConfig           `envconfig:"ROLES"`
	Facilities              []FacilityConfig      `ignored:"true"`
	ServingPeople           []ServingPersonConfig `ignored:"true"`
}

type DBConfig struct {
	DSN             string
	Host            string        `default:"localhost"`
	Port            string        `default:"5432"`
	User            string        `default:"postgres"`
	Password        string        `default:"postgres"`
	Name            string        `default:"church_office"`
	SSLMode         string        `default:"disable"`
	TimeZone        string        `default:"UTC"`
	MaxOpenConns    int           `split_words:"true" default:"10"`
	MaxIdleConns    int           `split_words:"true" default:"5"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"30m"`
	SlowQuery       time.Duration `split_words:"true" default:"200ms"`
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int `default:"0"`
}

type RabbitConfig struct {
	URL      string
	Exchange string `default:"church.events"`
}

type CacheConfig struct {
	Enabled bool          `default:"true"`
	TTL     time.Duration `default:"10m"`
}

// RolesConfig holds the member classifications the services assign on their
// own. Both are plain text on the member row.
type RolesConfig struct {
	NewFamily string `split_words:"true" default:"새가족"`
	Default   string `default:"성도"`
}

type FacilityConfig struct {
	Name     string
	Location string
	Capacity int
}

type ServingPersonConfig struct {
	Category    string
	Role        string
	Name        string
	Description string
	SortOrder   int
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	cfg.Facilities = DefaultFacilities()
	cfg.ServingPeople = DefaultServingPeople()

	return cfg, nil
}

// DefaultFacilities is the reference list seeded into an empty database.
func DefaultFacilities() []FacilityConfig {
	return []FacilityConfig{
		{Name: "대예배실", Location: "본관 3층", Capacity: 500},
		{Name: "소예배실", Location: "본관 1층", Capacity: 100},
		{Name: "비전홀", Location: "비전센터 2층", Capacity: 80},
		{Name: "식당", Location: "비전센터 B1", Capacity: 150},
		{Name: "카페", Location: "본관 1층 로비", Capacity: 30},
	}
}

// DefaultServingPeople is the placeholder staff list for a fresh install.
func DefaultServingPeople() []ServingPersonConfig {
	return []ServingPersonConfig{
		{Category: "pastor", Role: "담임목사", Name: "홍길동", Description: "총괄 목회", SortOrder: 1},
		{Category: "pastor", Role: "부목사", Name: "김철수", Description: "행정 / 청년부", SortOrder: 2},
		{Category: "pastor", Role: "부목사", Name: "이영희", Description: "교구 / 훈련", SortOrder: 3},
		{Category: "evangelist", Role: "전도사", Name: "박민수", Description: "초등부 / 찬양", SortOrder: 4},
		{Category: "elder", Role: "장로회", Name: "장로회", Description: "김장로, 이장로, 박장로, 최장로... (명단 준비 중)", SortOrder: 5},
	}
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
