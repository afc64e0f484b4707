package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"training_briefing/internal/models"

	"github.com/spf13/viper"
)

// NoMealOption is the menu value for attendees skipping lunch.
const NoMealOption = "안 먹겠음"

const envPrefix = "BRIEFING"

// Config is the typed view of configs/config.yml.
type Config struct {
	Port string `mapstructure:"port"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	DB struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"db"`

	Event struct {
		Title         string              `mapstructure:"title"`
		DateLabel     string              `mapstructure:"date_label"`
		DurationLabel string              `mapstructure:"duration_label"`
		Start         string              `mapstructure:"start"`
		End           string              `mapstructure:"end"`
		PlaceName     string              `mapstructure:"place_name"`
		PlaceAddress  string              `mapstructure:"place_address"`
		LunchPlace    string              `mapstructure:"lunch_place"`
		Agenda        []models.AgendaItem `mapstructure:"agenda"`
		Instructor    models.Instructor   `mapstructure:"instructor"`
	} `mapstructure:"event"`

	Lunch struct {
		Menus      []string `mapstructure:"menus"`
		StorageKey string   `mapstructure:"storage_key"`
	} `mapstructure:"lunch"`

	Webhook struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"webhook"`

	Session struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"session"`

	Countdown struct {
		Tick time.Duration `mapstructure:"tick"`
	} `mapstructure:"countdown"`
}

var (
	errNoMenus      = errors.New("lunch.menus must list at least one option")
	errNoMealMenu   = fmt.Errorf("lunch.menus must include the %q option", NoMealOption)
	errNoWebhookURL = errors.New("webhook.url is required")
	errNoSecret     = errors.New("session.secret is required")
)

// Load reads configs/config.yml (or the file named by path) and applies BRIEFING_* env overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("lunch.storage_key", "leadership_lunch")
	v.SetDefault("webhook.timeout", 10*time.Second)
	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("countdown.tick", time.Second)
}

// Validate checks the invariants the rest of the service relies on.
func (c Config) Validate() error {
	meta, err := c.EventMeta()
	if err != nil {
		return err
	}
	if !meta.StartsAt.Before(meta.EndsAt) {
		return fmt.Errorf("event.start %s must be before event.end %s", c.Event.Start, c.Event.End)
	}

	if len(c.Lunch.Menus) == 0 {
		return errNoMenus
	}
	seen := make(map[string]struct{}, len(c.Lunch.Menus))
	for _, m := range c.Lunch.Menus {
		if strings.TrimSpace(m) == "" {
			return errors.New("lunch.menus must not contain blank entries")
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("lunch.menus lists %q twice", m)
		}
		seen[m] = struct{}{}
	}
	if _, ok := seen[NoMealOption]; !ok {
		return errNoMealMenu
	}
	if strings.TrimSpace(c.Lunch.StorageKey) == "" {
		return errors.New("lunch.storage_key is required")
	}

	if c.Webhook.URL == "" {
		return errNoWebhookURL
	}
	u, err := url.Parse(c.Webhook.URL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("webhook.url %q must be an absolute http(s) URL", c.Webhook.URL)
	}
	if c.Webhook.Timeout <= 0 {
		return errors.New("webhook.timeout must be positive")
	}

	if c.Session.Secret == "" {
		return errNoSecret
	}
	if c.Countdown.Tick <= 0 {
		return errors.New("countdown.tick must be positive")
	}
	return nil
}

// EventMeta parses the event block into its immutable form.
func (c Config) EventMeta() (models.EventMeta, error) {
	start, err := time.Parse(time.RFC3339, c.Event.Start)
	if err != nil {
		return models.EventMeta{}, fmt.Errorf("parse event.start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, c.Event.End)
	if err != nil {
		return models.EventMeta{}, fmt.Errorf("parse event.end: %w", err)
	}
	agenda := make([]models.AgendaItem, len(c.Event.Agenda))
	copy(agenda, c.Event.Agenda)

	var instructor *models.Instructor
	if in := c.Event.Instructor; in.Name != "" {
		in.Career = append([]string(nil), in.Career...)
		instructor = &in
	}
	return models.EventMeta{
		Title:         c.Event.Title,
		DateLabel:     c.Event.DateLabel,
		DurationLabel: c.Event.DurationLabel,
		StartsAt:      start,
		EndsAt:        end,
		PlaceName:     c.Event.PlaceName,
		PlaceAddress:  c.Event.PlaceAddress,
		LunchPlace:    c.Event.LunchPlace,
		Agenda:        agenda,
		Instructor:    instructor,
	}, nil
}
