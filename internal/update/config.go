package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/intervald/internal/model"
	"github.com/sandeepkv93/intervald/internal/selector"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DesktopNotifications bool
	AlertSound           bool
	AlertSoundPath       string
	Presets              []model.Duration
	DragThreshold        float64
	DragUnitsPerRow      float64
	TickInterval         time.Duration
	EventBuffer          int
	HistoryPath          string
	LogPath              string
	LogLevel             string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		AlertSound:           true,
		Presets:              append([]model.Duration(nil), model.DefaultPresets...),
		DragThreshold:        selector.DefaultDragThreshold,
		DragUnitsPerRow:      8,
		TickInterval:         time.Second,
		EventBuffer:          64,
		HistoryPath:          ".intervald_history.db",
		LogPath:              "",
		LogLevel:             "info",
	}
}

type fileConfig struct {
	DesktopNotifications *bool    `yaml:"desktop_notifications"`
	Alert                struct {
		Sound     *bool   `yaml:"sound"`
		SoundPath *string `yaml:"sound_path"`
	} `yaml:"alert"`
	Presets []string `yaml:"presets"`
	Picker  struct {
		DragThreshold   *float64 `yaml:"drag_threshold"`
		DragUnitsPerRow *float64 `yaml:"drag_units_per_row"`
	} `yaml:"picker"`
	TickInterval *string `yaml:"tick_interval"`
	EventBuffer  *int    `yaml:"event_buffer"`
	HistoryPath  *string `yaml:"history_path"`
	Log          struct {
		Path  *string `yaml:"path"`
		Level *string `yaml:"level"`
	} `yaml:"log"`
}

func RuntimeConfigFromFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.DesktopNotifications != nil {
		cfg.DesktopNotifications = *fc.DesktopNotifications
	}
	if fc.Alert.Sound != nil {
		cfg.AlertSound = *fc.Alert.Sound
	}
	if fc.Alert.SoundPath != nil {
		cfg.AlertSoundPath = strings.TrimSpace(*fc.Alert.SoundPath)
	}
	if len(fc.Presets) > 0 {
		presets, err := model.ParsePresets(fc.Presets)
		if err != nil {
			return base, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Presets = presets
	}
	if v := fc.Picker.DragThreshold; v != nil && *v > 0 {
		cfg.DragThreshold = *v
	}
	if v := fc.Picker.DragUnitsPerRow; v != nil && *v > 0 {
		cfg.DragUnitsPerRow = *v
	}
	if fc.TickInterval != nil {
		d, err := time.ParseDuration(*fc.TickInterval)
		if err != nil || d <= 0 {
			return base, fmt.Errorf("config %s: invalid tick_interval %q", path, *fc.TickInterval)
		}
		cfg.TickInterval = d
	}
	if v := fc.EventBuffer; v != nil && *v > 0 {
		cfg.EventBuffer = *v
	}
	if fc.HistoryPath != nil {
		cfg.HistoryPath = strings.TrimSpace(*fc.HistoryPath)
	}
	if fc.Log.Path != nil {
		cfg.LogPath = strings.TrimSpace(*fc.Log.Path)
	}
	if fc.Log.Level != nil {
		cfg.LogLevel = strings.TrimSpace(*fc.Log.Level)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("INTERVALD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvBool("INTERVALD_ALERT_SOUND"); ok {
		cfg.AlertSound = v
	}
	if v, ok := os.LookupEnv("INTERVALD_ALERT_SOUND_PATH"); ok {
		cfg.AlertSoundPath = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv("INTERVALD_PRESETS")); v != "" {
		if presets, err := model.ParsePresets(strings.Split(v, ",")); err == nil {
			cfg.Presets = presets
		}
	}
	if v, ok := getEnvFloat("INTERVALD_DRAG_THRESHOLD"); ok && v > 0 {
		cfg.DragThreshold = v
	}
	if v, ok := getEnvFloat("INTERVALD_DRAG_UNITS_PER_ROW"); ok && v > 0 {
		cfg.DragUnitsPerRow = v
	}
	if v := strings.TrimSpace(os.Getenv("INTERVALD_TICK_INTERVAL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TickInterval = d
		}
	}
	if v, ok := getEnvInt("INTERVALD_EVENT_BUFFER"); ok && v > 0 {
		cfg.EventBuffer = v
	}
	if v, ok := os.LookupEnv("INTERVALD_HISTORY_FILE"); ok {
		cfg.HistoryPath = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("INTERVALD_LOG_FILE"); ok {
		cfg.LogPath = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv("INTERVALD_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

func LoadRuntimeConfig() (RuntimeConfig, error) {
	cfg, err := RuntimeConfigFromFile(os.Getenv("INTERVALD_CONFIG"), DefaultRuntimeConfig())
	if err != nil {
		return DefaultRuntimeConfig(), err
	}
	return RuntimeConfigFromEnv(cfg), nil
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvFloat(name string) (float64, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
