package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON either as a number
// of nanoseconds or as a duration string such as "30s" or "1h".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for [Duration].
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch typed := value.(type) {
	case float64:
		*d = Duration(time.Duration(typed))
		return nil
	case string:
		parsed, err := time.ParseDuration(typed)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", typed, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", value)
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey string `json:"encryption_key"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ChatAPIURL string   `json:"chat_api_url"`
		ChatAPIKey string   `json:"chat_api_key"`
		ChatModel  string   `json:"chat_model"`
		Timeout    Duration `json:"timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		KeepAliveURL      string   `json:"keepalive_url"`
		KeepAliveInterval Duration `json:"keepalive_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKey: jsonCfg.App.EncryptionKey,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			ChatAPIURL: jsonCfg.Adapter.ChatAPIURL,
			ChatAPIKey: jsonCfg.Adapter.ChatAPIKey,
			ChatModel:  jsonCfg.Adapter.ChatModel,
			Timeout:    time.Duration(jsonCfg.Adapter.Timeout),
		},
		Workers: Workers{
			KeepAliveURL:      jsonCfg.Workers.KeepAliveURL,
			KeepAliveInterval: time.Duration(jsonCfg.Workers.KeepAliveInterval),
		},
	}

	return cfg, nil
}
