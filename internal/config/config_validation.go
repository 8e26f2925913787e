package config

import (
	"encoding/hex"
	"time"
)

// applicationKeySize is the required application key length in bytes.
const applicationKeySize = 32

// Adapter defaults: the public OpenAI-compatible endpoint and a conservative
// round-trip bound.
const (
	defaultChatAPIURL     = "https://api.openai.com/v1"
	defaultChatModel      = "gpt-4o-mini"
	defaultAdapterTimeout = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The application key is load-bearing for every encrypt/decrypt call, so a
// missing or malformed key fails fast here instead of surfacing as cipher
// errors on the first request.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	key, err := hex.DecodeString(cfg.App.EncryptionKey)
	if err != nil || len(key) != applicationKeySize {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}

	if cfg.Adapter.ChatAPIURL == "" {
		cfg.Adapter.ChatAPIURL = defaultChatAPIURL
	}
	if cfg.Adapter.ChatModel == "" {
		cfg.Adapter.ChatModel = defaultChatModel
	}
	if cfg.Adapter.Timeout <= 0 {
		cfg.Adapter.Timeout = defaultAdapterTimeout
	}

	return nil
}
