package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-encryption-key application encryption key (64 hex chars)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-chat-api-url upstream completion API base URL
//	-chat-api-key upstream completion API key
//	-chat-model upstream completion model identifier
//	-keepalive-url keep-alive ping URL
//	-keepalive-interval keep-alive ping interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var encryptionKey string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var chatAPIURL string
	var chatAPIKey string
	var chatModel string
	var keepAliveURL string
	var keepAliveInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&encryptionKey, "encryption-key", "", "Application encryption key (64 hex chars)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&chatAPIURL, "chat-api-url", "", "Completion API base URL")
	flag.StringVar(&chatAPIKey, "chat-api-key", "", "Completion API key")
	flag.StringVar(&chatModel, "chat-model", "", "Completion model identifier")
	flag.StringVar(&keepAliveURL, "keepalive-url", "", "Keep-alive ping URL")
	flag.DurationVar(&keepAliveInterval, "keepalive-interval", 0, "Keep-alive ping interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EncryptionKey: encryptionKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ChatAPIURL: chatAPIURL,
			ChatAPIKey: chatAPIKey,
			ChatModel:  chatModel,
		},
		Workers: Workers{
			KeepAliveURL:      keepAliveURL,
			KeepAliveInterval: keepAliveInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
