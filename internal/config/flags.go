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
//	-c/-config json file path with configs
//	-cache-path local cache database file path
//	-server-url record server base URL used by the client
//	-dashboard-address local dashboard API address in format [host]:[port]
//	-namespace top-level remote record namespace
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-retry-cap replay attempts before a queued mutation is dropped
//	-flush-interval background queue flush period
//	-probe-interval connectivity probe period
//	-log-path client log file path
func ParseFlags() *StructuredConfig {
	var serverAddress, dashboardAddress NetAddress
	var databaseDSN string
	var cachePath string
	var serverURL string
	var namespace string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var retryCap int
	var flushInterval time.Duration
	var probeInterval time.Duration
	var logPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cachePath, "cache-path", "", "Local cache database file path")
	flag.StringVar(&serverURL, "server-url", "", "Record server base URL")
	flag.Var(&dashboardAddress, "dashboard-address", "Dashboard API address host:port")
	flag.StringVar(&namespace, "namespace", "", "Remote record namespace")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&retryCap, "retry-cap", 0, "Replay attempts before a queued mutation is dropped")
	flag.DurationVar(&flushInterval, "flush-interval", 0, "Queue flush period (e.g., 30s)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe period (e.g., 15s)")
	flag.StringVar(&logPath, "log-path", "", "Client log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			Namespace:     namespace,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				Path: cachePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			ServerURL:        serverURL,
			DashboardAddress: dashboardAddress.String(),
			RetryCap:         retryCap,
			LogPath:          logPath,
		},
		Workers: Workers{
			FlushInterval: flushInterval,
			ProbeInterval: probeInterval,
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
