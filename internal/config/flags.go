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
//	-profile configuration profile name
//	-api-version API version string
//	-c/-config config file path (.json, .yaml, .yml, .toml)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-rate-limit-rps sustained requests per second, 0 disables limiting
//	-rate-limit-burst rate limiter bucket size
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var profile string
	var apiVersion string
	var configPath string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var rateLimitRPS float64
	var rateLimitBurst int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&profile, "profile", "", "Configuration profile name")
	flag.StringVar(&apiVersion, "api-version", "", "API version string")
	flag.StringVar(&configPath, "c", "", "Config file path")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	flag.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Requests per second, 0 disables rate limiting")
	flag.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Rate limiter burst size")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Profile: profile,
			Version: apiVersion,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			RateLimit: RateLimit{
				RPS:   rateLimitRPS,
				Burst: rateLimitBurst,
			},
		},
		ConfigFilePath: configPath,
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
