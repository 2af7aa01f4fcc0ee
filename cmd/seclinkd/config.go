// Copyright 2026 Seclink Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path"

	"github.com/pelletier/go-toml/v2"

	"github.com/seclink/seclink/pkg/private/serrors"
)

// Config is the seclinkd TOML configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging,omitempty"`
	Metrics MetricsConfig `toml:"metrics,omitempty"`
	API     APIConfig     `toml:"api,omitempty"`
	Kernel  KernelConfig  `toml:"kernel,omitempty"`
}

type LoggingConfig struct {
	// Level is the minimum emitted log level, e.g. "debug" or "info".
	Level string `toml:"level,omitempty"`
	// Format is either "human" or "json".
	Format string `toml:"format,omitempty"`
}

type MetricsConfig struct {
	// Prometheus is the address to export prometheus metrics and pprof on.
	// If not set, metrics are not exported.
	Prometheus string `toml:"prometheus,omitempty"`
}

type APIConfig struct {
	// Addr is the address the HTTP API listens on. If not set, the API is
	// disabled.
	Addr string `toml:"addr,omitempty"`
}

type KernelConfig struct {
	// IgnoreInterfaces lists glob patterns of interface names excluded from
	// address enumeration and roam tracking.
	IgnoreInterfaces []string `toml:"ignore_interfaces,omitempty"`
	// WithoutEvents disables kernel event tracking, the interface state is
	// scanned once at startup.
	WithoutEvents bool `toml:"without_events,omitempty"`
}

func (cfg *Config) InitDefaults() {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func (cfg *Config) Validate() error {
	for _, pattern := range cfg.Kernel.IgnoreInterfaces {
		if _, err := path.Match(pattern, "x"); err != nil {
			return serrors.Wrap("invalid interface pattern", err,
				"pattern", pattern)
		}
	}
	return nil
}

// LoadConfig reads and validates the configuration from file.
func LoadConfig(file string) (*Config, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, serrors.Wrap("reading config file", err, "file", file)
	}
	var cfg Config
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, serrors.Wrap("parsing config file", err, "file", file)
	}
	cfg.InitDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

const configSample = `# seclinkd sample configuration

[logging]
level = "info"
format = "human"

[metrics]
# prometheus = "127.0.0.1:30452"

[api]
# addr = "127.0.0.1:30451"

[kernel]
# Interfaces matching any of these patterns are excluded from address
# enumeration and roam tracking.
ignore_interfaces = ["utun*", "awdl*", "llw*"]
`
