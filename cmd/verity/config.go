// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/verity-go/verity/common/errors"
)

var colorModes = []string{"auto", "always", "never"}

// runConfig is the configuration of `verity run`, read from a YAML file and
// overridden by flags.
type runConfig struct {
	Fixtures   []string `yaml:"fixtures"`
	Categories []string `yaml:"categories"`
	Verbose    bool     `yaml:"verbose"`
	Color      string   `yaml:"color"`
	JSONOut    string   `yaml:"json_out"`
	MetricsOut string   `yaml:"metrics_out"`
}

func defaultConfig() runConfig {
	return runConfig{Color: "auto"}
}

// loadConfig reads a runConfig from `path` on top of the defaults.
//
// Unknown keys are errors.
func loadConfig(path string) (runConfig, error) {
	cfg := defaultConfig()
	blob, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Annotate(err, "reading config").Err()
	}
	if err := yaml.UnmarshalStrict(blob, &cfg); err != nil {
		return cfg, errors.Annotate(err, "parsing config %q", path).Err()
	}
	return cfg, nil
}

func (c *runConfig) validate() error {
	for _, m := range colorModes {
		if c.Color == m {
			return nil
		}
	}
	return errors.Reason("color must be one of %q, got %q", colorModes, c.Color).Err()
}
