// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/viper"

	"github.com/absmach/errcheck/pkg/errors"
	ecsdk "github.com/absmach/errcheck/pkg/sdk"
)

// ConfigPath is the location of the CLI config file. Empty means no
// config file is read.
var ConfigPath string

var (
	errReadConfig      = errors.New("failed to read config file")
	errUnmarshalConfig = errors.New("failed to unmarshal config file")
)

// Config holds the CLI remotes configuration.
type Config struct {
	FaultsURL       string `mapstructure:"faults_url"`
	MsgContentType  string `mapstructure:"msg_content_type"`
	TLSVerification bool   `mapstructure:"tls_verification"`
}

// ParseConfig merges the config file values into the SDK configuration.
// Values present in the file take precedence.
func ParseConfig(sdkConf ecsdk.Config) (ecsdk.Config, error) {
	if ConfigPath == "" {
		return sdkConf, nil
	}

	viper.SetConfigFile(ConfigPath)
	if err := viper.ReadInConfig(); err != nil {
		return sdkConf, errors.Wrap(errReadConfig, err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return sdkConf, errors.Wrap(errUnmarshalConfig, err)
	}

	if config.FaultsURL != "" {
		sdkConf.FaultsURL = config.FaultsURL
	}
	if config.MsgContentType != "" {
		sdkConf.MsgContentType = ecsdk.ContentType(config.MsgContentType)
	}
	if config.TLSVerification {
		sdkConf.TLSVerification = config.TLSVerification
	}

	return sdkConf, nil
}
