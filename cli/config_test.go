// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/absmach/errcheck/cli"
	"github.com/absmach/errcheck/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	content := `
faults_url = "https://bench-rig:9443"
msg_content_type = "application/json"
tls_verification = true
`
	path := filepath.Join(t.TempDir(), "errcheck-cli.toml")
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))

	cli.ConfigPath = path
	defer func() { cli.ConfigPath = "" }()

	conf, err := cli.ParseConfig(sdk.Config{FaultsURL: "http://localhost:9180"})
	require.Nil(t, err)
	assert.Equal(t, "https://bench-rig:9443", conf.FaultsURL)
	assert.Equal(t, sdk.CTJSON, conf.MsgContentType)
	assert.True(t, conf.TLSVerification)
}

func TestParseConfigWithoutFile(t *testing.T) {
	cli.ConfigPath = ""

	conf, err := cli.ParseConfig(sdk.Config{FaultsURL: "http://localhost:9180"})
	require.Nil(t, err)
	assert.Equal(t, "http://localhost:9180", conf.FaultsURL)
}

func TestParseConfigMissingFile(t *testing.T) {
	cli.ConfigPath = filepath.Join(t.TempDir(), "missing.toml")
	defer func() { cli.ConfigPath = "" }()

	_, err := cli.ParseConfig(sdk.Config{})
	assert.NotNil(t, err)
}
