package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		ERPAPI: ERPAPIConfig{BaseURL: "http://erp.local/api"},
		Auth:   AuthConfig{Mode: AuthModeForward},
	}
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(c *Config)
		wantErr string
	}{
		"forward": {
			mutate: func(c *Config) {},
		},
		"missing base url": {
			mutate:  func(c *Config) { c.ERPAPI.BaseURL = "" },
			wantErr: "erp_api.base_url is required",
		},
		"static without token": {
			mutate:  func(c *Config) { c.Auth.Mode = AuthModeStatic },
			wantErr: "auth.token is required in static mode",
		},
		"static with token": {
			mutate: func(c *Config) { c.Auth = AuthConfig{Mode: AuthModeStatic, Token: "t"} },
		},
		"oauth2 without token url": {
			mutate:  func(c *Config) { c.Auth = AuthConfig{Mode: AuthModeOAuth2, OAuth2: OAuth2Config{ClientID: "id", Grant: "refresh_token"}} },
			wantErr: "auth.oauth2.token_url and auth.oauth2.client_id are required in oauth2 mode",
		},
		"oauth2 unknown grant": {
			mutate: func(c *Config) {
				c.Auth = AuthConfig{Mode: AuthModeOAuth2, OAuth2: OAuth2Config{ClientID: "id", TokenURL: "http://idp/token", Grant: "password"}}
			},
			wantErr: `auth.oauth2.grant must be refresh_token or client_credentials, got "password"`,
		},
		"oauth2 refresh grant without refresh token": {
			mutate: func(c *Config) {
				c.Auth = AuthConfig{Mode: AuthModeOAuth2, OAuth2: OAuth2Config{ClientID: "id", TokenURL: "http://idp/token", Grant: "refresh_token"}}
			},
			wantErr: "auth.oauth2.refresh_token is required for the refresh_token grant",
		},
		"oauth2 client credentials": {
			mutate: func(c *Config) {
				c.Auth = AuthConfig{Mode: AuthModeOAuth2, OAuth2: OAuth2Config{ClientID: "id", TokenURL: "http://idp/token", Grant: "client_credentials"}}
			},
		},
		"unknown mode": {
			mutate:  func(c *Config) { c.Auth.Mode = "basic" },
			wantErr: `auth.mode must be one of static, oauth2, forward, got "basic"`,
		},
		"telegram without chat": {
			mutate:  func(c *Config) { c.Telegram.BotToken = "bot" },
			wantErr: "telegram.chat_id is required when telegram.bot_token is set",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("ERP_ADMIN_TEST_SECRET", "s3cret")

	assert.Equal(t, "s3cret", expandEnvVar("${ERP_ADMIN_TEST_SECRET}"))
	assert.Equal(t, "${ERP_ADMIN_TEST_UNSET}", expandEnvVar("${ERP_ADMIN_TEST_UNSET}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
	assert.Empty(t, expandEnvVar(""))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"admin", "read"}, splitList(" admin, read ,,"))
	assert.Nil(t, splitList(""))
}
