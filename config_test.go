package authgate

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(c *Config) {},
			wantValid: true,
		},
		{
			name: "password memory too low",
			mutate: func(c *Config) {
				c.Password.Memory = 1024
			},
			wantValid: false,
		},
		{
			name: "password time zero",
			mutate: func(c *Config) {
				c.Password.Time = 0
			},
			wantValid: false,
		},
		{
			name: "password parallelism zero",
			mutate: func(c *Config) {
				c.Password.Parallelism = 0
			},
			wantValid: false,
		},
		{
			name: "salt too short",
			mutate: func(c *Config) {
				c.Password.SaltLength = 8
			},
			wantValid: false,
		},
		{
			name: "key too short",
			mutate: func(c *Config) {
				c.Password.KeyLength = 8
			},
			wantValid: false,
		},
		{
			name: "token length minimum accepted",
			mutate: func(c *Config) {
				c.Session.TokenLength = 16
			},
			wantValid: true,
		},
		{
			name: "token length below minimum",
			mutate: func(c *Config) {
				c.Session.TokenLength = 15
			},
			wantValid: false,
		},
		{
			name: "empty redis prefix",
			mutate: func(c *Config) {
				c.Session.RedisPrefix = ""
			},
			wantValid: false,
		},
		{
			name: "audit enabled without buffer",
			mutate: func(c *Config) {
				c.Audit.Enabled = true
				c.Audit.BufferSize = 0
			},
			wantValid: false,
		},
		{
			name: "audit disabled ignores buffer",
			mutate: func(c *Config) {
				c.Audit.Enabled = false
				c.Audit.BufferSize = 0
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantValid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.wantValid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestWithConfigDoesNotAliasCaller(t *testing.T) {
	cfg := defaultConfig()
	builder := New().WithConfig(cfg)

	cfg.Session.TokenLength = 4

	if builder.config.Session.TokenLength != 32 {
		t.Fatalf("builder config mutated through caller copy")
	}
}
