package config

import "time"

// Fallbacks applied by applyDefaults for optional settings.
const (
	defaultTokenIssuer   = "voucher-api"
	defaultTokenDuration = 7 * 24 * time.Hour

	defaultLoginLimit   = 10
	defaultLoginWindow  = 15 * time.Minute
	defaultPublicLimit  = 60
	defaultPublicWindow = time.Minute

	defaultObjectsBucket = "agency-assets"
)

// applyDefaults fills optional fields that were left unset by every
// configuration source. Mandatory fields are left alone; validate reports
// them instead.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.RateLimit.LoginLimit == 0 {
		cfg.RateLimit.LoginLimit = defaultLoginLimit
	}
	if cfg.RateLimit.LoginWindow == 0 {
		cfg.RateLimit.LoginWindow = defaultLoginWindow
	}
	if cfg.RateLimit.PublicLimit == 0 {
		cfg.RateLimit.PublicLimit = defaultPublicLimit
	}
	if cfg.RateLimit.PublicWindow == 0 {
		cfg.RateLimit.PublicWindow = defaultPublicWindow
	}

	if cfg.Storage.Objects.Bucket == "" {
		cfg.Storage.Objects.Bucket = defaultObjectsBucket
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN, the token signing key, and the HTTP listen address are
// mandatory; a missing value aborts startup. The object-store credentials are
// deliberately optional: their absence only disables the logo upload feature
// at request time (503).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
