package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                   string
	MongoURI               string
	MongoDatabase          string
	PingCollection         string
	ApplicationCollection  string
	Timeout                time.Duration
	Timezone               string
	ServerLog              *log.Logger
	JWTConfigs             []JWTConfig
	JWTAudience            string
	AdminEmails            []string
	ApplicantEmailSuffixes []string
	AllowedOrigins         []string
	DraftCookieSecret      []byte
	DraftCookieSecure      bool
	DraftTTL               time.Duration
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	draftTTL := 2 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("DRAFT_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			draftTTL = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	adminEmails := parseList("ADMIN_EMAILS", nil)
	if len(adminEmails) == 0 {
		log.Fatal("ADMIN_EMAILS must be configured")
	}
	applicantSuffixes := parseList("APPLICANT_EMAIL_SUFFIXES", []string{"vitstudent.ac.in", "vit.ac.in"})

	draftSecret := strings.TrimSpace(os.Getenv("DRAFT_COOKIE_SECRET"))
	if draftSecret == "" {
		log.Fatal("DRAFT_COOKIE_SECRET must be configured")
	}
	draftCookieSecure := strings.EqualFold(strings.TrimSpace(os.Getenv("DRAFT_COOKIE_SECURE")), "true")

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_GOOGLE_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_GOOGLE_JWT_ISSUER", "nova-cps-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_PORTAL_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_PORTAL_JWT_ISSUER", "auth-portal"),
			Secret: []byte(secret),
		})
	}

	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_GOOGLE_JWT_SECRET or AUTH_PORTAL_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))
	if jwtAudience == "" {
		jwtAudience = strings.TrimSpace(os.Getenv("AUTH_GOOGLE_JWT_AUDIENCE"))
	}

	cfg := Config{
		Addr:                   envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:               envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:          envOrDefault("MONGO_DB", "nova-cps"),
		PingCollection:         envOrDefault("PING_COLLECTION", "pings"),
		ApplicationCollection:  envOrDefault("APPLICATION_COLLECTION", "applications"),
		Timeout:                timeout,
		Timezone:               envOrDefault("TIMEZONE", "Asia/Kolkata"),
		ServerLog:              log.New(os.Stdout, "[nova-cps-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:             jwtConfigs,
		JWTAudience:            jwtAudience,
		AdminEmails:            adminEmails,
		ApplicantEmailSuffixes: applicantSuffixes,
		AllowedOrigins:         allowedOrigins,
		DraftCookieSecret:      []byte(draftSecret),
		DraftCookieSecure:      draftCookieSecure,
		DraftTTL:               draftTTL,
	}

	cfg.ServerLog.Printf("loaded config: admins=%d applicantSuffixes=%v", len(adminEmails), applicantSuffixes)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
