package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	GRPC_ADDR         gRPC bind address
//	DATABASE_URL      PostgreSQL DSN; POSTGRES_URL is accepted as an alias,
//	                  and the postgresql:// / postgresql+asyncpg:// schemes
//	                  are normalized to postgres://
//	POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_HOST, POSTGRES_PORT,
//	POSTGRES_DB       assemble a DSN when no full URL is given
//	JWT_SECRET        HMAC signing secret; BOT_TOKEN is accepted as a
//	                  legacy fallback
//	JWT_TTL_SECONDS   access token lifetime in seconds
//	ADMIN_IDS         JSON array of privileged subject ids, e.g. [42,43]
func parseEnv(config *Config) error {
	if v := os.Getenv("GRPC_ADDR"); v != "" {
		config.EndpointAddrGRPC = v
	}

	if dsn := databaseDSNFromEnv(); dsn != "" {
		config.DatabaseDSN = dsn
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	} else if v := os.Getenv("BOT_TOKEN"); v != "" {
		config.SecretKey = v
	}

	if v := os.Getenv("JWT_TTL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("JWT_TTL_SECONDS: invalid value %q", v)
		}
		config.TokenValidityDuration = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("ADMIN_IDS"); v != "" {
		var ids []uint64
		if err := json.Unmarshal([]byte(v), &ids); err != nil {
			return fmt.Errorf("ADMIN_IDS: expected a JSON array of ids: %w", err)
		}
		config.AdminIDs = ids
	}

	return nil
}

// databaseDSNFromEnv resolves the DSN: a full URL wins, otherwise the DSN
// is assembled from POSTGRES_* parts when a host is present.
func databaseDSNFromEnv() string {
	for _, name := range []string{"DATABASE_URL", "POSTGRES_URL"} {
		if v := os.Getenv(name); v != "" {
			return normalizeDSN(v)
		}
	}

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}

	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("POSTGRES_USER")
	if user == "" {
		user = "postgres"
	}
	db := os.Getenv("POSTGRES_DB")
	if db == "" {
		db = user
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   host + ":" + port,
		Path:   "/" + db,
	}
	if password := os.Getenv("POSTGRES_PASSWORD"); password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}

	return u.String()
}

// normalizeDSN maps foreign driver schemes to the form pgx accepts.
func normalizeDSN(dsn string) string {
	for _, prefix := range []string{"postgresql+asyncpg://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "postgres://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
