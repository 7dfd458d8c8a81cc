package envvars

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	Environment       = "ENVIRONMENT"
	Port              = "PORT"
	AppID             = "APP_ID"
	StoreBackend      = "STORE_BACKEND"
	FirebaseProjectID = "FIREBASE_PROJECT_ID"
	FirebaseAPIKey    = "FIREBASE_API_KEY"
	SQLitePath        = "SQLITE_PATH"
	RedisAddr         = "REDIS_ADDR"
	CatalogBucket     = "CATALOG_BUCKET"
	CatalogObject     = "CATALOG_OBJECT"
	TxMaxAttempts     = "TX_MAX_ATTEMPTS"
)

const (
	ProductionEnv = "production"
	DevEnv        = "dev"
)

const (
	BackendFirestore = "firestore"
	BackendSQLite    = "sqlite"
	BackendMemory    = "memory"
)

type Env struct {
	Environment       string
	Port              string
	AppID             string
	StoreBackend      string
	FirebaseProjectID string
	FirebaseAPIKey    string
	SQLitePath        string
	RedisAddr         string
	CatalogBucket     string
	CatalogObject     string
	TxMaxAttempts     int
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func GetEnv() Env {
	attempts, err := strconv.Atoi(lookup(TxMaxAttempts, "5"))
	if err != nil {
		attempts = 0
	}
	return Env{
		Environment:       lookup(Environment, DevEnv),
		Port:              lookup(Port, "8080"),
		AppID:             lookup(AppID, "aray"),
		StoreBackend:      lookup(StoreBackend, BackendFirestore),
		FirebaseProjectID: lookup(FirebaseProjectID, ""),
		FirebaseAPIKey:    lookup(FirebaseAPIKey, ""),
		SQLitePath:        lookup(SQLitePath, "aray.db"),
		RedisAddr:         lookup(RedisAddr, ""),
		CatalogBucket:     lookup(CatalogBucket, ""),
		CatalogObject:     lookup(CatalogObject, "games.yaml"),
		TxMaxAttempts:     attempts,
	}
}

// Validate reports every setting that keeps the server from starting.
func (e Env) Validate() error {
	var errs []error
	switch e.StoreBackend {
	case BackendFirestore:
		if e.FirebaseProjectID == "" {
			errs = append(errs, fmt.Errorf("%s required for the firestore backend", FirebaseProjectID))
		}
	case BackendSQLite:
		if e.SQLitePath == "" {
			errs = append(errs, fmt.Errorf("%s required for the sqlite backend", SQLitePath))
		}
	case BackendMemory:
		if IsProd(e) {
			errs = append(errs, errors.New("the memory backend cannot run in production"))
		}
	default:
		errs = append(errs, fmt.Errorf("%s must be one of firestore, sqlite, memory: got %q", StoreBackend, e.StoreBackend))
	}
	if IsProd(e) && e.FirebaseAPIKey == "" {
		errs = append(errs, fmt.Errorf("%s required in production", FirebaseAPIKey))
	}
	if e.TxMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s must be a positive integer", TxMaxAttempts))
	}
	return errors.Join(errs...)
}

func IsProd(env Env) bool {
	return env.Environment == ProductionEnv
}

func IsDev(env Env) bool {
	return env.Environment == DevEnv
}
