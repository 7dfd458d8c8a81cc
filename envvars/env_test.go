package envvars

import (
	"os"
	"reflect"
	"testing"
)

func TestGetEnv(t *testing.T) {
	// Backup and defer restore of environment variables
	backup := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range backup {
			pair := splitEnv(env)
			os.Setenv(pair[0], pair[1])
		}
	}()

	t.Run("all env vars set", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(Environment, "production")
		os.Setenv(Port, "9000")
		os.Setenv(AppID, "aray-test")
		os.Setenv(StoreBackend, BackendSQLite)
		os.Setenv(FirebaseProjectID, "demo-aray")
		os.Setenv(FirebaseAPIKey, "key")
		os.Setenv(SQLitePath, "/tmp/aray.db")
		os.Setenv(RedisAddr, "localhost:6379")
		os.Setenv(CatalogBucket, "aray-config")
		os.Setenv(CatalogObject, "catalog.yaml")
		os.Setenv(TxMaxAttempts, "9")

		expected := Env{
			Environment:       ProductionEnv,
			Port:              "9000",
			AppID:             "aray-test",
			StoreBackend:      BackendSQLite,
			FirebaseProjectID: "demo-aray",
			FirebaseAPIKey:    "key",
			SQLitePath:        "/tmp/aray.db",
			RedisAddr:         "localhost:6379",
			CatalogBucket:     "aray-config",
			CatalogObject:     "catalog.yaml",
			TxMaxAttempts:     9,
		}

		if got := GetEnv(); !reflect.DeepEqual(got, expected) {
			t.Errorf("GetEnv() = %v, want %v", got, expected)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()

		got := GetEnv()
		if got.Environment != DevEnv {
			t.Errorf("Expected environment to default to dev, got %s", got.Environment)
		}
		if got.AppID != "aray" || got.Port != "8080" || got.TxMaxAttempts != 5 {
			t.Errorf("unexpected defaults %+v", got)
		}
		if got.StoreBackend != BackendFirestore {
			t.Errorf("Expected firestore backend by default, got %s", got.StoreBackend)
		}
	})

	t.Run("bad attempts", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(TxMaxAttempts, "lots")
		if got := GetEnv(); got.TxMaxAttempts != 0 {
			t.Errorf("Expected unparsable attempts to be 0, got %d", got.TxMaxAttempts)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := Env{Environment: DevEnv, StoreBackend: BackendMemory, TxMaxAttempts: 5}
	tests := []struct {
		name    string
		mutate  func(*Env)
		wantErr bool
	}{
		{"memory in dev", func(e *Env) {}, false},
		{"memory in production", func(e *Env) { e.Environment = ProductionEnv; e.FirebaseAPIKey = "k" }, true},
		{"firestore without project", func(e *Env) { e.StoreBackend = BackendFirestore }, true},
		{"firestore with project", func(e *Env) { e.StoreBackend = BackendFirestore; e.FirebaseProjectID = "p" }, false},
		{"sqlite without path", func(e *Env) { e.StoreBackend = BackendSQLite }, true},
		{"unknown backend", func(e *Env) { e.StoreBackend = "postgres" }, true},
		{"zero attempts", func(e *Env) { e.TxMaxAttempts = 0 }, true},
		{"production without api key", func(e *Env) {
			e.Environment = ProductionEnv
			e.StoreBackend = BackendFirestore
			e.FirebaseProjectID = "p"
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := valid
			tt.mutate(&env)
			if err := env.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, true},
		{"dev env", Env{Environment: DevEnv}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProd(tt.env); got != tt.want {
				t.Errorf("IsProd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, false},
		{"dev env", Env{Environment: DevEnv}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDev(tt.env); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func splitEnv(env string) []string {
	var s []string
	for i := 0; i < len(env); i++ {
		if env[i] == '=' {
			s = append(s, env[:i])
			s = append(s, env[i+1:])
			return s
		}
	}
	// Return slice with empty strings if no '=' is found
	return []string{"", ""}
}
