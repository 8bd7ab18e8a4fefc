package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "CURRENCY_SYMBOL", "NUMBER_LOCALE", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "PROJECTS_TABLE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CurrencySymbol != "₹" || cfg.NumberLocale != "en-IN" {
		t.Fatalf("unexpected formatting defaults: %q %q", cfg.CurrencySymbol, cfg.NumberLocale)
	}
	if cfg.DynamoDB.ProjectsTable != "projects" || cfg.Payments.Mock {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "mock")
	t.Setenv("PROJECTS_TABLE", "prj")
	cfg := Load()
	if cfg.StorageDriver != StorageSQLite || !cfg.Payments.Mock || cfg.DynamoDB.ProjectsTable != "prj" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		in   string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"true", false, true},
		{"on", false, true},
		{"off", true, false},
		{"garbage", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Setenv("X_FLAG", tc.in)
			if got := ParseBool("X_FLAG", tc.def); got != tc.want {
				t.Fatalf("ParseBool(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
