package database

import "testing"

func TestMaskDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"key value", "host=db user=app password=secret dbname=x", "host=db user=app password=*** dbname=x"},
		{"url", "postgres://app:secret@db:5432/x?sslmode=disable", "postgres://app:***@db:5432/x?sslmode=disable"},
		{"no password", "postgres://db:5432/x", "postgres://db:5432/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskDSN(tt.dsn); got != tt.want {
				t.Fatalf("MaskDSN() = %q, want %q", got, tt.want)
			}
		})
	}
}
