package database

import "testing"

func TestMaintenanceDSN(t *testing.T) {
	tests := []struct {
		dsn    string
		master string
		name   string
		ok     bool
	}{
		{"postgres://u:p@db:5432/inhalebay?sslmode=disable", "postgres://u:p@db:5432/postgres?sslmode=disable", "inhalebay", true},
		{"postgresql://db/loyalty", "postgresql://db/postgres", "loyalty", true},
		{"postgres://db/postgres", "", "", false},
		{"postgres://db", "", "", false},
		{"host=db user=u dbname=inhalebay", "", "", false},
	}
	for _, tt := range tests {
		master, name, ok := maintenanceDSN(tt.dsn)
		if master != tt.master || name != tt.name || ok != tt.ok {
			t.Errorf("maintenanceDSN(%q) = %q, %q, %v", tt.dsn, master, name, ok)
		}
	}
}
