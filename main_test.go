package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected int
	}{
		{"January", 2026, 1, 31},
		{"February non-leap", 2025, 2, 28},
		{"February leap", 2024, 2, 29},
		{"April", 2026, 4, 30},
		{"December", 2026, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daysInMonth(tt.year, tt.month)
			if got != tt.expected {
				t.Errorf("daysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.expected)
			}
		})
	}
}

func TestBusinessCalendar(t *testing.T) {
	extra := []time.Time{time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)}
	c := newBusinessCalendar("Test Co", extra)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"regular weekday", time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), true},
		{"Saturday", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), false},
		{"Sunday", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), false},
		{"New Years Day", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"Songkran", time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC), false},
		{"King Bhumibol memorial", time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC), false},
		{"Fathers Day substitute", time.Date(2026, 12, 7, 0, 0, 0, 0, time.UTC), false},
		{"configured extra day", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), false},
		{"extra day other year", time.Date(2027, 3, 3, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.IsWorkday(tt.date)
			if got != tt.expected {
				t.Errorf("IsWorkday(%s) = %v, want %v", tt.date.Format("2006-01-02 Monday"), got, tt.expected)
			}
		})
	}
}

func TestClosedDays(t *testing.T) {
	c := newBusinessCalendar("Test Co", nil)

	closed := closedDays(c, 2026, time.October, []int{12, 13, 14, 17})
	for day, want := range map[int]bool{12: false, 13: true, 14: false, 17: true} {
		if closed[day] != want {
			t.Errorf("closedDays October %d = %v, want %v", day, closed[day], want)
		}
	}

	if got := closedDays(c, 0, time.October, []int{13}); len(got) != 0 {
		t.Errorf("closedDays without a year = %v, want empty", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.yaml")
		content := `company: Acme Transport
output_dir: out
fonts:
  regular: /fonts/THSarabunNew.ttf
smtp:
  host: smtp.example.com
  port: 587
  user: user@example.com
  pass: secret
email:
  from: user@example.com
  to: boss@example.com
holidays: ["2026-03-03"]
`
		os.WriteFile(configFile, []byte(content), 0644)

		cfg, err := loadConfig("config.yaml", configFile)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Company != "Acme Transport" {
			t.Errorf("expected company 'Acme Transport', got %q", cfg.Company)
		}
		if cfg.SMTP.Port != 587 || cfg.SMTP.Password != "secret" {
			t.Errorf("unexpected smtp config %+v", cfg.SMTP)
		}
		if cfg.Fonts.Regular != "/fonts/THSarabunNew.ttf" {
			t.Errorf("expected regular font path, got %q", cfg.Fonts.Regular)
		}
		if !cfg.EmailEnabled() {
			t.Error("expected EmailEnabled() to be true")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.yaml")
		os.WriteFile(configFile, []byte("fonts: {}\n"), 0644)

		cfg, err := loadConfig("config.yaml", configFile)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Company != defaultCompany {
			t.Errorf("expected default company, got %q", cfg.Company)
		}
		if cfg.OutputDir != defaultOutputDir {
			t.Errorf("expected default output dir, got %q", cfg.OutputDir)
		}
		if cfg.EmailEnabled() {
			t.Error("expected EmailEnabled() to be false without smtp host")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig("config.yaml", "/nonexistent/config.yaml")
		if err == nil {
			t.Error("loadConfig() expected error for missing file")
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.yaml")
		os.WriteFile(configFile, []byte("{{invalid yaml"), 0644)

		_, err := loadConfig("config.yaml", configFile)
		if err == nil {
			t.Error("loadConfig() expected error for invalid YAML")
		}
	})

	t.Run("invalid holiday", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "config.yaml")
		os.WriteFile(configFile, []byte("holidays: [\"03/03/2026\"]\n"), 0644)

		_, err := loadConfig("config.yaml", configFile)
		if err == nil {
			t.Error("loadConfig() expected error for invalid holiday date")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SMTP_PASS", "from-env")
	t.Setenv("PDF_FONT_PATH", "/env/regular.ttf")
	t.Setenv("PDF_FONT_BOLD_PATH", "/env/bold.ttf")

	cfg := &Config{SMTP: SMTPConfig{Password: "from-file"}}
	applyEnv(cfg)

	if cfg.SMTP.Password != "from-env" {
		t.Errorf("SMTP password = %q, want from-env", cfg.SMTP.Password)
	}
	if cfg.Fonts.Regular != "/env/regular.ttf" || cfg.Fonts.Bold != "/env/bold.ttf" {
		t.Errorf("fonts = %+v, want env paths", cfg.Fonts)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	batchFile := filepath.Join(dir, "documents.yaml")
	content := `payslips:
  - name: สมชาย ใจดี
    position: พนักงานขับรถ
    period: "1"
    month: 10
    year: 2026
    salary: 15000
receipts:
  - id: PV-001
    date: 2026-10-19
    emp_name: สมหญิง
    job_name: ขนดิน
    amount: 10000
    wht_rate: 3
`
	os.WriteFile(batchFile, []byte(content), 0644)

	cfg := &Config{Company: defaultCompany, OutputDir: filepath.Join(dir, "out")}
	if err := run(zap.NewNop(), cfg, batchFile); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"Payslip_สมชาย_ใจดี.pdf", "Voucher_PV-001.pdf"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
}
