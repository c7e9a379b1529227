package bootstrap

import (
	"testing"

	"github.com/dalemusser/agendahub/internal/domain/models"
	"github.com/dalemusser/agendahub/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		SpreadsheetID:   "1AbC",
		CredentialsFile: "service_account.json",
		CurrentSheet:    "Current",
		HistorySheet:    "History",
		AdminPassword:   "1234",
		SessionKey:      "0123456789abcdef0123456789abcdef",
		SessionName:     "agendahub-session",
	}
}

func TestValidateConfig_AcceptsCompleteConfig(t *testing.T) {
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig rejected a valid config: %v", err)
	}
}

func TestValidateConfig_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"missing spreadsheet id", func(c *AppConfig) { c.SpreadsheetID = "" }},
		{"no credential source", func(c *AppConfig) { c.CredentialsJSON = ""; c.CredentialsFile = "" }},
		{"unnamed worksheet", func(c *AppConfig) { c.CurrentSheet = "" }},
		{"same worksheet twice", func(c *AppConfig) { c.HistorySheet = c.CurrentSheet }},
	}

	coreCfg := &config.CoreConfig{Env: "dev"}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appCfg := validAppConfig()
			tc.mutate(&appCfg)
			if err := ValidateConfig(coreCfg, appCfg, zap.NewNop()); err == nil {
				t.Fatal("ValidateConfig accepted a broken config")
			}
		})
	}
}

func TestEnsureHeader_WritesIntoEmptyWorksheet(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A freshly created worksheet reads back zero rows.
	tbl := testutil.NewFakeTable(nil)
	if err := tbl.ClearRange(ctx, "A1:Z1000"); err != nil {
		t.Fatalf("emptying fake worksheet: %v", err)
	}

	if err := ensureHeader(ctx, tbl, models.CurrentHeader(), "Current", zap.NewNop()); err != nil {
		t.Fatalf("ensureHeader: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("worksheet has %d rows, want just the header", tbl.Len())
	}
	if got := tbl.Row(1); got[0] != "입력일시" {
		t.Fatalf("header row starts with %q", got[0])
	}
}

func TestEnsureHeader_LeavesPopulatedWorksheetAlone(t *testing.T) {
	tbl := testutil.NewCurrentTable()
	testutil.SeedCurrent(tbl, testutil.SampleRecord("기획팀", "1234"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := tbl.Len()
	if err := ensureHeader(ctx, tbl, models.CurrentHeader(), "Current", zap.NewNop()); err != nil {
		t.Fatalf("ensureHeader: %v", err)
	}
	if tbl.Len() != before {
		t.Fatalf("row count changed from %d to %d", before, tbl.Len())
	}
}

func TestHeaderMatches(t *testing.T) {
	want := models.CurrentHeader()

	if !headerMatches(want, want) {
		t.Error("identical headers reported as mismatch")
	}
	if !headerMatches(append(append([]string{}, want...), "추가열"), want) {
		t.Error("extra trailing column should still match")
	}
	if headerMatches(want[:3], want) {
		t.Error("short header reported as match")
	}
	swapped := append([]string{}, want...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if headerMatches(swapped, want) {
		t.Error("reordered header reported as match")
	}
}
