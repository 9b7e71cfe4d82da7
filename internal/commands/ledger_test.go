package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tierbank/internal/activity"
	"github.com/cleared-dev/tierbank/internal/ledger"
)

// initLedger creates a ledger with two owners and two accounts and returns
// the path of its config file.
func initLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runTierbank(t, "init", dir)
	require.NoError(t, err, out)

	support := filepath.Join(dir, "support")
	files := map[string]string{
		"owners.csv": "14,Morales,Wanda,7 Elm St,Springfield,IL\n" +
			"25,Tucker,Kenneth,9 Oak Ave,Portland,OR\n",
		"accounts.csv": "1212,1235667,1999-03-27 19:30:09 -0700\n" +
			"1213,66367,2002-11-02 08:15:00 -0700\n" +
			"1214,100,2003-01-01 00:00:00 -0700\n",
		"account_owners.csv": "1212,25\n1213,14\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(support, name), []byte(content), 0o644))
	}
	return filepath.Join(dir, "tierbank.yaml")
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.csv")
	require.NoError(t, os.WriteFile(path, []byte("op,account_id,amount,tier,opened\n"+body), 0o644))
	return path
}

func TestList(t *testing.T) {
	cfg := initLedger(t)

	out, err := runTierbank(t, "list", "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Account #1212 has belonged to Kenneth Tucker since 1999-03-27")
	assert.Contains(t, out, "has a balance of $12356.67.")
	assert.Contains(t, out, "Account #1213 has belonged to Wanda Morales")
	assert.NotContains(t, out, "Account #1214")
	assert.Contains(t, out, "2 accounts")
}

func TestList_EmptyLedger(t *testing.T) {
	dir := t.TempDir()
	_, err := runTierbank(t, "init", dir)
	require.NoError(t, err)

	out, err := runTierbank(t, "list", "--config", filepath.Join(dir, "tierbank.yaml"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "0 accounts")
}

func TestList_MissingSupportFiles(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "tierbank.yaml")
	_, err := runTierbank(t, "list", "--config", cfg)
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	cfg := initLedger(t)

	out, err := runTierbank(t, "show", "01213", "--config", cfg)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Account #1213 has belonged to Wanda Morales")
	assert.Contains(t, out, "7 Elm St, Springfield, IL")
	assert.Contains(t, out, "tier:            account")
}

func TestShow_NotFound(t *testing.T) {
	cfg := initLedger(t)

	out, err := runTierbank(t, "show", "9999", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, out, "account not found")
}

func TestRun(t *testing.T) {
	cfg := initLedger(t)
	script := writeScript(t, `withdraw,1212,356.67,,
open,77,13000,money_market,
withdraw,77,5000,,
withdraw,77,5000,,
deposit,77,500000,,
`)
	activityPath := filepath.Join(t.TempDir(), "activity.csv")

	out, err := runTierbank(t, "run", script, "--config", cfg, "--activity", activityPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "row 2 withdraw #1212: ok: balance $12000.00")
	assert.Contains(t, out, "account frozen, deposit at least $2100.00 to unfreeze")
	assert.Contains(t, out, "declined: account is frozen")
	assert.Contains(t, out, "account unfrozen")
	assert.Contains(t, out, "Ran 5 operations (1 declined)")

	entries, err := activity.Read(activityPath)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, ledger.ReasonFrozen, entries[3].Reason)
	assert.Equal(t, "507900.00", entries[4].Balance.StringFixed(2))
}

func TestRun_SkipImport(t *testing.T) {
	cfg := initLedger(t)
	script := writeScript(t, "deposit,1212,5,,\n")

	out, err := runTierbank(t, "run", script, "--config", cfg, "--skip-import")
	require.Error(t, err)
	assert.Contains(t, out, "row 2 (deposit)")
	assert.Contains(t, out, "account not found")
}

func TestRun_HardErrorKeepsActivity(t *testing.T) {
	cfg := initLedger(t)
	script := writeScript(t, "deposit,1212,5,,\nwithdraw,1212,-1,,\ndeposit,1212,5,,\n")
	activityPath := filepath.Join(t.TempDir(), "activity.csv")

	out, err := runTierbank(t, "run", script, "--config", cfg, "--activity", activityPath)
	require.Error(t, err)
	assert.Contains(t, out, "withdrawal amount is negative")

	data, err := os.ReadFile(activityPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2, "header plus the one completed operation")
}

func TestRun_CounterScopeAccount(t *testing.T) {
	cfg := initLedger(t)
	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	data = []byte(strings.Replace(string(data), "counter_scope: tier", "counter_scope: account", 1))
	require.NoError(t, os.WriteFile(cfg, data, 0o644))

	script := writeScript(t, `open,1,100,checking,
open,2,100,checking,
check,1,1,,
check,1,1,,
check,1,1,,
check,2,1,,
`)
	out, err := runTierbank(t, "run", script, "--config", cfg, "--skip-import")
	require.NoError(t, err, out)
	assert.Contains(t, out, "row 7 check #2: ok: balance $99.00\n")
}
