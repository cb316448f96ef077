package shell

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shunichi-ikebuchi/file-manager/pkg/console"
	"github.com/shunichi-ikebuchi/file-manager/pkg/db"
	"github.com/shunichi-ikebuchi/file-manager/pkg/ledger"
	"github.com/shunichi-ikebuchi/file-manager/pkg/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	actions []db.ActionRecord
	quizzes []db.QuizResult
}

func (f *fakeHistory) RecordAction(record db.ActionRecord) error {
	f.actions = append(f.actions, record)
	return nil
}

func (f *fakeHistory) RecordQuizResult(result db.QuizResult) error {
	f.quizzes = append(f.quizzes, result)
	return nil
}

func (f *fakeHistory) actionNames() []string {
	var names []string
	for _, a := range f.actions {
		names = append(names, a.Action)
	}
	return names
}

type harness struct {
	shell   *Shell
	out     *bytes.Buffer
	root    string
	history *fakeHistory
}

func newHarness(t *testing.T, ledgerFile string, lines ...string) *harness {
	t.Helper()
	color.NoColor = true

	root := t.TempDir()
	if ledgerFile == "" {
		ledgerFile = "bank_account.json"
	}
	resolver, err := pathutil.New(pathutil.Config{
		LaunchDir:    root,
		LedgerFile:   ledgerFile,
		SnapshotFile: "listdir.txt",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	history := &fakeHistory{}
	sh := New(Config{
		Console:   console.New(strings.NewReader(input), &out, console.Options{}),
		Resolver:  resolver,
		Ledger:    ledger.NewStore(resolver.GetLedgerPath()),
		History:   history,
		SessionID: "test-session",
		Currency:  "RUB",
		Version:   "test",
	})
	return &harness{shell: sh, out: &out, root: root, history: history}
}

func (h *harness) run(t *testing.T) string {
	t.Helper()
	require.NoError(t, h.shell.Run())
	return h.out.String()
}

func (h *harness) write(t *testing.T, name, content string) {
	t.Helper()
	path := filepath.Join(h.root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestQuit(t *testing.T) {
	h := newHarness(t, "", "13")
	out := h.run(t)

	assert.Contains(t, out, "13. Exit")
	assert.Contains(t, out, "Goodbye!")
	assert.Empty(t, h.history.actions)
}

func TestEndOfInputQuits(t *testing.T) {
	h := newHarness(t, "")
	h.shell.con = console.New(strings.NewReader(""), h.out, console.Options{})

	assert.Contains(t, h.run(t), "Goodbye!")
}

func TestInvalidSelection(t *testing.T) {
	h := newHarness(t, "", "99", "abc", "", "13")
	out := h.run(t)

	assert.Equal(t, 3, strings.Count(out, "Invalid menu selection! Please choose 1-13."))
}

func TestCreateFolderThenList(t *testing.T) {
	h := newHarness(t, "", "1", "projects", "5", "13")
	out := h.run(t)

	assert.DirExists(t, filepath.Join(h.root, "projects"))
	assert.Contains(t, out, "Folder 'projects' created!")
	assert.Equal(t, 1, strings.Count(out, "📁 projects"))
	assert.Contains(t, out, "done: create-folder")
	assert.Equal(t, []string{"create-folder"}, h.history.actionNames())
	assert.Equal(t, "test-session", h.history.actions[0].SessionID)
}

func TestCreateFolderErrors(t *testing.T) {
	h := newHarness(t, "", "1", "", "1", "taken", "13")
	h.write(t, "taken", "x")
	out := h.run(t)

	assert.Contains(t, out, "input must not be empty")
	assert.Contains(t, out, "already exists")
	assert.Empty(t, h.history.actions)
}

func TestDelete(t *testing.T) {
	h := newHarness(t, "", "2", "keep.txt", "n", "2", "gone.txt", "y", "2", "missing", "y", "13")
	h.write(t, "keep.txt", "x")
	h.write(t, "gone.txt", "x")
	out := h.run(t)

	assert.FileExists(t, filepath.Join(h.root, "keep.txt"))
	assert.NoFileExists(t, filepath.Join(h.root, "gone.txt"))
	assert.Contains(t, out, "Action cancelled.")
	assert.Contains(t, out, "'gone.txt' deleted!")
	assert.Contains(t, out, "entry not found")
	assert.Equal(t, []string{"delete"}, h.history.actionNames())
}

func TestCopy(t *testing.T) {
	h := newHarness(t, "", "3", "a.txt", "b.txt", "3", "a.txt", "b.txt", "13")
	h.write(t, "a.txt", "hello")
	out := h.run(t)

	data, err := os.ReadFile(filepath.Join(h.root, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Contains(t, out, "'a.txt' copied to 'b.txt'!")
	assert.Contains(t, out, "already exists")
}

func TestListings(t *testing.T) {
	h := newHarness(t, "", "4", "6", "5", "13")
	h.write(t, "b.txt", "bb")
	h.write(t, "a.txt", "a")
	require.NoError(t, os.Mkdir(filepath.Join(h.root, "z"), 0755))
	out := h.run(t)

	assert.Contains(t, out, "FILES:")
	assert.Contains(t, out, "  1. 📄 a.txt (1 bytes)")
	assert.Contains(t, out, "  2. 📄 b.txt (2 bytes)")
	assert.Contains(t, out, "  1. 📁 z")
}

func TestListEmptyDirectory(t *testing.T) {
	h := newHarness(t, "", "4", "13")
	out := h.run(t)

	assert.Contains(t, out, "No files found")
	assert.Contains(t, out, "No folders found")
}

func TestChangeDir(t *testing.T) {
	h := newHarness(t, "", "11", "missing", "11", "sub", "11", "..", "11", "sub", "13")
	require.NoError(t, os.Mkdir(filepath.Join(h.root, "sub"), 0755))
	out := h.run(t)

	assert.Contains(t, out, "Path does not exist or is not a folder!")
	assert.Equal(t, filepath.Join(h.root, "sub"), h.shell.resolver.GetWorkDir())
	assert.Equal(t, []string{"change-dir", "change-dir", "change-dir"}, h.history.actionNames())
}

func TestSnapshotExport(t *testing.T) {
	h := newHarness(t, "", "12", "13")
	h.write(t, "b.txt", "b")
	h.write(t, "a.txt", "a")
	require.NoError(t, os.Mkdir(filepath.Join(h.root, "z"), 0755))
	out := h.run(t)

	data, err := os.ReadFile(filepath.Join(h.root, "listdir.txt"))
	require.NoError(t, err)
	assert.Equal(t, "files:\na.txt\nb.txt\n\ndirs:\nz", string(data))
	assert.Contains(t, out, "Files found: 2, folders: 1")
}

func TestSnapshotFollowsWorkingDirectory(t *testing.T) {
	h := newHarness(t, "", "11", "sub", "12", "13")
	h.write(t, filepath.Join("sub", "inner.txt"), "x")
	h.run(t)

	data, err := os.ReadFile(filepath.Join(h.root, "sub", "listdir.txt"))
	require.NoError(t, err)
	assert.Equal(t, "files:\ninner.txt\n\ndirs:", string(data))
	assert.NoFileExists(t, filepath.Join(h.root, "listdir.txt"))
}

func readLedger(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}

func TestAccountSession(t *testing.T) {
	h := newHarness(t, "",
		"10",
		"1", "100", // deposit
		"2", "30", "coffee", // purchase
		"2", "500", "tv", // insufficient
		"1", "-5", // non-positive deposit
		"1", "abc", // invalid amount
		"3", // history
		"9", // invalid action
		"5", // back
		"13",
	)
	out := h.run(t)

	assert.Contains(t, out, "Account topped up by 100.00 RUB")
	assert.Contains(t, out, "Purchase 'coffee' completed!")
	assert.Contains(t, out, "Insufficient funds!")
	assert.Contains(t, out, "Amount must be positive!")
	assert.Contains(t, out, "Invalid amount!")
	assert.Contains(t, out, "Total spent: 30.00 RUB")
	assert.Contains(t, out, "Balance after: 70.00 RUB")
	assert.Contains(t, out, "Invalid selection!")
	assert.Contains(t, out, "Data saved!")
	assert.Equal(t, 1, strings.Count(out, "Account topped up"), "rejected deposit must not print success")

	raw := readLedger(t, filepath.Join(h.root, "bank_account.json"))
	assert.Equal(t, 70.0, raw["balance"])
	purchases := raw["purchases"].([]any)
	require.Len(t, purchases, 1)
	assert.Equal(t, "coffee", purchases[0].(map[string]any)["name"])

	assert.Equal(t, []string{"deposit", "purchase", "account"}, h.history.actionNames())
}

func TestAccountClearHistory(t *testing.T) {
	h := newHarness(t, "",
		"10", "1", "50", "2", "10", "", "4", "n", "4", "y", "5",
		"10", "3", "5",
		"13",
	)
	out := h.run(t)

	assert.Contains(t, out, "Purchase 'Purchase' completed!")
	assert.Contains(t, out, "Action cancelled.")
	assert.Contains(t, out, "History cleared!")
	assert.Contains(t, out, "Purchase history is empty")

	raw := readLedger(t, filepath.Join(h.root, "bank_account.json"))
	assert.Equal(t, 40.0, raw["balance"])
	assert.Empty(t, raw["purchases"])
}

func TestAccountLedgerStaysAtLaunchDirectory(t *testing.T) {
	h := newHarness(t, "", "11", "sub", "10", "1", "5", "5", "13")
	require.NoError(t, os.Mkdir(filepath.Join(h.root, "sub"), 0755))
	h.run(t)

	assert.FileExists(t, filepath.Join(h.root, "bank_account.json"))
	assert.NoFileExists(t, filepath.Join(h.root, "sub", "bank_account.json"))
}

func TestAccountCorruptLedger(t *testing.T) {
	h := newHarness(t, "", "10", "5", "13")
	h.write(t, "bank_account.json", "{broken")
	out := h.run(t)

	assert.Contains(t, out, "could not be loaded")
	assert.Contains(t, out, "Current balance: 0.00 RUB")
}

func TestAccountUnsavedStateIsKept(t *testing.T) {
	// the ledger's parent is a regular file, so every save fails
	h := newHarness(t, filepath.Join("blocker", "bank_account.json"),
		"10", "1", "10", "5",
		"10", "5",
		"13",
	)
	h.write(t, "blocker", "not a directory")
	out := h.run(t)

	assert.Contains(t, out, "Account topped up by 10.00 RUB")
	assert.Contains(t, out, "Save error:")
	assert.Contains(t, out, "Continuing with account data that has not been saved yet")
	assert.Equal(t, 2, strings.Count(out, "Current balance: 10.00 RUB"))
	assert.NotContains(t, out, "Data saved!")
	assert.NotContains(t, out, "done: account")
	assert.Equal(t, []string{"deposit"}, h.history.actionNames())
}

func TestAccountRejectsOutOfRangeAmount(t *testing.T) {
	h := newHarness(t, "", "10", "1", "1e400000000", "2", "1e400000000", "5", "13")
	out := h.run(t)

	assert.Equal(t, 2, strings.Count(out, "Invalid amount!"))
	assert.NotContains(t, out, "Account topped up")

	raw := readLedger(t, filepath.Join(h.root, "bank_account.json"))
	assert.Equal(t, 0.0, raw["balance"])
}

func TestMenuSelectionMustBeExact(t *testing.T) {
	h := newHarness(t, "", "01", "+1", "013", "13")
	out := h.run(t)

	assert.Equal(t, 3, strings.Count(out, "Invalid menu selection!"))
	assert.NotContains(t, out, "CREATE FOLDER")
}

func TestAccountEndOfInputSaves(t *testing.T) {
	h := newHarness(t, "", "10", "1", "25")
	out := h.run(t)

	assert.Contains(t, out, "Goodbye!")
	raw := readLedger(t, filepath.Join(h.root, "bank_account.json"))
	assert.Equal(t, 25.0, raw["balance"])
}

func TestQuiz(t *testing.T) {
	h := newHarness(t, "", "9", "3", "2", "2", "3", "1", "13")
	out := h.run(t)

	assert.Contains(t, out, "Result: 4/5 correct answers (80.0%)")
	require.Len(t, h.history.quizzes, 1)
	assert.Equal(t, db.QuizResult{SessionID: "test-session", Correct: 4, Total: 5}, h.history.quizzes[0])
}

func TestSystemInfoAndAbout(t *testing.T) {
	h := newHarness(t, "", "7", "8", "13")
	out := h.run(t)

	assert.Contains(t, out, "Architecture:")
	assert.Contains(t, out, "Version: test")
	assert.Contains(t, out, "Session: test-session")
}

func TestWithoutHistory(t *testing.T) {
	h := newHarness(t, "", "1", "dir", "13")
	h.shell.history = nil

	h.run(t)
	assert.DirExists(t, filepath.Join(h.root, "dir"))
}
