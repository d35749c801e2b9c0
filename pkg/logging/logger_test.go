package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_CreatesRunLog(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir)
	require.NoError(t, err)
	defer logger.Close()

	require.NotEmpty(t, logger.RunID())

	_, err = os.Stat(filepath.Join(dir, "runs", logger.RunID()+".jsonl"))
	assert.NoError(t, err, "run log file should exist")
}

func TestLogger_WritesStructuredEvents(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir)
	require.NoError(t, err)

	logger.SetTest("TestLogger_WritesStructuredEvents")
	require.NoError(t, logger.Info(CategoryPage, "cards_listed", "built product card list", map[string]any{"count": 6}))
	require.NoError(t, logger.Error(CategoryDriver, "navigate_failed", "connection refused", nil))
	require.NoError(t, logger.Close())

	events := readEvents(t, filepath.Join(dir, "runs", logger.RunID()+".jsonl"))
	require.Len(t, events, 2)

	assert.Equal(t, CategoryPage, events[0].Category)
	assert.Equal(t, "cards_listed", events[0].EventType)
	assert.Equal(t, logger.RunID(), events[0].RunID)
	assert.Equal(t, "TestLogger_WritesStructuredEvents", events[0].Test)
	assert.EqualValues(t, 6, events[0].Details["count"])
	assert.False(t, events[0].Timestamp.IsZero())

	// errors are duplicated into the shared error log
	errEvents := readEvents(t, filepath.Join(dir, "errors.jsonl"))
	require.Len(t, errEvents, 1)
	assert.Equal(t, "navigate_failed", errEvents[0].EventType)
}

func TestLogger_MinLevelFiltersDebug(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir)
	require.NoError(t, err)

	require.NoError(t, logger.Debug(CategoryPage, "detail", "skipped by default level", nil))
	logger.SetMinLevel(LevelDebug)
	require.NoError(t, logger.Debug(CategoryPage, "detail", "written after level change", nil))
	require.NoError(t, logger.Close())

	events := readEvents(t, filepath.Join(dir, "runs", logger.RunID()+".jsonl"))
	require.Len(t, events, 1)
	assert.Equal(t, "written after level change", events[0].Message)
}

func TestNop_DiscardsEverything(t *testing.T) {
	logger := Nop()
	assert.NoError(t, logger.Info(CategoryFlow, "anything", "goes nowhere", nil))
	assert.NoError(t, logger.Error(CategoryFlow, "anything", "also nowhere", nil))
	assert.NoError(t, logger.Close())
}

func readEvents(t *testing.T, path string) []Event {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}
	require.NoError(t, scanner.Err())
	return events
}
