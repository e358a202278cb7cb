// ABOUTME: Tests for the leveled logging wrapper
// ABOUTME: Validates level round-trips and that suppressed calls are harmless

package log

import "testing"

func TestLevelRoundTrip(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("GetLevel = %v; want LevelDebug", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("GetLevel = %v; want LevelError", GetLevel())
	}
}

func TestSuppressedDebugDoesNotPanic(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelInfo)
	Debug("suppressed: %s", "x")
}

func TestAllLevelsEmit(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)
}
