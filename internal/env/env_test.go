package env

import (
	"testing"
	"time"
)

func TestGetters(t *testing.T) {
	t.Setenv("POS_TEST_STRING", "board")
	t.Setenv("POS_TEST_INT", "7")
	t.Setenv("POS_TEST_BAD_INT", "seven")
	t.Setenv("POS_TEST_BOOL", "false")
	t.Setenv("POS_TEST_DURATION", "3s")

	if got := GetString("POS_TEST_STRING", "compact"); got != "board" {
		t.Errorf("GetString: got %q", got)
	}
	if got := GetString("POS_TEST_UNSET", "compact"); got != "compact" {
		t.Errorf("GetString fallback: got %q", got)
	}
	if got := GetInt("POS_TEST_INT", 1); got != 7 {
		t.Errorf("GetInt: got %d", got)
	}
	if got := GetInt("POS_TEST_BAD_INT", 1); got != 1 {
		t.Errorf("GetInt fallback on bad value: got %d", got)
	}
	if got := GetBool("POS_TEST_BOOL", true); got {
		t.Errorf("GetBool: got %v", got)
	}
	if got := GetDuration("POS_TEST_DURATION", time.Second); got != 3*time.Second {
		t.Errorf("GetDuration: got %v", got)
	}
}
