package appconfig

import "testing"

func TestAuthor_FlagTakesPrecedence(t *testing.T) {
	if got := Author("explicit-author"); got != "explicit-author" {
		t.Errorf("Author(explicit) = %q, want %q", got, "explicit-author")
	}
}

func TestGetString_UninitializedReturnsEmpty(t *testing.T) {
	if got := GetString("author"); got != "" {
		t.Errorf("GetString before Initialize = %q, want empty", got)
	}
	if got := GetBool("no-color"); got {
		t.Error("GetBool before Initialize = true, want false")
	}
}

func TestInitialize_SetsDefaults(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetBool("no-color"); got {
		t.Error("default no-color should be false")
	}
	if got := GetBool("json"); got {
		t.Error("default json should be false")
	}
}
