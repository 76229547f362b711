package tui

import "testing"

func TestDefaultKeyMap(t *testing.T) {
	keys := defaultKeyMap()

	bindings := map[string][]string{
		"Up":     keys.Up.Keys(),
		"Down":   keys.Down.Keys(),
		"Top":    keys.Top.Keys(),
		"Bottom": keys.Bottom.Keys(),
		"Reload": keys.Reload.Keys(),
		"Help":   keys.Help.Keys(),
		"Quit":   keys.Quit.Keys(),
	}
	for name, k := range bindings {
		if len(k) == 0 {
			t.Errorf("%s binding has no keys", name)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := defaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}

	full := keys.FullHelp()
	if len(full) == 0 {
		t.Fatal("FullHelp is empty")
	}
	var total int
	for _, column := range full {
		total += len(column)
	}
	if total < len(keys.ShortHelp()) {
		t.Errorf("FullHelp has %d bindings, fewer than ShortHelp's %d", total, len(keys.ShortHelp()))
	}
}
