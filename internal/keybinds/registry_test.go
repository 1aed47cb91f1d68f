package keybinds

import (
	"reflect"
	"testing"
)

func TestMatch_ContextThenGlobal(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name    string
		context Context
		key     string
		want    Action
		found   bool
	}{
		{"explorer key", ContextExplorer, "j", ActionNavigateDown, true},
		{"content key", ContextContent, "s", ActionToggleSource, true},
		{"global fallback", ContextExplorer, "ctrl+p", ActionQuickOpen, true},
		{"global from text context", ContextTerminal, "ctrl+c", ActionQuitForce, true},
		{"terminal submit", ContextTerminal, "enter", ActionSubmit, true},
		{"printable key in terminal", ContextTerminal, "j", "", false},
		{"unbound", ContextExplorer, "z", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := r.Match(tt.context, tt.key)
			if ok != tt.found || action != tt.want {
				t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)", tt.context, tt.key, action, ok, tt.want, tt.found)
			}
		})
	}
}

func TestMatchMultiKey_Sequence(t *testing.T) {
	r := NewDefaultRegistry()

	action, complete, partial := r.MatchMultiKey(ContextContent, "g")
	if action != "" || complete || !partial {
		t.Fatalf("first g = (%q, %v, %v), want partial", action, complete, partial)
	}

	action, complete, partial = r.MatchMultiKey(ContextContent, "g")
	if action != ActionGoToTop || !complete || partial {
		t.Errorf("second g = (%q, %v, %v), want go_to_top", action, complete, partial)
	}

	// a broken sequence drops the first key and keeps the second
	r.MatchMultiKey(ContextContent, "g")
	action, complete, _ = r.MatchMultiKey(ContextContent, "j")
	if !complete || action != ActionNavigateDown {
		t.Errorf("g then j = (%q, %v), want navigate_down", action, complete)
	}

	// non-sequence keys match directly
	action, complete, partial = r.MatchMultiKey(ContextContent, "j")
	if action != ActionNavigateDown || !complete || partial {
		t.Errorf("j = (%q, %v, %v)", action, complete, partial)
	}
}

func TestMatchMultiKey_NoSequenceForWordKeys(t *testing.T) {
	r := NewDefaultRegistry()

	// "up" is a key name, not a u-p sequence
	_, _, partial := r.MatchMultiKey(ContextExplorer, "u")
	if partial {
		t.Error("u should not start a sequence")
	}
}

func TestClearMultiKeyState(t *testing.T) {
	r := NewDefaultRegistry()

	r.MatchMultiKey(ContextExplorer, "g")
	r.ClearMultiKeyState(ContextExplorer)

	_, _, partial := r.MatchMultiKey(ContextExplorer, "g")
	if !partial {
		t.Error("g after clear should start a new sequence")
	}
}

func TestUnbind(t *testing.T) {
	r := NewDefaultRegistry()

	removed := r.Unbind(ContextExplorer, ActionActivate)
	if want := []string{" ", "enter", "l"}; !reflect.DeepEqual(removed, want) {
		t.Errorf("Unbind removed %q, want %q", removed, want)
	}
	if hasBinding(r, ContextExplorer, "enter") {
		t.Error("enter still bound after Unbind")
	}
}

func TestGetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBindingString(ContextExplorer, ActionNavigateDown); got != "down, j" {
		t.Errorf("GetBindingString(navigate_down) = %q", got)
	}
	if got := r.GetBindingString(ContextExplorer, ActionQuickOpen); got != "ctrl+p" {
		t.Errorf("global fallback = %q", got)
	}
	if got := r.GetBindingString(ContextTerminal, ActionCopyEmail); got != "unbound" {
		t.Errorf("unbound action = %q", got)
	}
}

func TestListBindings_ContextBeforeGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextSearch, "esc", ActionCancel)
	r.Register(ContextSearch, "enter", ActionSubmit)

	got := r.ListBindings(ContextSearch)
	want := []Binding{
		{Key: "enter", Action: ActionSubmit, Context: ContextSearch},
		{Key: "esc", Action: ActionCancel, Context: ContextSearch},
		{Key: "ctrl+c", Action: ActionQuitForce, Context: ContextGlobal},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListBindings = %+v, want %+v", got, want)
	}
}

func TestDefaults_AreValid(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())
	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("default bindings have issues:\n%s", result)
	}
}

func TestIsTextContext(t *testing.T) {
	for _, c := range []Context{ContextTerminal, ContextSearch, ContextQuickOpen} {
		if !IsTextContext(c) {
			t.Errorf("IsTextContext(%s) = false", c)
		}
	}
	for _, c := range []Context{ContextGlobal, ContextExplorer, ContextContent, ContextMenu} {
		if IsTextContext(c) {
			t.Errorf("IsTextContext(%s) = true", c)
		}
	}
}

func TestGetActionInfo(t *testing.T) {
	if info := GetActionInfo(ActionBuyCoffee); info.Description != "Buy me a coffee" {
		t.Errorf("GetActionInfo(buy_coffee) = %+v", info)
	}
	if info := GetActionInfo("made_up"); info.Category != "Unknown" {
		t.Errorf("unknown action category = %q", info.Category)
	}
	if len(KnownActions()) != len(actionInfos) {
		t.Error("KnownActions does not cover every action")
	}
}

func TestMatchMultiKey_BrokenSequenceRetriesKey(t *testing.T) {
	r := NewDefaultRegistry()

	if _, _, partial := r.MatchMultiKey(ContextExplorer, "g"); !partial {
		t.Fatal("g should start a sequence")
	}

	action, complete, partial := r.MatchMultiKey(ContextExplorer, "tab")
	if action != ActionSwitchFocus || !complete || partial {
		t.Errorf("g then tab = (%q, %v, %v), want (%q, true, false)", action, complete, partial, ActionSwitchFocus)
	}

	// the broken sequence leaves nothing pending
	action, complete, _ = r.MatchMultiKey(ContextExplorer, "j")
	if action != ActionNavigateDown || !complete {
		t.Errorf("j after broken sequence = (%q, %v)", action, complete)
	}
}

func TestMatchMultiKey_BrokenSequenceCanRestart(t *testing.T) {
	r := NewDefaultRegistry()

	r.MatchMultiKey(ContextExplorer, "g")
	r.MatchMultiKey(ContextExplorer, "x")

	if _, _, partial := r.MatchMultiKey(ContextExplorer, "g"); !partial {
		t.Error("g after a broken sequence should start a new one")
	}
}

func hasBinding(r *Registry, context Context, key string) bool {
	_, ok := r.Match(context, key)
	return ok
}
