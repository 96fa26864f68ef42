package form

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func typeString(f *Form, s string) {
	for _, r := range s {
		f.Input(RuneKey(r))
	}
}

func TestConstructors(t *testing.T) {
	f := FromNames("Account", "Username", "Password")
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}
	if f.Selected() != NoSelection() {
		t.Errorf("Selected() = %v, want NoSelection", f.Selected())
	}
	if f.Submitted() {
		t.Error("new form should not be submitted")
	}
	for i := 0; i < f.Len(); i++ {
		if f.Field(i).Value() != "" {
			t.Errorf("field %d value = %q, want empty", i, f.Field(i).Value())
		}
	}

	prefilled := FromFields(NewFieldBuffer("Account", "acme"), NewFieldBuffer("User", "alice"))
	if got := prefilled.Status().Values(); !cmp.Equal(got, []string{"acme", "alice"}) {
		t.Errorf("FromFields values = %v", got)
	}
	if prefilled.Field(1).Name() != "User" {
		t.Errorf("Field(1).Name() = %q, want User", prefilled.Field(1).Name())
	}
}

func TestDefaultStyles(t *testing.T) {
	f := FromNames("A")

	if f.InvalidStyle().GetForeground() != RedColor || !f.InvalidStyle().GetBold() {
		t.Error("invalid style should be bold red")
	}
	if f.HoveredStyle().GetForeground() != CyanColor || f.HoveredStyle().GetBold() {
		t.Error("hovered style should be plain cyan")
	}
	if f.ActiveStyle().GetForeground() != CyanColor || !f.ActiveStyle().GetBold() {
		t.Error("active style should be bold cyan")
	}
	if f.DefaultStyle().GetBold() {
		t.Error("default style should have no decoration")
	}
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start Selection
		next  Selection
		prev  Selection
	}{
		{"none enters on first field", NoSelection(), Hovered(0), Hovered(0)},
		{"hovered middle", Hovered(1), Hovered(2), Hovered(0)},
		{"hovered wraps", Hovered(2), Hovered(0), Hovered(1)},
		{"hovered first wraps back", Hovered(0), Hovered(1), Hovered(2)},
		{"active stays active", Active(1), Active(2), Active(0)},
		{"active wraps", Active(2), Active(0), Active(1)},
		{"active first wraps back", Active(0), Active(1), Active(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromNames("A", "B", "C")

			f.Select(tt.start)
			f.NextField()
			if f.Selected() != tt.next {
				t.Errorf("NextField() from %v = %v, want %v", tt.start, f.Selected(), tt.next)
			}

			f.Select(tt.start)
			f.PrevField()
			if f.Selected() != tt.prev {
				t.Errorf("PrevField() from %v = %v, want %v", tt.start, f.Selected(), tt.prev)
			}
		})
	}
}

func TestNavigationEmptyForm(t *testing.T) {
	f := FromNames()
	f.NextField()
	f.PrevField()
	f.Input(CodeKey(KeyEnter))
	f.Input(CodeKey(KeyDown))

	if f.Selected() != NoSelection() {
		t.Errorf("Selected() = %v, want NoSelection on empty form", f.Selected())
	}
}

func TestNavigationWraparoundProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 7; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('A' + i))
		}

		for _, start := range []Selection{NoSelection(), Hovered(0), Active(0)} {
			f := FromNames(names...)
			f.Select(start)

			for step := 0; step < 200; step++ {
				if rng.Intn(2) == 0 {
					f.NextField()
				} else {
					f.PrevField()
				}

				i, ok := f.Selected().Index()
				if !ok {
					t.Fatalf("n=%d: selection lost its index after %d steps", n, step)
				}
				if i < 0 || i >= n {
					t.Fatalf("n=%d: index %d out of range after %d steps", n, i, step)
				}
			}
		}
	}
}

func TestInputNotActive(t *testing.T) {
	tests := []struct {
		name  string
		start Selection
		key   Key
		want  Selection
	}{
		{"esc clears hover", Hovered(1), CodeKey(KeyEsc), NoSelection()},
		{"esc on none", NoSelection(), CodeKey(KeyEsc), NoSelection()},
		{"j moves down", Hovered(0), RuneKey('j'), Hovered(1)},
		{"down arrow moves down", Hovered(0), CodeKey(KeyDown), Hovered(1)},
		{"k moves up", Hovered(1), RuneKey('k'), Hovered(0)},
		{"up arrow moves up", Hovered(1), CodeKey(KeyUp), Hovered(0)},
		{"enter activates hovered", Hovered(2), CodeKey(KeyEnter), Active(2)},
		{"enter without hover activates first", NoSelection(), CodeKey(KeyEnter), Active(0)},
		{"other rune ignored", Hovered(1), RuneKey('x'), Hovered(1)},
		{"backspace ignored", Hovered(1), CodeKey(KeyBackspace), Hovered(1)},
		{"unknown ignored", NoSelection(), CodeKey(KeyUnknown), NoSelection()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromNames("A", "B", "C")
			f.Select(tt.start)
			f.Input(tt.key)

			if f.Selected() != tt.want {
				t.Errorf("Input(%v) from %v = %v, want %v", tt.key, tt.start, f.Selected(), tt.want)
			}
			if got := f.Status().Values(); !cmp.Equal(got, []string{"", "", ""}) {
				t.Errorf("buffers changed outside edit mode: %q", got)
			}
		})
	}
}

func TestInputActive(t *testing.T) {
	f := FromNames("A", "B", "C")
	f.Select(Active(1))

	typeString(f, "jk x")
	if got := f.Field(1).Value(); got != "jk x" {
		t.Fatalf("field 1 = %q, want %q", got, "jk x")
	}
	if f.Selected() != Active(1) {
		t.Fatalf("typing should not move selection, got %v", f.Selected())
	}

	f.Input(CodeKey(KeyBackspace))
	if got := f.Field(1).Value(); got != "jk " {
		t.Errorf("after backspace = %q, want %q", got, "jk ")
	}

	f.Input(CodeKey(KeyUp))
	f.Input(CodeKey(KeyDown))
	f.Input(RuneKey('\x07'))
	if f.Selected() != Active(1) || f.Field(1).Value() != "jk " {
		t.Errorf("arrows and control runes should be ignored while active, got %v %q", f.Selected(), f.Field(1).Value())
	}

	f.Input(CodeKey(KeyEnter))
	if f.Selected() != Active(2) {
		t.Errorf("enter while active = %v, want Active(2)", f.Selected())
	}

	f.Input(CodeKey(KeyEsc))
	if f.Selected() != Hovered(2) {
		t.Errorf("esc while active = %v, want Hovered(2)", f.Selected())
	}
}

func TestBackspaceOnEmptyBuffer(t *testing.T) {
	f := FromNames("A")
	f.Select(Active(0))
	f.Input(CodeKey(KeyBackspace))
	f.PopSelection()

	if got := f.Field(0).Value(); got != "" {
		t.Errorf("value = %q, want empty", got)
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	f := FromFields(NewFieldBuffer("Name", "café"))
	f.Select(Active(0))
	f.Input(CodeKey(KeyBackspace))

	if got := f.Field(0).Value(); got != "caf" {
		t.Errorf("value = %q, want %q", got, "caf")
	}
}

func TestAppendAndPopSelection(t *testing.T) {
	f := FromNames("A", "B")

	f.AppendSelection('x')
	f.Select(Hovered(0))
	f.AppendSelection('x')
	if got := f.Status().Values(); !cmp.Equal(got, []string{"", ""}) {
		t.Fatalf("append outside edit mode changed buffers: %q", got)
	}

	f.Select(Active(1))
	f.AppendSelection('o')
	f.AppendSelection('k')
	f.PopSelection()
	if got := f.Field(1).Value(); got != "o" {
		t.Errorf("field 1 = %q, want %q", got, "o")
	}
}

func TestStatusBeforeSubmit(t *testing.T) {
	f := New([]string{"A", "B"}, func(string) bool { return false })

	for _, fs := range f.Status() {
		if !fs.Valid {
			t.Errorf("field %s invalid before submit", fs.Name)
		}
	}
}

func TestSubmitValidation(t *testing.T) {
	f := FromFields(
		NewFieldBuffer("Account", "alice"),
		NewFieldBuffer("Username", ""),
		NewFieldBuffer("Password", ""),
	)

	got := f.Submit()
	want := Statuses{
		{Name: "Account", Value: "alice", Valid: true},
		{Name: "Username", Value: "", Valid: false},
		{Name: "Password", Value: "", Valid: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Submit() mismatch (-want +got):\n%s", diff)
	}
	if got.AllValid() {
		t.Error("AllValid() = true, want false")
	}
	if diff := cmp.Diff([]int{1, 2}, got.Invalid()); diff != "" {
		t.Errorf("Invalid() mismatch (-want +got):\n%s", diff)
	}
	if !f.Submitted() {
		t.Error("Submitted() = false after Submit()")
	}
}

func TestStatusIsNotCached(t *testing.T) {
	f := FromNames("A", "B")
	f.Submit()

	f.Select(Active(1))
	typeString(f, "filled")

	status := f.Status()
	if status[0].Valid {
		t.Error("field A should still be invalid")
	}
	if !status[1].Valid {
		t.Error("field B should be valid right after editing")
	}

	for range "filled" {
		f.Input(CodeKey(KeyBackspace))
	}
	if f.Status()[1].Valid {
		t.Error("field B should be invalid again once emptied")
	}
}

func TestStatusIdempotent(t *testing.T) {
	f := FromFields(NewFieldBuffer("A", "x"), NewFieldBuffer("B", ""))
	f.Submit()

	first := f.Status()
	second := f.Status()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Status() not idempotent (-first +second):\n%s", diff)
	}
}

func TestSubmitKeepsSelectionAndBuffers(t *testing.T) {
	f := FromNames("A", "B")
	f.Select(Active(1))
	typeString(f, "ab")

	f.Submit()
	if f.Selected() != Active(1) {
		t.Errorf("Selected() = %v after submit, want Active(1)", f.Selected())
	}
	if f.Field(1).Value() != "ab" {
		t.Errorf("buffer changed by submit: %q", f.Field(1).Value())
	}
}

func TestSetSubmitted(t *testing.T) {
	f := FromNames("A")
	f.SetSubmitted(true)
	if f.Status().AllValid() {
		t.Error("empty field should be invalid once submitted")
	}
	f.SetSubmitted(false)
	if !f.Status().AllValid() {
		t.Error("fields should report valid once submitted flag is cleared")
	}
}

func TestCustomValidators(t *testing.T) {
	email := MatchPattern(regexp.MustCompile(`^[^@\s]+@[^@\s]+$`))
	tests := []struct {
		name      string
		validator Validator
		value     string
		want      bool
	}{
		{"nil falls back to non-empty", nil, "", false},
		{"min length short", MinLength(3), "ab", false},
		{"min length counts runes", MinLength(3), "äöü", true},
		{"pattern match", email, "a@b", true},
		{"pattern miss", email, "nope", false},
		{"all of both", All(NonEmpty, MinLength(2)), "ab", true},
		{"all fails one", All(NonEmpty, MinLength(2)), "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromFields(NewFieldBuffer("Field", tt.value))
			f.SetValidator(tt.validator)
			if got := f.Submit()[0].Valid; got != tt.want {
				t.Errorf("valid(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDeselect(t *testing.T) {
	f := FromNames("A", "B")
	f.Select(Active(1))
	f.Deselect()
	if f.Selected() != NoSelection() {
		t.Errorf("Selected() = %v, want NoSelection", f.Selected())
	}
}

func TestFieldStatusString(t *testing.T) {
	fs := FieldStatus{Name: "User", Value: "alice", Valid: true}
	if fs.String() != "alice" {
		t.Errorf("String() = %q, want alice", fs.String())
	}
}

// Scenario A: navigate to the last field, edit it, and leave edit mode.
func TestScenarioNavigateAndEdit(t *testing.T) {
	f := FromNames("Account", "Username", "Password")

	f.Input(CodeKey(KeyDown))
	if f.Selected() != Hovered(0) {
		t.Fatalf("first down = %v, want Hovered(0)", f.Selected())
	}

	f.Input(CodeKey(KeyDown))
	f.Input(CodeKey(KeyDown))
	if f.Selected() != Hovered(2) {
		t.Fatalf("after navigation = %v, want Hovered(2)", f.Selected())
	}

	f.Input(CodeKey(KeyEnter))
	if f.Selected() != Active(2) {
		t.Fatalf("after enter = %v, want Active(2)", f.Selected())
	}

	typeString(f, "xyz")
	if got := f.Field(2).Value(); got != "xyz" {
		t.Fatalf("field 2 = %q, want xyz", got)
	}

	f.Input(CodeKey(KeyEsc))
	if f.Selected() != Hovered(2) {
		t.Errorf("after esc = %v, want Hovered(2)", f.Selected())
	}
}

// Scenario C: commit with nothing hovered starts editing the first field.
func TestScenarioEnterFromNoSelection(t *testing.T) {
	f := FromNames("Account", "Username", "Password")
	f.Input(CodeKey(KeyEnter))
	if f.Selected() != Active(0) {
		t.Errorf("Selected() = %v, want Active(0)", f.Selected())
	}
}

// Scenario D: moving up from the first field wraps to the last.
func TestScenarioPrevWraps(t *testing.T) {
	f := FromNames("Account", "Username", "Password")
	f.Select(Hovered(0))
	f.Input(RuneKey('k'))
	if f.Selected() != Hovered(2) {
		t.Errorf("Selected() = %v, want Hovered(2)", f.Selected())
	}
}

func TestSelectWrapsIndex(t *testing.T) {
	tests := []struct {
		name string
		in   Selection
		want Selection
	}{
		{"in range", Hovered(1), Hovered(1)},
		{"past the end", Active(5), Active(2)},
		{"negative", Hovered(-3), Hovered(0)},
		{"negative one", Active(-1), Active(2)},
		{"none", NoSelection(), NoSelection()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromNames("A", "B", "C")
			f.Select(tt.in)
			if got := f.Selected(); got != tt.want {
				t.Errorf("Select(%v) then Selected() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSelectOutOfRangeThenEdit(t *testing.T) {
	f := FromNames("A", "B", "C")
	f.Select(Active(5))
	f.Input(RuneKey('x'))

	if got := f.Field(2).Value(); got != "x" {
		t.Errorf("Field(2).Value() = %q, want %q", got, "x")
	}

	f.Select(Hovered(-3))
	f.PrevField()
	if got := f.Selected(); got != Hovered(2) {
		t.Errorf("PrevField() from Hovered(0) = %v, want %v", got, Hovered(2))
	}
}

func TestSelectOnEmptyForm(t *testing.T) {
	f := FromNames()
	f.Select(Active(0))
	if got := f.Selected(); got != NoSelection() {
		t.Errorf("Selected() = %v, want NoSelection on empty form", got)
	}
}
