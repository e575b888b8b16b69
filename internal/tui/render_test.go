package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/runoshun/tasks/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRender_EmptyShowsPlaceholderOnly(t *testing.T) {
	out := Render(RenderInput{Styles: DefaultStyles()})

	assert.Contains(t, out, Placeholder)
	assert.NotContains(t, out, "[ ]")
	assert.NotContains(t, out, "×")
}

func TestRender_ListHidesPlaceholder(t *testing.T) {
	out := Render(RenderInput{
		Tasks: []domain.Task{
			{ID: 2, Text: "second"},
			{ID: 1, Text: "first", Completed: true},
		},
		Styles: DefaultStyles(),
	})

	assert.NotContains(t, out, Placeholder)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[ ]")
	assert.Contains(t, lines[0], "second")
	assert.Contains(t, lines[0], "×")
	assert.Contains(t, lines[1], "[x]")
	assert.Contains(t, lines[1], "first")
}

func TestRender_PreservesOrder(t *testing.T) {
	tasks := []domain.Task{{ID: 3, Text: "charlie"}, {ID: 1, Text: "alpha"}, {ID: 2, Text: "bravo"}}
	out := Render(RenderInput{Tasks: tasks, Styles: DefaultStyles()})

	ia := strings.Index(out, "alpha")
	ib := strings.Index(out, "bravo")
	ic := strings.Index(out, "charlie")
	assert.True(t, ic < ia && ia < ib, "rows follow list order")
}

func TestRender_CursorOnlyWhenSelected(t *testing.T) {
	tasks := []domain.Task{{ID: 2, Text: "x"}, {ID: 1, Text: "y"}}

	out := Render(RenderInput{Tasks: tasks, Styles: DefaultStyles(), Cursor: 1, Selected: true})
	lines := strings.Split(out, "\n")
	assert.NotContains(t, lines[0], ">")
	assert.Contains(t, lines[1], ">")

	out = Render(RenderInput{Tasks: tasks, Styles: DefaultStyles(), Cursor: 1})
	assert.NotContains(t, out, ">")
}

func TestRender_TextIsVerbatim(t *testing.T) {
	out := Render(RenderInput{
		Tasks:  []domain.Task{{ID: 1, Text: "<b>not bold</b> & stuff"}},
		Styles: DefaultStyles(),
	})
	assert.Contains(t, out, "<b>not bold</b> & stuff")
}

func TestRender_PendingRemovalStillListed(t *testing.T) {
	out := Render(RenderInput{
		Tasks:  []domain.Task{{ID: 1, Text: "going away"}},
		Styles: DefaultStyles(),
		Phase:  func(int64) domain.Phase { return domain.PhasePendingRemoval },
	})
	assert.Contains(t, out, "going away")
}

func TestRender_Truncates(t *testing.T) {
	out := Render(RenderInput{
		Tasks:  []domain.Task{{ID: 1, Text: strings.Repeat("long ", 20)}},
		Styles: DefaultStyles(),
		Width:  20,
	})
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("long ", 20))
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"short", "buy milk", 20, "buy milk"},
		{"no limit", "buy milk", 0, "buy milk"},
		{"newlines", "a\nb\r\nc", 0, "a b  c"},
		{"tab", "a\tb", 0, "a b"},
		{"escape sequences", "evil\x1b[2J\x1b]0;pwned\x07tail", 0, "evil\uFFFD[2J\uFFFD]0;pwned\uFFFDtail"},
		{"c1 csi", "a\u009b31mb", 0, "a\uFFFD31mb"},
		{"truncated", "abcdefghij", 5, "abcd…"},
		{"exact fit", "abcde", 5, "abcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SingleLine(tt.text, tt.width))
		})
	}
}

func TestRender_ControlCharactersDoNotReachTerminal(t *testing.T) {
	task := domain.Task{ID: 1, Text: "evil\x1b[2J\x1b]0;pwned\x07\ttail"}
	out := Render(RenderInput{Tasks: []domain.Task{task}, Styles: DefaultStyles(), Width: 80})

	assert.NotContains(t, out, "\x1b[2J")
	assert.NotContains(t, out, "\x1b]0;")
	assert.NotContains(t, out, "\x07")
	assert.NotContains(t, out, "\t")
	assert.Contains(t, out, "pwned\uFFFD tail")
	assert.Equal(t, "evil\x1b[2J\x1b]0;pwned\x07\ttail", task.Text, "stored text is untouched")
}

func TestSingleLine_WideRunes(t *testing.T) {
	got := SingleLine("日本語のタスクです", 8)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 8)
	assert.True(t, strings.HasSuffix(got, "…"))
}
