package mdexample

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	md := "intro\n\n```yaml\na: 1\n```\n\ntext\n```yaml 40\nb: 2\n```\n```yaml 30 4\nc: 3\n```\n```go\nx := 1\n```\n"
	got, err := Extract(md)
	if err != nil {
		t.Fatal(err)
	}
	want := []Example{
		{Line: 3, Width: 120, Indent: 2, Source: "a: 1\n"},
		{Line: 8, Width: 40, Indent: 2, Source: "b: 2\n"},
		{Line: 11, Width: 30, Indent: 4, Source: "c: 3\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractZeroDefaults(t *testing.T) {
	got, err := Extract("```yaml 0\na: 1\n```\n```yaml 40 0\nb: 2\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Example{
		{Line: 1, Width: 120, Indent: 2, Source: "a: 1\n"},
		{Line: 4, Width: 40, Indent: 2, Source: "b: 2\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	for i := range got {
		if err := got[i].Check(); err != nil {
			t.Error(err)
		}
	}
}

func TestExtractAtStart(t *testing.T) {
	got, err := Extract("```yaml\nx: y\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Line != 1 {
		t.Errorf("unexpected examples %+v", got)
	}
}

func TestExamplesFile(t *testing.T) {
	d, err := os.ReadFile("testdata/examples.md")
	if err != nil {
		t.Fatal(err)
	}
	exs, err := Extract(string(d))
	if err != nil {
		t.Fatal(err)
	}
	if len(exs) != 6 {
		t.Fatalf("expected 6 examples, got %d", len(exs))
	}
	for i := range exs {
		ex := &exs[i]
		t.Run(ex.String(), func(t *testing.T) {
			if err := ex.Check(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestCheckMismatch(t *testing.T) {
	ex := &Example{Line: 1, Width: 120, Indent: 2, Source: "m:\n  a: 1\n"}
	err := ex.Check()
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
}
