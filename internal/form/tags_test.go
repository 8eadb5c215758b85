package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommitBlankIsNoop(t *testing.T) {
	for _, in := range []string{"", "  ", "\t\n", "   "} {
		tags := Tags{}.SetPending(in)
		got, ok := tags.Commit()
		if ok {
			t.Errorf("commit(%q) reported added", in)
		}
		if got.Len() != 0 {
			t.Errorf("commit(%q) len = %d, want 0", in, got.Len())
		}
		if got.Pending() != in {
			t.Errorf("commit(%q) pending = %q, want unchanged", in, got.Pending())
		}
	}
}

func TestCommitKeepsUntrimmedText(t *testing.T) {
	tags := Tags{}.SetPending(" go ")
	got, ok := tags.Commit()
	if !ok {
		t.Fatal("commit should add")
	}
	if diff := cmp.Diff([]string{" go "}, got.Items()); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	if got.Pending() != "" {
		t.Errorf("pending = %q, want empty", got.Pending())
	}
}

func TestCommitAllowsDuplicatesInOrder(t *testing.T) {
	var tags Tags
	for _, s := range []string{"go", "rust", "go", "日本語"} {
		tags, _ = tags.SetPending(s).Commit()
	}

	want := []string{"go", "rust", "go", "日本語"}
	if diff := cmp.Diff(want, tags.Items()); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestCommitDoesNotAliasReceiver(t *testing.T) {
	base, _ := Tags{}.SetPending("a").Commit()

	x, _ := base.SetPending("x").Commit()
	y, _ := base.SetPending("y").Commit()

	if diff := cmp.Diff([]string{"a", "x"}, x.Items()); diff != "" {
		t.Errorf("x (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "y"}, y.Items()); diff != "" {
		t.Errorf("y (-want +got):\n%s", diff)
	}
	if base.Len() != 1 {
		t.Errorf("base len = %d, want 1", base.Len())
	}
}
