package catalog

import (
	"testing"

	"github.com/stormfors/wcag-audit/internal/model"
)

func TestForVariant(t *testing.T) {
	t.Parallel()

	t.Run("in-depth catalog holds the full criteria list", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantInDepth)
		if c.Len() != 55 {
			t.Errorf("in-depth catalog size = %d, want 55", c.Len())
		}
	})

	t.Run("basic catalog holds the easy checks", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantBasic)
		if c.Len() != 16 {
			t.Errorf("basic catalog size = %d, want 16", c.Len())
		}
	})
}

func TestCatalogLookup(t *testing.T) {
	t.Parallel()

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantInDepth)
		got, ok := c.Lookup("1.3.4")
		if !ok {
			t.Fatal("expected to find criterion 1.3.4")
		}
		if got.DisplayName != "1.3.4 Orientation" {
			t.Errorf("DisplayName = %q, want %q", got.DisplayName, "1.3.4 Orientation")
		}
		if got.Category != CategoryPerceivable || got.Level != "AA" {
			t.Errorf("unexpected category/level: %q/%q", got.Category, got.Level)
		}
	})

	t.Run("by display name", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantInDepth)
		got, ok := c.Lookup("2.4.7 Focus Visible")
		if !ok {
			t.Fatal("expected display-name lookup to succeed")
		}
		if got.ID != "2.4.7" {
			t.Errorf("ID = %q, want %q", got.ID, "2.4.7")
		}
	})

	t.Run("basic id resolves to display name", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantBasic)
		got, ok := c.Lookup("imageAlt")
		if !ok {
			t.Fatal("expected to find basic check imageAlt")
		}
		if got.DisplayName != "Image Alternative Text" {
			t.Errorf("DisplayName = %q, want %q", got.DisplayName, "Image Alternative Text")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantBasic)
		if _, ok := c.Lookup("9.9.9"); ok {
			t.Error("expected lookup of unknown key to fail")
		}
	})
}

func TestCatalogOrdering(t *testing.T) {
	t.Parallel()

	t.Run("in-depth criteria sort by dotted number", func(t *testing.T) {
		t.Parallel()

		items := ForVariant(model.VariantInDepth).Items()
		for i := 1; i < len(items); i++ {
			prev, prevOK := ParseCriterionNumber(items[i-1].DisplayName)
			cur, curOK := ParseCriterionNumber(items[i].DisplayName)
			if !prevOK || !curOK {
				t.Fatalf("unnumbered in-depth criterion near index %d", i)
			}
			if cur.Less(prev) {
				t.Errorf("criteria out of order: %s before %s", prev, cur)
			}
		}
	})

	t.Run("first and last criteria", func(t *testing.T) {
		t.Parallel()

		items := ForVariant(model.VariantInDepth).Items()
		if items[0].ID != "1.1.1" {
			t.Errorf("first criterion = %s, want 1.1.1", items[0].ID)
		}
		if items[len(items)-1].ID != "4.1.3" {
			t.Errorf("last criterion = %s, want 4.1.3", items[len(items)-1].ID)
		}
	})

	t.Run("two-digit components compare numerically", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantInDepth)
		if !(c.Position("1.4.3") < c.Position("1.4.10")) {
			t.Error("1.4.3 must sort before 1.4.10")
		}
		if !(c.Position("1.4.10") < c.Position("1.4.11")) {
			t.Error("1.4.10 must sort before 1.4.11")
		}
	})

	t.Run("unknown keys sort after all known criteria", func(t *testing.T) {
		t.Parallel()

		c := ForVariant(model.VariantInDepth)
		if got := c.Position("nonexistent"); got != c.Len() {
			t.Errorf("Position(unknown) = %d, want %d", got, c.Len())
		}
	})
}

func TestCatalogGroups(t *testing.T) {
	t.Parallel()

	c := ForVariant(model.VariantBasic)

	want := []string{GroupCommon, GroupAudioVisual, GroupForms}
	got := c.Groups()
	if len(got) != len(want) {
		t.Fatalf("Groups() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Groups()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if items := c.ItemsInGroup(GroupForms); len(items) != 2 {
		t.Errorf("form checks = %d items, want 2", len(items))
	}

	if groups := ForVariant(model.VariantInDepth).Groups(); groups != nil {
		t.Errorf("in-depth catalog should have no groups, got %v", groups)
	}
}

func TestParseCriterionNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  CriterionNumber
		ok    bool
	}{
		{input: "1.3.4 Orientation", want: CriterionNumber{1, 3, 4}, ok: true},
		{input: "1.4.10 Reflow", want: CriterionNumber{1, 4, 10}, ok: true},
		{input: "2.4.11", want: CriterionNumber{2, 4, 11}, ok: true},
		{input: "Image Alternative Text", ok: false},
		{input: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseCriterionNumber(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseCriterionNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseCriterionNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	t.Parallel()

	for _, v := range []model.Variant{model.VariantBasic, model.VariantInDepth} {
		c := ForVariant(v)
		seen := make(map[string]bool, c.Len())
		for _, item := range c.Items() {
			if item.ID == "" {
				t.Errorf("%s: empty criterion id (%q)", v, item.DisplayName)
			}
			if seen[item.ID] {
				t.Errorf("%s: duplicate criterion id %q", v, item.ID)
			}
			seen[item.ID] = true
		}
	}
}
