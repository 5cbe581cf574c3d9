package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/stormfors/wcag-audit/internal/catalog"
	"github.com/stormfors/wcag-audit/internal/model"
)

func testState() model.AuditState {
	s := model.NewAuditState()
	s.ClientName = "Acme Corp"
	s.ClientID = "acme-001"
	s.DateCreated = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	return *s
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("empty and whitespace observations are dropped", func(t *testing.T) {
		t.Parallel()

		s := testState()
		s.URLs = []string{"https://acme.example/"}
		s.Observations["https://acme.example/"] = map[string]string{
			"1.1.1": "logo has no alt text",
			"1.4.3": "   ",
			"2.4.2": "",
		}

		doc := Assemble(s, catalog.ForVariant(model.VariantInDepth))
		if len(doc.Sections) != 1 {
			t.Fatalf("sections = %d, want 1", len(doc.Sections))
		}
		if got := len(doc.Sections[0].Observations); got != 1 {
			t.Errorf("observations = %d, want 1", got)
		}
		if got := doc.Sections[0].Observations[0].Criterion; got != "1.1.1 Non-text Content" {
			t.Errorf("criterion = %q, want full display name", got)
		}
	})

	t.Run("pages without findings are omitted", func(t *testing.T) {
		t.Parallel()

		s := testState()
		s.URLs = []string{"https://acme.example/", "https://acme.example/about"}
		s.Observations["https://acme.example/about"] = map[string]string{
			"1.4.3": "footer links are 2.8:1",
		}

		doc := Assemble(s, catalog.ForVariant(model.VariantInDepth))
		if len(doc.Sections) != 1 {
			t.Fatalf("sections = %d, want 1", len(doc.Sections))
		}
		if doc.Sections[0].URL != "https://acme.example/about" {
			t.Errorf("section URL = %q", doc.Sections[0].URL)
		}
	})

	t.Run("pages keep insertion order", func(t *testing.T) {
		t.Parallel()

		s := testState()
		s.URLs = []string{"https://b.example/", "https://a.example/"}
		for _, url := range s.URLs {
			s.Observations[url] = map[string]string{"1.1.1": "finding"}
		}

		doc := Assemble(s, catalog.ForVariant(model.VariantInDepth))
		var got []string
		for _, section := range doc.Sections {
			got = append(got, section.URL)
		}
		if diff := cmp.Diff(s.URLs, got); diff != "" {
			t.Errorf("section order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("observations follow catalog order", func(t *testing.T) {
		t.Parallel()

		s := testState()
		s.URLs = []string{"https://acme.example/"}
		s.Observations["https://acme.example/"] = map[string]string{
			"2.4.2":  "title is just the domain",
			"1.1.1":  "logo has no alt text",
			"1.4.10": "content clipped at 400%",
			"1.4.3":  "body text is 3.2:1",
		}

		doc := Assemble(s, catalog.ForVariant(model.VariantInDepth))
		var got []string
		for _, obs := range doc.Sections[0].Observations {
			got = append(got, obs.Criterion)
		}
		want := []string{
			"1.1.1 Non-text Content",
			"1.4.3 Contrast (Minimum)",
			"1.4.10 Reflow",
			"2.4.2 Page Titled",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("observation order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown keys are kept with the raw key", func(t *testing.T) {
		t.Parallel()

		s := testState()
		s.URLs = []string{"https://acme.example/"}
		s.Observations["https://acme.example/"] = map[string]string{
			"5.0.1": "recorded under a key the catalog no longer knows",
			"1.1.1": "logo has no alt text",
		}

		doc := Assemble(s, catalog.ForVariant(model.VariantInDepth))
		obs := doc.Sections[0].Observations
		if len(obs) != 2 {
			t.Fatalf("observations = %d, want 2", len(obs))
		}
		// Unknown keys sort after all catalog criteria.
		last := obs[len(obs)-1]
		if last.Criterion != "5.0.1" {
			t.Errorf("criterion = %q, want raw key", last.Criterion)
		}
		if last.Level != "" || last.Description != "" {
			t.Error("unknown keys must not gain level or description")
		}
	})

	t.Run("basic check ids resolve to display names", func(t *testing.T) {
		t.Parallel()

		s := testState()
		s.URLs = []string{"https://acme.example/"}
		s.Observations["https://acme.example/"] = map[string]string{
			"imageAlt": "three product images have empty alt",
		}

		doc := Assemble(s, catalog.ForVariant(model.VariantBasic))
		if got := doc.Sections[0].Observations[0].Criterion; got != "Image Alternative Text" {
			t.Errorf("criterion = %q, want %q", got, "Image Alternative Text")
		}
	})

	t.Run("client fields carry over", func(t *testing.T) {
		t.Parallel()

		s := testState()
		s.ExecutiveSummary = "Mostly solid, contrast needs work."
		doc := Assemble(s, catalog.ForVariant(model.VariantInDepth))

		if doc.ClientName != "Acme Corp" || doc.ClientID != "acme-001" {
			t.Errorf("client fields = %q/%q", doc.ClientName, doc.ClientID)
		}
		if !doc.DateCreated.Equal(s.DateCreated) {
			t.Errorf("DateCreated = %v, want %v", doc.DateCreated, s.DateCreated)
		}
		if doc.ExecutiveSummary != s.ExecutiveSummary {
			t.Errorf("ExecutiveSummary = %q", doc.ExecutiveSummary)
		}
		if doc.HasFindings() {
			t.Error("expected no findings")
		}
	})
}
