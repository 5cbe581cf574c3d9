package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/net/html"

	"github.com/stormfors/wcag-audit/internal/model"
)

func testDocument() *model.ReportDocument {
	return &model.ReportDocument{
		ClientName:       "Acme Corp",
		ClientID:         "acme-001",
		DateCreated:      time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		ExecutiveSummary: "Mostly solid. Contrast needs work.",
		Sections: []model.ReportSection{
			{
				URL: "https://acme.example/",
				Observations: []model.ObservationRecord{
					{
						Criterion:   "1.4.3 Contrast (Minimum)",
						Observation: "Body text is 3.2:1 against the background.",
						Category:    "Perceivable",
						Level:       "AA",
						Description: "Text should have enough contrast with its background to be easily readable. Normal text needs a higher contrast ratio than large text.",
					},
				},
			},
		},
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).Write(testDocument())
		if err != nil {
			t.Fatalf("Write: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		var got model.ReportDocument
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if diff := cmp.Diff(testDocument(), &got, cmpopts.EquateApproxTime(0)); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("key order is stable", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(testDocument()); err != nil {
			t.Fatalf("Write: %v", err)
		}

		out := buf.String()
		keys := []string{`"clientName"`, `"clientId"`, `"dateCreated"`, `"executiveSummary"`, `"observations"`}
		last := -1
		for _, key := range keys {
			i := strings.Index(out, key)
			if i < 0 {
				t.Fatalf("key %s missing from output", key)
			}
			if i < last {
				t.Errorf("key %s out of order", key)
			}
			last = i
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(testDocument()); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})
}

func TestHTMLWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders a parseable document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewHTMLWriter(&buf).Write(testDocument()); err != nil {
			t.Fatalf("Write: %v", err)
		}

		root, err := html.Parse(&buf)
		if err != nil {
			t.Fatalf("output is not parseable HTML: %v", err)
		}

		text := collectText(root)
		for _, want := range []string{
			"About the Evaluation",
			"Scope of the Evaluation",
			"Executive Summary",
			"Review Process",
			"Observations",
			"Next Steps & Recommended Actions",
			"References",
			"Acme Corp",
			"1.4.3 Contrast (Minimum)",
			"Body text is 3.2:1 against the background.",
			"Evaluation By: Stormfors",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("rendered document missing %q", want)
			}
		}
	})

	t.Run("empty summary section is omitted", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.ExecutiveSummary = ""

		var buf bytes.Buffer
		if _, err := NewHTMLWriter(&buf).Write(doc); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if strings.Contains(buf.String(), "Executive Summary") {
			t.Error("expected empty executive summary section to be omitted")
		}
	})

	t.Run("markup in user text is escaped, never removed", func(t *testing.T) {
		t.Parallel()

		// Findings quote element names all the time; the text must come
		// through intact, with the tag escaped rather than stripped.
		finding := "Form inputs lack <label> elements; add for attributes."
		doc := testDocument()
		doc.Sections[0].Observations[0].Observation = finding

		var buf bytes.Buffer
		if _, err := NewHTMLWriter(&buf).Write(doc); err != nil {
			t.Fatalf("Write: %v", err)
		}
		out := buf.String()
		if strings.Contains(out, "<label>") {
			t.Error("raw tag leaked into the document unescaped")
		}
		if !strings.Contains(out, "&lt;label&gt;") {
			t.Error("expected tag to be escaped, not removed")
		}

		root, err := html.Parse(strings.NewReader(out))
		if err != nil {
			t.Fatalf("output is not parseable HTML: %v", err)
		}
		if !strings.Contains(collectText(root), finding) {
			t.Errorf("observation text did not survive rendering verbatim: %q", finding)
		}
	})

	t.Run("script tags cannot change document structure", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.Sections[0].Observations[0].Observation = `<script>alert("x")</script>plain finding`

		var buf bytes.Buffer
		if _, err := NewHTMLWriter(&buf).Write(doc); err != nil {
			t.Fatalf("Write: %v", err)
		}
		out := buf.String()
		if strings.Contains(out, "<script>alert") {
			t.Error("script tag survived escaping")
		}
		if !strings.Contains(out, "plain finding") {
			t.Error("text content was lost during escaping")
		}
	})

	t.Run("custom meta appears in scope", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewHTMLWriter(&buf, WithMeta(Meta{Evaluator: "Example Audits", WCAGVersion: "2.2", ConformanceTarget: "AAA"}))
		if _, err := w.Write(testDocument()); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if !strings.Contains(buf.String(), "Example Audits") {
			t.Error("expected custom evaluator in output")
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testDocument()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# WCAG Accessibility Audit Report",
		"## Scope of the Evaluation",
		"## Executive Summary",
		"### https://acme.example/",
		"1.4.3 Contrast (Minimum)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	mw := NewMultiWriter(NewJSONWriter(&a), NewJSONWriter(&b))
	if _, err := mw.Write(testDocument()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if a.String() != b.String() {
		t.Error("expected identical output from both writers")
	}
	if a.Len() == 0 {
		t.Error("expected output to be written")
	}
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		client string
		ext    string
		want   string
	}{
		{name: "simple", client: "Acme Corp", ext: "json", want: "wcag-audit-acme-corp-2025-06-15.json"},
		{name: "blank falls back", client: "   ", ext: "html", want: "wcag-audit-unnamed-2025-06-15.html"},
		{name: "accents fold to ascii", client: "Café Örnsköldsvik", ext: "pdf", want: "wcag-audit-cafe-ornskoldsvik-2025-06-15.pdf"},
		{name: "punctuation collapses", client: "https://acme.example/", ext: "json", want: "wcag-audit-https-acme-example-2025-06-15.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExportFilename(tt.client, created, tt.ext); got != tt.want {
				t.Errorf("ExportFilename = %q, want %q", got, tt.want)
			}
		})
	}
}

// collectText walks an HTML tree and concatenates its text nodes.
func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
