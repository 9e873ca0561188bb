package ingest

import "testing"

func TestTemplatesAreWellFormed(t *testing.T) {
	templates := Templates()
	if len(templates) == 0 {
		t.Fatal("no built-in templates")
	}

	seen := map[string]bool{}
	for _, tpl := range templates {
		if tpl.Slug == "" || tpl.Name == "" {
			t.Errorf("template %+v missing slug or name", tpl)
		}
		if seen[tpl.Slug] {
			t.Errorf("duplicate template slug %q", tpl.Slug)
		}
		seen[tpl.Slug] = true

		if len(tpl.Example) == 0 {
			t.Errorf("template %q has no example data", tpl.Slug)
		}
		for i, p := range tpl.Example {
			if p.Label == "" || !p.Valid() {
				t.Errorf("template %q example[%d] unusable: %+v", tpl.Slug, i, p)
			}
		}
	}
}

func TestTemplateBySlug(t *testing.T) {
	tpl, err := TemplateBySlug("monthly-sales")
	if err != nil {
		t.Fatalf("TemplateBySlug(monthly-sales) error: %v", err)
	}
	if tpl.Name != "Monthly Sales" {
		t.Errorf("Name = %q, want %q", tpl.Name, "Monthly Sales")
	}
	if len(tpl.Example) != 4 || tpl.Example[0].Label != "Jan" || tpl.Example[0].Value != 1200 {
		t.Errorf("unexpected example data: %+v", tpl.Example)
	}

	if _, err := TemplateBySlug("no-such-template"); err == nil {
		t.Error("TemplateBySlug(no-such-template) expected error, got nil")
	}
}
