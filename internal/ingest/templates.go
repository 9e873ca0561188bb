package ingest

import (
	"fmt"

	"chartbuilder/internal/models"
)

// builtinTemplates are the preset datasets offered on the builder page.
// Templates are immutable: loading one copies its example data into the
// session, it never references these slices afterwards.
var builtinTemplates = []models.Template{
	{
		Slug:              "monthly-sales",
		Name:              "Monthly Sales",
		Description:       "Sales totals per month. Good starting point for a **line** or **bar** chart.",
		FormatDescription: "One row per month: `label,value` where value is the sales total.",
		Example: models.Dataset{
			{Label: "Jan", Value: 1200},
			{Label: "Feb", Value: 1900},
			{Label: "Mar", Value: 1600},
			{Label: "Apr", Value: 2100},
		},
	},
	{
		Slug:              "website-traffic",
		Name:              "Website Traffic",
		Description:       "Daily visitor counts over a week. Works well as an **area** chart.",
		FormatDescription: "One row per day: `label,value` where value is the visitor count.",
		Example: models.Dataset{
			{Label: "Mon", Value: 3400},
			{Label: "Tue", Value: 2800},
			{Label: "Wed", Value: 3100},
			{Label: "Thu", Value: 3600},
			{Label: "Fri", Value: 4200},
			{Label: "Sat", Value: 5100},
			{Label: "Sun", Value: 4700},
		},
	},
	{
		Slug:              "quarterly-expenses",
		Name:              "Quarterly Expenses",
		Description:       "Spending per quarter. Compare quarters with a **bar** chart.",
		FormatDescription: "One row per quarter: `label,value` where value is the spend.",
		Example: models.Dataset{
			{Label: "Q1", Value: 8200},
			{Label: "Q2", Value: 7600},
			{Label: "Q3", Value: 9100},
			{Label: "Q4", Value: 8800},
		},
	},
	{
		Slug:              "market-share",
		Name:              "Market Share",
		Description:       "Share per product segment. Best shown as a **pie** chart.",
		FormatDescription: "One row per segment: `label,value` where value is the share in percent.",
		Example: models.Dataset{
			{Label: "Product A", Value: 44},
			{Label: "Product B", Value: 31},
			{Label: "Product C", Value: 25},
		},
	},
}

// Templates returns all built-in templates in display order
func Templates() []models.Template {
	return builtinTemplates
}

// TemplateBySlug looks up a built-in template
func TemplateBySlug(slug string) (models.Template, error) {
	for _, t := range builtinTemplates {
		if t.Slug == slug {
			return t, nil
		}
	}
	return models.Template{}, fmt.Errorf("unknown template: %q", slug)
}
