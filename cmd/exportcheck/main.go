// Command exportcheck exercises the visibility pipeline end to end
// without a database: defaults, a few toggles, filtering and the HTML
// template render. Useful when editing templates.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/internal/visibility"
)

func sampleResume() *model.Resume {
	return &model.Resume{
		Basics: model.Basics{
			Name:    "Test User",
			Label:   "Engineer",
			Email:   "t@example.com",
			Phone:   "+1 555 0100",
			Summary: "Backend engineer focused on data plumbing and reliability.",
			Location: model.Location{
				City:        "Lisbon",
				CountryCode: "PT",
			},
			Profiles: []model.Profile{
				{Network: "GitHub", Username: "testuser", URL: "https://github.com/testuser"},
				{Network: "LinkedIn", Username: "testuser", URL: "https://linkedin.com/in/testuser"},
			},
		},
		Work: []model.WorkItem{
			{Name: "Acme", Position: "Engineer", StartDate: "2021-02", Highlights: []string{"Shipped the export pipeline"}},
			{Name: "Nimbus Labs", Position: "Engineer", StartDate: "2018-05", EndDate: "2021-01"},
		},
		Education: []model.EducationItem{
			{Institution: "IST", Area: "CS", StudyType: "BSc", StartDate: "2014", EndDate: "2018"},
		},
		Skills: []model.SkillItem{
			{Name: "Go", Level: "advanced"},
			{Name: "Postgres"},
		},
	}
}

func main() {
	resume := sampleResume()

	vis := visibility.BuildDefault(visibility.DefaultResumeID, resume)
	vis.ToggleItem(visibility.SectionWork, 1)
	vis.TogglePersonalField(visibility.FieldPhone)
	vis.TogglePersonalField("profiles:LinkedIn")

	filtered := visibility.Filter(resume, vis)

	b, _ := json.MarshalIndent(filtered, "", "  ")
	fmt.Printf("filtered resume:\n%s\n", b)

	exporter := usecase.NewExporter(nil, nil, nil, "templates", filepath.Join("data", "generated"), nil)
	html, err := exporter.RenderHTML("modern", filtered, usecase.NewTemplateParamsFromMap(map[string]interface{}{"fontSize": 11}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	outDir := filepath.Join("data", "generated")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(2)
	}
	outFile := filepath.Join(outDir, "exportcheck.html")
	if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
