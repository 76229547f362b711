package output

import (
	"encoding/json"
	"strings"
	"testing"

	"leakview/internal/render"
	"leakview/internal/trace"
)

func testReport() *trace.Report {
	return &trace.Report{
		Description: "MainActivity has leaked",
		Trace: trace.LeakTrace{Elements: []trace.Element{
			{
				ClassName:       "android.app.ActivityThread",
				ClassSimpleName: "ActivityThread",
				Status:          trace.StatusNotLeaking,
				StatusReason:    "a system class",
				Reference:       &trace.Reference{DisplayName: "mActivities", Type: trace.RefInstanceField},
			},
			{
				ClassName:       "com.example.MainActivity",
				ClassSimpleName: "MainActivity",
				Status:          trace.StatusLeaking,
				StatusReason:    "ObjectWatcher was watching this",
			},
		}},
	}
}

func testContext(report *trace.Report) render.Context {
	return render.Context{
		GroupDescription: report.Description,
		IsLeakGroup:      report.IsLeakGroup(),
		FormatTime:       func(int64) string { return "3 days ago" },
	}
}

func TestExportJSON(t *testing.T) {
	report := testReport()
	exporter := NewExporter()

	data, err := exporter.ExportJSON(report, testContext(report))
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded struct {
		Report trace.Report `json:"report"`
		Rows   []struct {
			Position  int    `json:"position"`
			Kind      string `json:"kind"`
			Connector string `json:"connector"`
			Text      string `json:"text"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	// 2 header rows + 2 elements.
	if len(decoded.Rows) != 4 {
		t.Fatalf("export has %d rows, want 4", len(decoded.Rows))
	}
	if decoded.Rows[0].Kind != "header" {
		t.Errorf("row 0 kind = %q, want %q", decoded.Rows[0].Kind, "header")
	}
	if decoded.Rows[1].Connector != "HELP" {
		t.Errorf("row 1 connector = %q, want %q", decoded.Rows[1].Connector, "HELP")
	}
	if decoded.Rows[2].Connector != "START_LAST_REACHABLE" {
		t.Errorf("row 2 connector = %q, want %q", decoded.Rows[2].Connector, "START_LAST_REACHABLE")
	}
	if decoded.Rows[3].Connector != "END_FIRST_UNREACHABLE" {
		t.Errorf("row 3 connector = %q, want %q", decoded.Rows[3].Connector, "END_FIRST_UNREACHABLE")
	}
	if decoded.Report.Description != report.Description {
		t.Errorf("exported description = %q, want %q", decoded.Report.Description, report.Description)
	}
}

func TestExportText(t *testing.T) {
	report := testReport()
	exporter := NewExporter()

	got, err := exporter.ExportText(report, testContext(report))
	if err != nil {
		t.Fatalf("ExportText failed: %v", err)
	}

	for _, want := range []string{
		"MainActivity has leaked",
		"ActivityThread",
		"Leaking: NO (a system class)",
		"Leaking: YES (ObjectWatcher was watching this)",
		"mActivities",
		"╰→",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text export does not contain %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "\u00a0") {
		t.Error("text export still contains non-breaking spaces")
	}
}

func TestExportTextLeakGroup(t *testing.T) {
	report := testReport()
	report.Instances = []trace.InstanceSummary{
		{ClassSimpleName: "MainActivity", CreatedAt: 1700000000000},
		{ClassSimpleName: "MainActivity", CreatedAt: 1700000100000},
	}
	exporter := NewExporter()

	got, err := exporter.ExportText(report, testContext(report))
	if err != nil {
		t.Fatalf("ExportText failed: %v", err)
	}

	if !strings.Contains(got, "Known likely causes of leak group") {
		t.Errorf("leak-group export lacks the group help text:\n%s", got)
	}
	if n := strings.Count(got, "MainActivity has leaked 3 days ago"); n != 2 {
		t.Errorf("leak-group export has %d summary lines, want 2:\n%s", n, got)
	}
	// The final element renders with interior rules, never an End arrow.
	if strings.Contains(got, "╰→") {
		t.Errorf("leak-group export contains an End connector:\n%s", got)
	}
}

func TestExportMarkdown(t *testing.T) {
	report := testReport()
	report.Instances = []trace.InstanceSummary{
		{ClassSimpleName: "MainActivity", CreatedAt: 1700000000000},
	}
	exporter := NewExporter()

	got, err := exporter.ExportMarkdown(report, testContext(report))
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	for _, want := range []string{
		"# Leak Report",
		"## Leak Trace",
		"```",
		"## Recorded Instances",
		"| MainActivity | 3 days ago |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown export does not contain %q:\n%s", want, got)
		}
	}
}
