/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Verification reports. Writes a run as indented JSON for tooling and as an HTML
page for reading, both named after the run start time and run ID.
*/

package reporting

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/akaylee-species/pkg/verify"
	"github.com/sirupsen/logrus"
)

// ReportWriter writes verification reports into a directory
type ReportWriter struct {
	outputDir string
	logger    logrus.FieldLogger
	templates *template.Template
}

// pageData is what the HTML template renders
type pageData struct {
	Title       string
	GeneratedAt time.Time
	Report      *verify.Report
	Grammars    []grammarSummary
}

// grammarSummary aggregates the checks of one grammar
type grammarSummary struct {
	Name     string
	Rule     string
	Checks   int
	Failures int
	Counts   []string
}

// NewReportWriter creates a report writer for outputDir
func NewReportWriter(outputDir string, logger logrus.FieldLogger) *ReportWriter {
	return &ReportWriter{
		outputDir: outputDir,
		logger:    logger,
		templates: template.Must(template.New("report").Funcs(template.FuncMap{
			"join": strings.Join,
		}).Parse(reportTemplate)),
	}
}

// baseName returns the file name shared by both report formats:
// 2024-06-11_01-30-00_verify_<run-id>
func baseName(report *verify.Report) string {
	return fmt.Sprintf("%s_verify_%s", report.StartedAt.Format("2006-01-02_15-04-05"), report.RunID)
}

// Write writes the JSON and HTML reports and returns their paths
func (rw *ReportWriter) Write(report *verify.Report) (jsonPath, htmlPath string, err error) {
	if err := os.MkdirAll(rw.outputDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create report directory: %w", err)
	}

	base := filepath.Join(rw.outputDir, baseName(report))
	jsonPath, htmlPath = base+".json", base+".html"

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write report file: %w", err)
	}

	file, err := os.Create(htmlPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()
	if err := rw.RenderHTML(file, report); err != nil {
		return "", "", err
	}

	rw.logger.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"json":   jsonPath,
		"html":   htmlPath,
	}).Info("Verification report written")
	return jsonPath, htmlPath, nil
}

// RenderHTML renders the HTML report to w
func (rw *ReportWriter) RenderHTML(w io.Writer, report *verify.Report) error {
	data := pageData{
		Title:       "Species Verification",
		GeneratedAt: time.Now(),
		Report:      report,
		Grammars:    summarize(report),
	}
	if err := rw.templates.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// summarize groups results by grammar in the order they first appear
func summarize(report *verify.Report) []grammarSummary {
	var out []grammarSummary
	index := make(map[string]int)
	for _, r := range report.Results {
		i, ok := index[r.Grammar]
		if !ok {
			i = len(out)
			index[r.Grammar] = i
			out = append(out, grammarSummary{Name: r.Grammar, Rule: r.Rule})
		}
		s := &out[i]
		s.Checks++
		if !r.Passed {
			s.Failures++
		}
		s.Counts = append(s.Counts, r.Count)
	}
	return out
}
