/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for verification reports: file naming, JSON content and the rendered
HTML table.
*/

package reporting

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/akaylee-species/pkg/verify"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *verify.Report {
	return &verify.Report{
		RunID:     "0b5c7e52-8f1d-4d7e-9c55-1f1f0c6a2e11",
		StartedAt: time.Date(2024, 6, 11, 1, 30, 0, 0, time.UTC),
		Duration:  25 * time.Millisecond,
		Config:    verify.Config{MaxSize: 3, Workers: 2, MaxListSize: 2},
		Results: []verify.CheckResult{
			{Grammar: "cycles", Rule: "Cycle", Size: 0, Count: "1", Expected: "1", Listed: 1, Listing: true, Digest: "aa", Passed: true},
			{Grammar: "cycles", Rule: "Cycle", Size: 3, Count: "2", Expected: "3", Passed: false,
				Failures: []string{"count 2, expected 3", "no <structure>"}},
			{Grammar: "binary-search-trees", Rule: "Tree", Size: 2, Count: "2", Expected: "2", Listed: 2, Listing: true, Digest: "bb", Passed: true},
		},
		Checks:   3,
		Failures: 1,
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "2024-06-11_01-30-00_verify_0b5c7e52-8f1d-4d7e-9c55-1f1f0c6a2e11", baseName(sampleReport()))
}

func TestWriteReports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	logger, hook := test.NewNullLogger()
	rw := NewReportWriter(dir, logger)

	jsonPath, htmlPath, err := rw.Write(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, baseName(sampleReport())+".json"), jsonPath)
	assert.True(t, strings.HasSuffix(htmlPath, ".html"))
	assert.FileExists(t, htmlPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "0b5c7e52-8f1d-4d7e-9c55-1f1f0c6a2e11", decoded["run_id"])
	assert.EqualValues(t, 1, decoded["failures"])
	assert.Len(t, decoded["results"], 3)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Verification report written", hook.LastEntry().Message)
	assert.Equal(t, htmlPath, hook.LastEntry().Data["html"])
}

func TestRenderHTML(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var buf bytes.Buffer
	require.NoError(t, NewReportWriter(t.TempDir(), logger).RenderHTML(&buf, sampleReport()))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "0b5c7e52-8f1d-4d7e-9c55-1f1f0c6a2e11", doc.Find("#run-id").Text())
	assert.True(t, doc.Find("#status").HasClass("failed"))
	assert.Contains(t, doc.Find("#status").Text(), "3 checks, 1 failures")

	rows := doc.Find("#checks tbody tr")
	require.Equal(t, 3, rows.Length())

	failed := rows.Eq(1)
	assert.True(t, failed.HasClass("failed"))
	cells := failed.Find("td")
	assert.Equal(t, "cycles", cells.Eq(0).Text())
	assert.Equal(t, "skipped", cells.Eq(4).Text())
	assert.Equal(t, "count 2, expected 3; no <structure>", cells.Eq(6).Text())
	assert.Equal(t, "bb", rows.Eq(2).Find("td.digest").Text())

	cards := doc.Find(".stat-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "cycles", cards.Eq(0).AttrOr("data-grammar", ""))
	assert.Equal(t, "1, 2", strings.TrimSpace(cards.Eq(0).Find(".value").Text()))
	assert.Contains(t, cards.Eq(1).Find(".label").Text(), "1 checks, 0 failures")
}
