/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: Learner.go
Description: Standalone demo runner for the Akaylee Learner. Learns every built-in target language, collects per-target statistics, and writes detailed HTML/JSON reports to ./learn_output. Modular, clean, and beautiful.
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
)

type LearnReport struct {
	Target          string `json:"target"`
	Description     string `json:"description"`
	Alphabet        string `json:"alphabet"`
	Status          string `json:"status"`
	Error           string `json:"error,omitempty"`
	States          int    `json:"states"`
	Queries         int    `json:"queries"`
	SearchChecks    int    `json:"search_checks"`
	Counterexamples int    `json:"counterexamples"`
	Duration        string `json:"duration"`
	DOT             string `json:"dot,omitempty"`
}

func main() {
	outputDir := "./learn_output"
	os.MkdirAll(outputDir, 0755)

	var reports []LearnReport
	for _, target := range oracle.ListTargets() {
		report := LearnReport{
			Target:      target.Name(),
			Description: target.Description(),
			Alphabet:    string(target.Alphabet()),
			Status:      "ok",
		}
		start := time.Now()
		result, err := learner.LearnTarget(target, 0, 0)
		report.Duration = time.Since(start).String()
		if err != nil {
			report.Status = "error"
			report.Error = err.Error()
		} else {
			report.States = result.Stats.States
			report.Queries = result.Stats.MembershipQueries
			report.SearchChecks = result.Stats.SearchChecks
			report.Counterexamples = result.Stats.Counterexamples
			report.DOT = result.DFA.DOT()
		}
		reports = append(reports, report)
		fmt.Printf("learned %s: %s (%d states, %d queries)\n",
			report.Target, report.Status, report.States, report.Queries)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("learn_report_%s.json", timestamp))
	htmlPath := filepath.Join(outputDir, fmt.Sprintf("learn_report_%s.html", timestamp))
	jsonData, _ := json.MarshalIndent(reports, "", "  ")
	os.WriteFile(jsonPath, jsonData, 0644)
	writeHTMLReport(htmlPath, reports)
	fmt.Printf("reports written to %s and %s\n", jsonPath, htmlPath)
}

func writeHTMLReport(path string, reports []LearnReport) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString("<html><head><title>Akaylee Learn Report</title><style>body{font-family:sans-serif;}table{border-collapse:collapse;}th,td{border:1px solid #ccc;padding:4px;}th{background:#eee;}tr.ok{background:#dfd;}tr.error{background:#fdd;}</style></head><body>")
	f.WriteString("<h1>Akaylee Learn Report</h1><table><tr><th>Target</th><th>Alphabet</th><th>Status</th><th>States</th><th>Queries</th><th>Search Checks</th><th>Counterexamples</th><th>Duration</th><th>DOT</th></tr>")
	for _, r := range reports {
		f.WriteString(fmt.Sprintf("<tr class='%s'><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%s</td><td><pre>%s</pre></td></tr>",
			r.Status, r.Target, r.Alphabet, r.Status, r.States, r.Queries, r.SearchChecks, r.Counterexamples, r.Duration, htmlEscape(r.DOT)))
	}
	f.WriteString("</table></body></html>")
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
