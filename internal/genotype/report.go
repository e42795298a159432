package genotype

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
)

// Report is the plain-text compatibility report a patient can save or share.
type Report struct {
	GeneratedAt     time.Time
	PatientName     string
	PatientGenotype Genotype
	PartnerGenotype Genotype
	Profile         Profile
	PercentageAS    float64
	PercentageSS    float64
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"inc":   func(i int) int { return i + 1 },
	"pct":   formatPercent,
}).Parse(`
GENOTYPE COMPATIBILITY TEST REPORT
Generated on: {{.Date}}
Patient: {{.Name}}

EXECUTIVE SUMMARY
================
Test Date: {{.Date}}
Patient Genotype: {{.PatientGenotype}}
Partner Genotype: {{.PartnerGenotype}}
Risk Level: {{upper (print .Profile.Risk)}}
Compatibility Status: {{.Profile.Title}}

DETAILED ANALYSIS
=================
{{.Profile.Description}}

Risk of AS offspring: {{pct .PercentageAS}}%
Risk of SS offspring: {{pct .PercentageSS}}%
Overall risk assessment: {{pct .Profile.Percentage}}%

MEDICAL RECOMMENDATIONS
=======================
Based on your genetic compatibility results, the following recommendations are provided:

{{range $i, $r := .Profile.Recommendations}}{{inc $i}}. {{$r}}
{{end}}
IMMEDIATE NEXT STEPS
===================
{{range $i, $s := .Profile.NextSteps}}{{inc $i}}. {{$s}}
{{end}}
GENETIC COUNSELING INFORMATION
==============================
Genetic counseling is {{with .Profile.Risk.CounselingEmphasis}}{{.}} {{end}}recommended.

Key points to discuss with your genetic counselor:
- Family history of sickle cell disease
- Prenatal testing options
- Alternative reproductive options
- Emotional and psychological support

EDUCATIONAL RESOURCES
=====================
Recommended educational videos:
{{range $i, $v := .Profile.Videos}}{{if $i}}
{{end}}{{inc $i}}. {{$v.Title}}
   Description: {{$v.Description}}
   Link: {{$v.URL}}
{{end}}
IMPORTANT DISCLAIMERS
====================
- This report is for educational purposes only
- Always consult with qualified healthcare professionals
- Genetic counseling is recommended for all couples
- This test does not replace professional medical advice

RISK CLASSIFICATION GUIDE
=========================
LOW RISK: Minimal chance of sickle cell disease in offspring
MODERATE RISK: Some possibility of carrier children, genetic counseling recommended
HIGH RISK: Significant chance of affected children, specialist consultation urgent

FOLLOW-UP RECOMMENDATIONS
=========================
{{.Profile.Urgency.FollowUp}}

For questions or concerns, please contact your healthcare provider.

Report generated by Drepalife Digital Health Platform
(c) {{.Year}} Drepalife. All rights reserved.
`))

// Render writes the report text to w.
func (r Report) Render(w io.Writer) error {
	name := r.PatientName
	if name == "" {
		name = "N/A"
	}
	data := struct {
		Report
		Date string
		Name string
		Year int
	}{
		Report: r,
		Date:   r.GeneratedAt.Format("2006-01-02"),
		Name:   name,
		Year:   r.GeneratedAt.Year(),
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// FileName is the name the report is saved under.
func (r Report) FileName() string {
	return fmt.Sprintf("Genotype_Compatibility_Report_%s_%s_%d.txt",
		r.PatientGenotype, r.PartnerGenotype, r.GeneratedAt.UnixMilli())
}
