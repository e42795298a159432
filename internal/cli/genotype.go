package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"drepalife-app/internal/genotype"
	"drepalife-app/internal/service"
)

func newGenotypeCmd(cc *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genotype",
		Short: "Genotype compatibility checks",
	}

	var withReport bool
	check := &cobra.Command{
		Use:   "check PATIENT PARTNER",
		Short: "Check the compatibility of two genotypes (AA, AS, SS, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			res, err := a.genotype.Check(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			if !withReport {
				return nil
			}
			path, err := a.genotype.WriteReport(ctx, res, a.cfg.ReportDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nReport saved to %s\n", path)
			return nil
		}),
	}
	check.Flags().BoolVar(&withReport, "report", false, "also save the text report")

	var dir string
	report := &cobra.Command{
		Use:   "report PATIENT PARTNER",
		Short: "Check two genotypes and save the text report",
		Args:  cobra.ExactArgs(2),
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			res, err := a.genotype.Check(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			target := dir
			if target == "" {
				target = a.cfg.ReportDir
			}
			path, err := a.genotype.WriteReport(ctx, res, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", path)
			return nil
		}),
	}
	report.Flags().StringVar(&dir, "dir", "", "directory for the report (default REPORT_DIR)")

	var every bool
	table := &cobra.Command{
		Use:   "table",
		Short: "Print the known combinations and the expected children",
		Long:  "Prints the combinations with a compatibility profile. With --all every pair of supported genotypes is listed, with \"-\" as risk when no profile exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if every {
				printEveryPair(out)
				return nil
			}
			for _, key := range genotype.Combinations() {
				left, right, _ := strings.Cut(key, "-")
				p, q := genotype.Genotype(left), genotype.Genotype(right)
				profile, err := genotype.Lookup(p, q)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-6s %-8s %s\n", key, profile.Risk, formatDistribution(genotype.OffspringDistribution(p, q).Strings()))
			}
			return nil
		},
	}

	table.Flags().BoolVar(&every, "all", false, "list every pair of supported genotypes")

	cmd.AddCommand(check, report, table)
	return cmd
}

func printEveryPair(w io.Writer) {
	codes := genotype.All()
	for i, p := range codes {
		for _, q := range codes[i:] {
			risk := "-"
			if profile, err := genotype.Lookup(p, q); err == nil {
				risk = string(profile.Risk)
			}
			fmt.Fprintf(w, "%s-%s  %-8s %s\n", p, q, risk, formatDistribution(genotype.OffspringDistribution(p, q).Strings()))
		}
	}
}

func printResult(w io.Writer, res *service.CompatibilityResult) {
	p := res.Profile
	fmt.Fprintf(w, "%s x %s: %s (%s risk)\n", res.Patient, res.Partner, p.Title, p.Risk)
	fmt.Fprintln(w, p.Description)
	fmt.Fprintf(w, "Overall risk: %s%%\n", formatPercent(p.Percentage))
	fmt.Fprintf(w, "Children: %s\n", formatDistribution(res.ChildPercentages))

	fmt.Fprintln(w, "\nRecommendations:")
	for i, r := range p.Recommendations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, r)
	}
	fmt.Fprintln(w, "\nNext steps:")
	for i, s := range p.NextSteps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
	if len(p.Videos) > 0 {
		fmt.Fprintln(w, "\nVideos:")
		for _, v := range p.Videos {
			fmt.Fprintf(w, "  - %s: %s\n", v.Title, v.URL())
		}
	}
}

func formatDistribution(d map[string]float64) string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s %s%%", k, formatPercent(d[k]))
	}
	return s
}
