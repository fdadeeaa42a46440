package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloture-cost/cloture-cost/pivot"
	"github.com/cloture-cost/cloture-cost/pivot/dataset"
)

var (
	// CLI flags for the run command
	votesPath       string // roll-call vote table CSV
	memberVotesPath string // member-vote table CSV
	membersPath     string // member reference table CSV
	rulesPath       string // optional threshold rules YAML
	outDir          string // output directory for result tables
	strict          bool   // abort on the first malformed row
	logLevel        string // log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cloture-cost",
	Short: "Flip-cost analysis for failed Senate cloture votes",
}

// runCmd executes the analysis using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the flip-cost pipeline over the input tables",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if votesPath == "" || memberVotesPath == "" || membersPath == "" {
			logrus.Fatalf("Input tables not provided. Need --votes, --member-votes and --members.")
		}

		rules := pivot.DefaultRuleSet()
		if rulesPath != "" {
			rules, err = pivot.LoadRuleSet(rulesPath)
			if err != nil {
				logrus.Fatalf("Unable to load rules: %v", err)
			}
		}

		votes, err := dataset.LoadRollCalls(votesPath)
		if err != nil {
			logrus.Fatalf("Unable to load roll calls: %v", err)
		}
		memberVotes, err := dataset.LoadMemberVotes(memberVotesPath)
		if err != nil {
			logrus.Fatalf("Unable to load member votes: %v", err)
		}
		members, err := dataset.LoadMembers(membersPath)
		if err != nil {
			logrus.Fatalf("Unable to load members: %v", err)
		}

		logrus.Infof("Loaded %d roll calls, %d member votes, %d members",
			len(votes), len(memberVotes), len(members))

		pipeline := pivot.NewPipeline(rules, strict)
		result, err := pipeline.Run(votes, memberVotes, members)
		if err != nil {
			logrus.Fatalf("Pipeline failed: %v", err)
		}

		result.Summary.Print()

		if outDir != "" {
			if err := exportResult(result, rules, len(votes)); err != nil {
				logrus.Fatalf("Unable to write results: %v", err)
			}
			logrus.Infof("Results written to %s", outDir)
		}
	},
}

// exportResult writes the cost table, flip curve and run header to outDir.
func exportResult(result *pivot.Result, rules pivot.RuleSet, rollCalls int) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	if err := dataset.WriteCostTable(result.Costs, filepath.Join(outDir, "costs.csv")); err != nil {
		return err
	}
	if err := dataset.WriteFlipCurve(result.Curve, filepath.Join(outDir, "flip_curve.csv")); err != nil {
		return err
	}
	header := &dataset.RunHeader{
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		RollCalls:   rollCalls,
		Candidates:  len(result.Candidates),
		CostRecords: len(result.Costs),
		Strict:      strict,
		Rules:       dataset.NewRulesHeader(rules),
	}
	return dataset.WriteRunHeader(header, filepath.Join(outDir, "run.yaml"))
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&votesPath, "votes", "", "Roll-call vote table (CSV)")
	runCmd.Flags().StringVar(&memberVotesPath, "member-votes", "", "Member-vote table (CSV)")
	runCmd.Flags().StringVar(&membersPath, "members", "", "Member reference table (CSV)")
	runCmd.Flags().StringVar(&rulesPath, "rules", "", "Threshold rules file (YAML); defaults to the built-in Senate rules")
	runCmd.Flags().StringVar(&outDir, "out", "", "Directory for result tables (omit to only print the summary)")
	runCmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first malformed input row")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
}
