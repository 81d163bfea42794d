package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"classbench/adapters/excel"
	"classbench/app"
	"classbench/domain/classify"
	"classbench/internal/report"
	"classbench/internal/simulate"
	"classbench/models"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "classbench",
		Short: "Compare a generative and a discriminative 1-D classifier",
	}

	rootCmd.AddCommand(
		newSimulateCmd(),
		newFitCmd(),
		newCompareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mixtureFlags(cmd *cobra.Command, mixture *simulate.Config) {
	cmd.Flags().Float64Var(&mixture.NegativeMean, "negative-mean", mixture.NegativeMean, "Mean of the negative-class distribution")
	cmd.Flags().Float64Var(&mixture.NegativeStd, "negative-std", mixture.NegativeStd, "Std of the negative-class distribution")
	cmd.Flags().Float64Var(&mixture.PositiveMean, "positive-mean", mixture.PositiveMean, "Mean of the positive-class distribution")
	cmd.Flags().Float64Var(&mixture.PositiveStd, "positive-std", mixture.PositiveStd, "Std of the positive-class distribution")
	cmd.Flags().Float64Var(&mixture.PositiveRate, "positive-rate", mixture.PositiveRate, "Probability of drawing the positive class")
}

func newSimulateCmd() *cobra.Command {
	var seed int64
	var n int
	mixture := simulate.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Draw labeled samples from the two-class mixture as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := simulate.NewGenerator(mixture, seed)
			if err != nil {
				return err
			}
			samples, err := generator.Draw(n)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "feature,label")
			for _, s := range samples {
				fmt.Fprintf(cmd.OutOrStdout(), "%g,%d\n", s.Feature, s.Label)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	cmd.Flags().IntVar(&n, "n", 1000, "Number of samples to draw")
	mixtureFlags(cmd, &mixture)
	return cmd
}

func newFitCmd() *cobra.Command {
	var dataFile string
	var seed int64
	var n int
	mixture := simulate.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit both classifiers and print their parameters",
		Long: `Fit both classifiers on labeled samples and print the fitted
parameters as JSON. Samples come from --data (xlsx or csv with feature
and label columns) or, when omitted, from the simulated mixture.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := loadSamples(dataFile, mixture, seed, n)
			if err != nil {
				return err
			}

			thresholdModel, err := classify.FitThreshold(samples)
			if err != nil {
				return err
			}
			gaussianModel, err := classify.FitGaussian(samples)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]interface{}{
				"samples":   len(samples),
				"threshold": thresholdModel,
				"gaussian":  gaussianModel,
			})
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "Path to xlsx/csv sample file (omit to simulate)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for simulated data")
	cmd.Flags().IntVar(&n, "n", 1000, "Simulated sample count when --data is omitted")
	mixtureFlags(cmd, &mixture)
	return cmd
}

func newCompareCmd() *cobra.Command {
	var seed int64
	var trainSize, testSize, trials int
	var reportPath string
	mixture := simulate.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the full generative-vs-discriminative benchmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewBenchmarkService(nil)
			req := app.BenchmarkRequest{
				Seed:      seed,
				TrainSize: trainSize,
				TestSize:  testSize,
				Mixture:   mixture,
			}

			experiment, err := service.Run(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Markdown(experiment))

			if trials > 1 {
				summary, err := service.RunTrials(context.Background(), req, trials)
				if err != nil {
					return err
				}
				if err := printJSON(cmd, summary); err != nil {
					return err
				}
			}

			if reportPath != "" {
				writer := excel.NewReportWriter()
				if err := writer.Write(reportPath, []*models.Experiment{experiment}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	cmd.Flags().IntVar(&trainSize, "train-size", 10000, "Training sample count")
	cmd.Flags().IntVar(&testSize, "test-size", 10000, "Test sample count")
	cmd.Flags().IntVar(&trials, "trials", 1, "Repeat the benchmark over seeded trials")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write an xlsx report to this path")
	mixtureFlags(cmd, &mixture)
	return cmd
}

func loadSamples(dataFile string, mixture simulate.Config, seed int64, n int) (classify.SampleSet, error) {
	if dataFile != "" {
		return excel.NewSampleReader(dataFile).Read()
	}
	generator, err := simulate.NewGenerator(mixture, seed)
	if err != nil {
		return nil, err
	}
	return generator.Draw(n)
}

func printJSON(cmd *cobra.Command, payload interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
