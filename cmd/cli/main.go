package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"causalbench/adapters/export"
	"causalbench/adapters/ingest"
	"causalbench/adapters/metrics"
	"causalbench/domain/dataset"
	"causalbench/internal/discretize"
	"causalbench/internal/profiling"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "causalbench",
		Short: "Benchmark causal structure learning algorithms",
	}

	rootCmd.AddCommand(
		newDiscretizeCmd(),
		newProfileCmd(),
		newCompareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDiscretizeCmd() *cobra.Command {
	var bins, initialBins int
	var method, out string

	cmd := &cobra.Command{
		Use:   "discretize [data-file]",
		Short: "Discretize a continuous dataset with Hartemink's method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := ingest.NewDataReader(args[0]).Read(dataset.Continuous)
			if err != nil {
				return err
			}

			table, err := discretize.Discretize(ds, discretize.Options{
				NBins:       bins,
				InitialBins: initialBins,
				Method:      discretize.InitialMethod(method),
			})
			if err != nil {
				return err
			}

			if out == "" {
				return export.WriteCategoricalCSV(os.Stdout, table)
			}
			if err := export.WriteCategoricalCSVFile(out, table); err != nil {
				return err
			}
			fmt.Printf("wrote %d rows x %d columns to %s\n", table.NSamples(), table.NFeatures(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&bins, "bins", 3, "target bin count per column")
	cmd.Flags().IntVar(&initialBins, "initial-bins", 0, "initial bin count (default 3x bins)")
	cmd.Flags().StringVar(&method, "method", string(discretize.MethodQuantile), "initial binning: quantile or uniform")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (default stdout)")
	return cmd
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [data-file]",
		Short: "Print column summary statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := ingest.NewDataReader(args[0]).Read(dataset.Continuous)
			if err != nil {
				return err
			}
			profiles, err := profiling.ProfileDataset(ds)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "column\tmean\tstddev\tmin\tmax\tmedian\tcardinality\tmissing")
			for _, p := range profiles {
				fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%d\t%.2f%%\n",
					p.Name, p.Mean, p.StdDev, p.Min, p.Max, p.Median, p.Cardinality, 100*p.MissingRate)
			}
			return w.Flush()
		},
	}
}

func newCompareCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "compare [ref-structure] [test-structure]",
		Short: "Score a learned CPDAG against a reference CPDAG",
		Long: `Compare two CPDAG files (CSV rows "from,to,type" with type arc or edge).
Feature names are resolved against the dataset given with --data.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := ingest.NewDataReader(dataFile).Read(dataset.Continuous)
			if err != nil {
				return err
			}
			features := ds.FeatureNames()

			ref, err := ingest.ReadStructureCSV(args[0], features)
			if err != nil {
				return err
			}
			test, err := ingest.ReadStructureCSV(args[1], features)
			if err != nil {
				return err
			}

			counts, err := metrics.Classify(ref, test)
			if err != nil {
				return err
			}
			shd := metrics.NewSHD(metrics.OrderCompleter{})
			shdValue, err := shd.Compute(ref, test)
			if err != nil {
				return err
			}

			fmt.Printf("TP=%d FP=%d FN=%d\n", counts.TP(), counts.FP(), counts.FN())
			fmt.Printf("precision=%.4f recall=%.4f F1=%.4f TPR=%.4f SHD=%.0f\n",
				counts.Precision(), counts.Recall(), counts.F1(), counts.TPR(), shdValue)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "dataset file providing the feature names")
	cmd.MarkFlagRequired("data")
	return cmd
}
