// Command planner solves the diet problem from the command line and prints
// the cheapest meal plan satisfying the nutrition guidelines.
//
// Usage:
//
//	go run ./cmd/planner
//	go run ./cmd/planner --dataset menu.yaml --dataset extras.yaml
//	go run ./cmd/planner --tolerance 0 --json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutriplan/diet-optimizer/internal/lp"
	"github.com/nutriplan/diet-optimizer/internal/models"
	"github.com/nutriplan/diet-optimizer/internal/repository"
	"github.com/nutriplan/diet-optimizer/internal/service"
	"github.com/nutriplan/diet-optimizer/internal/solver"
	"github.com/nutriplan/diet-optimizer/pkg/logger"
)

var (
	datasetFiles []string
	tolerance    float64
	jsonOutput   bool
	logLevel     string
)

func main() {
	root := &cobra.Command{
		Use:   "planner",
		Short: "Solve the cheapest meal plan satisfying nutrition guidelines",
		Long: "planner formulates the configured menu and guidelines as a linear " +
			"program, solves it, and prints the servings of each food in the " +
			"cost-minimal plan.",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.Flags().StringSliceVar(&datasetFiles, "dataset", nil, "dataset YAML file (repeatable; default: embedded reference dataset)")
	root.Flags().Float64Var(&tolerance, "tolerance", lp.DefaultMinTolerance, "offset added to minimum guideline bounds")
	root.Flags().BoolVar(&jsonOutput, "json", false, "print the plan as JSON")
	root.Flags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := logger.New(logLevel)

	var (
		repo *repository.InMemoryMenuRepository
		err  error
	)
	if len(datasetFiles) > 0 {
		repo, err = repository.NewMenuRepositoryFromFiles(ctx, datasetFiles)
	} else {
		repo, err = repository.NewInMemoryMenuRepository()
	}
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	planner := service.NewPlannerService(
		repo,
		func() lp.Backend { return solver.NewSimplex() },
		tolerance,
		log,
	)

	plan, err := planner.CreatePlan(ctx, models.PlanRequest{})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	printPlan(cmd, plan)
	return nil
}

func printPlan(cmd *cobra.Command, plan *models.MealPlan) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FOOD\tSERVINGS")
	for _, s := range plan.Servings {
		fmt.Fprintf(w, "%s\t%.4f\n", s.Name, s.Servings)
	}
	w.Flush()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	for _, nutrient := range sortedKeys(plan.Nutrients) {
		fmt.Fprintf(out, "%-10s %.2f\n", nutrient, plan.Nutrients[nutrient])
	}
	fmt.Fprintf(out, "\nTotal cost: %.2f\n", plan.TotalCost)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
