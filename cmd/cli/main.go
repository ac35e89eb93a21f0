package main

import (
	"encoding/json"
	"fmt"
	"os"

	"saasval/internal/calculator"
	"saasval/internal/domain"
	"saasval/internal/service"
	"saasval/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

func loadProfile(path string) (domain.CompanyProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	var profile domain.CompanyProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	return profile, nil
}

func writeCsv(out string, records interface{}) error {
	if out == "" || out == "-" {
		return gocsv.Marshal(records, os.Stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()
	return gocsv.Marshal(records, f)
}

func newValueCmd() *cobra.Command {
	var input string
	var full bool

	valueCmd := &cobra.Command{
		Use:   "value",
		Short: "Run a full valuation against a profile JSON file",
		RunE: func(_ *cobra.Command, _ []string) error {
			profile, err := loadProfile(input)
			if err != nil {
				return err
			}

			result := calculator.NewValuationHandler().ComputeValuation(profile)
			if full {
				util.Pprint(result)
				return nil
			}

			fmt.Printf("base multiple:    %.2fx (anchor %.1fx)\n",
				result.BuildUp.BaseMultiple, result.BuildUp.Anchor)
			fmt.Printf("bear / base / bull EV: %.0f / %.0f / %.0f\n",
				util.RoundDollars(result.Scenarios.Bear.EnterpriseValue),
				util.RoundDollars(result.Scenarios.Base.EnterpriseValue),
				util.RoundDollars(result.Scenarios.Bull.EnterpriseValue))
			fmt.Printf("dcf EV:           %.0f\n", util.RoundDollars(result.DCF.EnterpriseValue))
			fmt.Printf("composite score:  %.1f\n", result.Scores.Composite)
			return nil
		},
	}
	valueCmd.Flags().StringVarP(&input, "input", "i", "profile.json", "profile JSON file")
	valueCmd.Flags().BoolVar(&full, "full", false, "print the full result object")
	return valueCmd
}

type dcfCsvRow struct {
	Year           int     `csv:"year"`
	ARR            float64 `csv:"arr"`
	GrowthPct      float64 `csv:"growth_pct"`
	EBITDA         float64 `csv:"ebitda"`
	FreeCashFlow   float64 `csv:"free_cash_flow"`
	DiscountFactor float64 `csv:"discount_factor"`
	PresentValue   float64 `csv:"present_value"`
}

func newDcfCmd() *cobra.Command {
	var input, out string

	dcfCmd := &cobra.Command{
		Use:   "dcf",
		Short: "Export the DCF schedule as CSV",
		RunE: func(_ *cobra.Command, _ []string) error {
			profile, err := loadProfile(input)
			if err != nil {
				return err
			}

			projection := calculator.CalculateDCF(profile)
			rows := make([]dcfCsvRow, 0, len(projection.Years))
			for _, y := range projection.Years {
				rows = append(rows, dcfCsvRow{
					Year:           y.Year,
					ARR:            util.RoundDollars(y.ARR),
					GrowthPct:      util.RoundTo(y.GrowthPct, 4),
					EBITDA:         util.RoundDollars(y.EBITDA),
					FreeCashFlow:   util.RoundDollars(y.FreeCashFlow),
					DiscountFactor: util.RoundTo(y.DiscountFactor, 6),
					PresentValue:   util.RoundDollars(y.PresentValue),
				})
			}
			return writeCsv(out, &rows)
		},
	}
	dcfCmd.Flags().StringVarP(&input, "input", "i", "profile.json", "profile JSON file")
	dcfCmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return dcfCmd
}

type gridCsvRow struct {
	Row   float64 `csv:"row"`
	Col   float64 `csv:"col"`
	Value float64 `csv:"value"`
}

func newGridCmd() *cobra.Command {
	var input, out, metric string
	var row, col service.AxisSpec
	var rowAxis, colAxis string

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "Export a sensitivity grid as CSV",
		RunE: func(_ *cobra.Command, _ []string) error {
			profile, err := loadProfile(input)
			if err != nil {
				return err
			}

			row.Axis = service.GridAxis(rowAxis)
			col.Axis = service.GridAxis(colAxis)

			handler := service.SensitivityHandler{
				ValuationHandler: calculator.NewValuationHandler(),
			}
			result, err := handler.ComputeGrid(service.SensitivityInput{
				Profile: profile,
				Row:     row,
				Col:     col,
				Metric:  service.GridMetric(metric),
			})
			if err != nil {
				return err
			}

			rows := make([]gridCsvRow, 0, len(result.RowValues)*len(result.ColValues))
			for i, rv := range result.RowValues {
				for j, cv := range result.ColValues {
					rows = append(rows, gridCsvRow{
						Row:   rv,
						Col:   cv,
						Value: util.RoundTo(result.Cells[i][j], 4),
					})
				}
			}
			return writeCsv(out, &rows)
		},
	}
	gridCmd.Flags().StringVarP(&input, "input", "i", "profile.json", "profile JSON file")
	gridCmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	gridCmd.Flags().StringVar(&metric, "metric", string(service.GridMetric_BaseMultiple), "cell metric")
	gridCmd.Flags().StringVar(&rowAxis, "row-axis", string(service.GridAxis_ARRGrowth), "row axis field")
	gridCmd.Flags().Float64Var(&row.Min, "row-min", 10, "row axis minimum")
	gridCmd.Flags().Float64Var(&row.Max, "row-max", 70, "row axis maximum")
	gridCmd.Flags().IntVar(&row.Steps, "row-steps", 7, "row axis steps")
	gridCmd.Flags().StringVar(&colAxis, "col-axis", string(service.GridAxis_NRR), "col axis field")
	gridCmd.Flags().Float64Var(&col.Min, "col-min", 85, "col axis minimum")
	gridCmd.Flags().Float64Var(&col.Max, "col-max", 125, "col axis maximum")
	gridCmd.Flags().IntVar(&col.Steps, "col-steps", 5, "col axis steps")
	return gridCmd
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "saasval",
		Short: "SaaS valuation engine",
	}
	rootCmd.AddCommand(newValueCmd(), newDcfCmd(), newGridCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
