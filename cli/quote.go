package cli

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"

	"villadash/constants"
	"villadash/models"
	"villadash/services"
	"villadash/validator"
)

type quoteOptions struct {
	base        float64
	weekend     float64
	weekendDays []int
	from        string
	to          string
}

func newQuoteCommand() *cobra.Command {
	opts := quoteOptions{}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate the price of a stay offline",
		Long: `Prices every night of [from, to) with the base and weekend rates.
Weekend days are Monday-based indexes: 0 is Monday, 6 is Sunday.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().Float64Var(&opts.base, "base", 0, "Price per night")
	cmd.Flags().Float64Var(&opts.weekend, "weekend", 0, "Weekend price per night")
	cmd.Flags().IntSliceVar(&opts.weekendDays, "weekend-days", []int{4, 5}, "Weekend days, 0=Monday")
	cmd.Flags().StringVar(&opts.from, "from", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runQuote(out io.Writer, opts quoteOptions) error {
	checkIn, checkOut, err := validator.ValidateDateRange(opts.from, opts.to)
	if err != nil {
		return err
	}
	villa := models.Villa{
		PricePerNight: models.Amount(opts.base),
		WeekendDays:   opts.weekendDays,
	}
	if opts.weekend > 0 {
		villa.WeekendPrice = models.AmountPtr(opts.weekend)
	}

	quote := services.Estimate(villa, checkIn, checkOut, nil)
	for _, np := range quote.NightPrices {
		line := fmt.Sprintf("%s  %s  %10s", np.Date, np.Date.Weekday().String()[:3], np.Amount)
		if np.Category == constants.PriceWeekend {
			line = fcolor.New(fcolor.FgYellow).Sprint(line + "  weekend")
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, fcolor.New(fcolor.Bold).Sprintf("%d nights, total %s", quote.Nights, quote.TotalPayment))
	return nil
}
