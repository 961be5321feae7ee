package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"villadash/config"
	"villadash/constants"
	"villadash/dto"
	"villadash/errors"
	"villadash/models"
	"villadash/services"
	"villadash/services/logger"
	"villadash/services/villaapi"
)

type calendarOptions struct {
	month    string
	villaID  uint
	email    string
	password string
}

func newCalendarCommand() *cobra.Command {
	opts := calendarOptions{}
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month of the booking calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.month, "month", "", "Month to print (YYYY-MM), current month by default")
	cmd.Flags().UintVar(&opts.villaID, "villa", 0, "Only print this villa")
	cmd.Flags().StringVar(&opts.email, "email", "", "Admin email")
	cmd.Flags().StringVar(&opts.password, "password", "", "Admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func runCalendar(ctx context.Context, out io.Writer, opts calendarOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	today := models.Today(cfg.Location())
	month := today.MonthStart()
	if opts.month != "" {
		if month, err = services.ParseMonth(opts.month); err != nil {
			return err
		}
	}

	api := villaapi.New(villaapi.Options{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.APITimeout},
		Tokens:     villaapi.NewMemoryTokens("", ""),
		Logger:     logger.NewDefaultLogger(logger.ErrorLevel),
	})
	if _, err := api.Login(ctx, opts.email, opts.password); err != nil {
		return err
	}
	defer api.Logout(context.WithoutCancel(ctx))

	start, end := services.MonthRange(month)
	var (
		villas      []models.Villa
		bookings    []models.Booking
		specialDays []models.GlobalSpecialDay
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		villas, err = api.ListVillas(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		bookings, err = api.CalendarBookings(gctx, dto.CalendarQuery{Start: start, End: end, VillaID: opts.villaID})
		return err
	})
	g.Go(func() (err error) {
		specialDays, err = api.ListSpecialDays(gctx)
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if opts.villaID != 0 {
		kept := villas[:0]
		for _, v := range villas {
			if v.ID == opts.villaID {
				kept = append(kept, v)
			}
		}
		villas = kept
	}

	printGrid(out, services.BuildGrid(services.GridInput{
		Month:       month,
		Villas:      villas,
		Bookings:    bookings,
		SpecialDays: specialDays,
		Today:       today,
	}))
	return nil
}

const cellWidth = 14

var cellColors = map[string]*fcolor.Color{
	constants.CellAvailable: fcolor.New(fcolor.FgGreen),
	constants.CellBlocked:   fcolor.New(fcolor.FgHiBlack),
	constants.CellPast:      fcolor.New(fcolor.FgRed),
	constants.CellUpcoming:  fcolor.New(fcolor.FgBlue),
}

func printGrid(out io.Writer, grid services.Grid) {
	header := fmt.Sprintf("%-15s", grid.Month)
	for _, v := range grid.Villas {
		header += fit(v.Name)
	}
	fmt.Fprintln(out, fcolor.New(fcolor.Bold).Sprint(header))

	for _, row := range grid.Rows {
		label := fmt.Sprintf("%s %s ", row.Date, row.Weekday)
		if row.IsToday {
			label = fcolor.New(fcolor.Bold, fcolor.Underline).Sprint(label)
		}
		line := label
		for _, cell := range row.Cells {
			line += cellColors[cell.Status].Sprint(fit(cellText(cell)))
		}
		fmt.Fprintln(out, line)
	}
}

func cellText(cell services.Cell) string {
	switch {
	case cell.Action == constants.CellActionCreate && cell.Price != nil:
		return cell.Price.String()
	case cell.IsStart && cell.ClientName != "":
		return cell.ClientName
	case cell.Continuation:
		return "..."
	default:
		return cell.Status
	}
}

func fit(s string) string {
	r := []rune(s)
	if len(r) > cellWidth-1 {
		r = r[:cellWidth-1]
	}
	return string(r) + strings.Repeat(" ", cellWidth-len(r))
}
