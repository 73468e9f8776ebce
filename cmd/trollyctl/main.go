// trollyctl is the admin terminal for the Spicy Trolly backend. It
// wires the configured session store into the API client and renders
// the fetched data; all business logic lives behind the REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"spicytrolly/internal/config"
	"spicytrolly/internal/display"
	"spicytrolly/internal/models"
	"spicytrolly/internal/session"
	"spicytrolly/pkg/api"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open session store")
	}
	defer store.Close()

	client := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Session: store,
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		Logger:  &logger,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "session expired, run 'trollyctl login' to continue")
		},
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	loc := display.Locale(cfg.Locale)

	if err := run(ctx, client, loc, os.Args[1], os.Args[2:]); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: trollyctl <command> [flags]

commands:
  login        authenticate and store the session
  logout       end the session
  whoami       show the authenticated admin
  menu         list menu items grouped by category
  orders       list orders with status counts
  order-status move an order to a new status
  stock        list raw products (low-stock flagged)
  restock      adjust a raw product's stock level
  purchases    list the purchase ledger
  sales        list sales, optionally for a date range
  report       daily, monthly, profit-loss or top-selling reports
  dashboard    combined overview`)
}

func run(ctx context.Context, client *api.Client, loc display.Locale, cmd string, args []string) error {
	switch cmd {
	case "login":
		return cmdLogin(ctx, client, args)
	case "logout":
		return client.Auth.Logout(ctx)
	case "whoami":
		return cmdWhoami(ctx, client)
	case "menu":
		return cmdMenu(ctx, client)
	case "orders":
		return cmdOrders(ctx, client, loc)
	case "order-status":
		return cmdOrderStatus(ctx, client, args)
	case "stock":
		return cmdStock(ctx, client, args)
	case "restock":
		return cmdRestock(ctx, client, args)
	case "purchases":
		return cmdPurchases(ctx, client, loc)
	case "sales":
		return cmdSales(ctx, client, loc, args)
	case "report":
		return cmdReport(ctx, client, args)
	case "dashboard":
		return cmdDashboard(ctx, client)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func openStore(cfg *config.Config) (session.Store, error) {
	switch cfg.SessionStore {
	case "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		return session.NewRedisStore(cfg.RedisURL)
	default:
		return session.OpenFileStore(cfg.SessionPath)
	}
}

func cmdLogin(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)

	resp, err := client.Auth.Login(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.Admin.Name, resp.Admin.Role)
	return nil
}

func cmdWhoami(ctx context.Context, client *api.Client) error {
	admin, err := client.Auth.Verify(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s\n", admin.Name, admin.Email, admin.Role)
	return nil
}

func cmdMenu(ctx context.Context, client *api.Client) error {
	items, err := client.Menu.List(ctx)
	if err != nil {
		return err
	}
	categories, grouped := models.GroupByCategory(items)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, cat := range categories {
		fmt.Fprintf(w, "%s\n", cat)
		for _, item := range grouped[cat] {
			availability := ""
			if !item.Available {
				availability = "(unavailable)"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", item.Name, display.FormatMoney(item.Price), availability)
		}
	}
	return w.Flush()
}

func cmdOrders(ctx context.Context, client *api.Client, loc display.Locale) error {
	orders, err := client.Orders.List(ctx)
	if err != nil {
		return err
	}

	counts := models.CountByStatus(orders)
	fmt.Printf("pending=%d confirmed=%d preparing=%d completed=%d cancelled=%d\n\n",
		counts[models.OrderPending], counts[models.OrderConfirmed], counts[models.OrderPreparing],
		counts[models.OrderCompleted], counts[models.OrderCancelled])

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tEVENT\tGUESTS\tTOTAL\tSTATUS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%d\t%s\t%s [%s]\t%s\n",
			o.ID, o.CustomerName, o.EventType, display.FormatDate(o.EventDate, loc),
			o.GuestCount, display.FormatMoney(o.TotalAmount),
			o.Status, display.StatusColor(o.Status),
			display.FormatDateTime(o.CreatedAt, loc))
	}
	return w.Flush()
}

func cmdOrderStatus(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("order-status", flag.ExitOnError)
	id := fs.String("id", "", "order id")
	status := fs.String("status", "", "new status")
	fs.Parse(args)

	order, err := client.Orders.UpdateStatus(ctx, *id, models.OrderStatus(*status))
	if err != nil {
		return err
	}
	fmt.Printf("order %s is now %s\n", order.ID, order.Status)
	return nil
}

func cmdStock(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("stock", flag.ExitOnError)
	lowOnly := fs.Bool("low", false, "only show low-stock products")
	fs.Parse(args)

	products, err := client.RawProducts.List(ctx)
	if err != nil {
		return err
	}
	if *lowOnly {
		products = models.LowStock(products)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTOCK\tMINIMUM\tUNIT\tCOST/UNIT\t")
	for _, p := range products {
		marker := ""
		if p.IsLowStock() {
			marker = "LOW"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
			p.ID, p.Name, p.CurrentStock, p.MinimumStock, p.Unit, display.FormatMoney(p.CostPerUnit), marker)
	}
	return w.Flush()
}

func cmdRestock(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("restock", flag.ExitOnError)
	id := fs.String("id", "", "raw product id")
	quantity := fs.Float64("quantity", 0, "quantity to adjust by")
	direction := fs.String("type", "add", "add or subtract")
	fs.Parse(args)

	product, err := client.RawProducts.UpdateStock(ctx, *id, *quantity, models.StockDirection(*direction))
	if err != nil {
		return err
	}
	fmt.Printf("%s now at %.2f %s\n", product.Name, product.CurrentStock, product.Unit)
	return nil
}

func cmdPurchases(ctx context.Context, client *api.Client, loc display.Locale) error {
	purchases, err := client.Purchases.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tCOST\tSUPPLIER\tDATE")
	for _, p := range purchases {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
			p.ID, p.RawProductName, p.Quantity, display.FormatMoney(p.TotalCost),
			p.Supplier, display.FormatDate(p.PurchaseDate, loc))
	}
	return w.Flush()
}

func cmdSales(ctx context.Context, client *api.Client, loc display.Locale, args []string) error {
	fs := flag.NewFlagSet("sales", flag.ExitOnError)
	start := fs.String("start", "", "start date (2006-01-02)")
	end := fs.String("end", "", "end date (2006-01-02)")
	fs.Parse(args)

	var sales []models.Sale
	var err error
	if *start != "" && *end != "" {
		var from, to time.Time
		if from, err = time.Parse("2006-01-02", *start); err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		if to, err = time.Parse("2006-01-02", *end); err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		sales, err = client.Sales.ListRange(ctx, from, to)
	} else {
		sales, err = client.Sales.List(ctx)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tITEMS\tTOTAL\tDATE")
	for _, s := range sales {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			s.ID, s.OrderID, len(s.Items), display.FormatMoney(s.TotalAmount), display.FormatDate(s.SaleDate, loc))
	}
	return w.Flush()
}

func cmdReport(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("report kind required: daily, monthly, profit-loss or top-selling")
	}
	kind := args[0]
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "report date")
	month := fs.Int("month", int(time.Now().Month()), "report month")
	year := fs.Int("year", time.Now().Year(), "report year")
	start := fs.String("start", "", "start date")
	end := fs.String("end", "", "end date")
	period := fs.String("period", "monthly", "daily, weekly or monthly")
	fs.Parse(args[1:])

	switch kind {
	case "daily":
		day, err := time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		report, err := client.Reports.DailySales(ctx, day)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s across %d orders\n", report.Date, display.FormatMoney(report.TotalSales), report.TotalOrders)
		for _, item := range report.TopSellingItems {
			fmt.Printf("  %s x%d (%s)\n", item.ItemName, item.Quantity, display.FormatMoney(item.Revenue))
		}
		return nil
	case "monthly":
		report, err := client.Reports.MonthlySales(ctx, time.Month(*month), *year)
		if err != nil {
			return err
		}
		fmt.Printf("%s %d: %s across %d orders\n", report.Month, report.Year, display.FormatMoney(report.TotalSales), report.TotalOrders)
		return nil
	case "profit-loss":
		from, err := time.Parse("2006-01-02", *start)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		to, err := time.Parse("2006-01-02", *end)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		report, err := client.Reports.ProfitLoss(ctx, from, to)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n  revenue %s\n  costs %s\n  gross %s\n  net %s (%.1f%%)\n",
			report.Period, display.FormatMoney(report.TotalRevenue), display.FormatMoney(report.TotalCosts),
			display.FormatMoney(report.GrossProfit), display.FormatMoney(report.NetProfit), report.ProfitMargin)
		return nil
	case "top-selling":
		items, err := client.Reports.TopSelling(ctx, models.ReportPeriod(*period))
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%s x%d (%s)\n", item.ItemName, item.Quantity, display.FormatMoney(item.Revenue))
		}
		return nil
	default:
		return fmt.Errorf("unknown report kind %q", kind)
	}
}

// cmdDashboard fetches the three overview datasets concurrently. Each
// call is independent; failures surface as one combined error.
func cmdDashboard(ctx context.Context, client *api.Client) error {
	var (
		orders   []models.Order
		menu     []models.MenuItem
		products []models.RawProduct
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = client.Orders.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		menu, err = client.Menu.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = client.RawProducts.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	counts := models.CountByStatus(orders)
	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status == models.OrderCompleted {
			revenue = revenue.Add(o.TotalAmount)
		}
	}
	low := models.LowStock(products)

	fmt.Printf("orders: %d total, %d pending\n", len(orders), counts[models.OrderPending])
	fmt.Printf("revenue (completed orders): %s\n", display.FormatMoney(revenue))
	fmt.Printf("menu items: %d\n", len(menu))
	fmt.Printf("raw products: %d, %d low on stock\n", len(products), len(low))
	for _, p := range low {
		fmt.Printf("  %s at %.2f %s (minimum %.2f)\n", p.Name, p.CurrentStock, p.Unit, p.MinimumStock)
	}
	return nil
}
