package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	adminapp "gigconnect_client/internal/admin/app"
	admindomain "gigconnect_client/internal/admin/domain"
	adminrepo "gigconnect_client/internal/admin/repository"
	sessionapp "gigconnect_client/internal/session/app"
	sessionrepo "gigconnect_client/internal/session/repository"
	"gigconnect_client/pkg/cache"
	"gigconnect_client/pkg/config"
	"gigconnect_client/pkg/httpclient"
	"gigconnect_client/pkg/logger"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.AdminConsole, config.EnvConfig.AdminConsoleLogPath)

	cfg := config.LoadConfig[config.AdminConsole](config.EnvConfig.AdminConsole, config.EnvConfig.AdminConsoleYAMLPath)

	httpClient := httpclient.New(cfg.APIBaseURL, time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	session := sessionapp.NewSessionUseCase(sessionrepo.NewRESTAuthRepository(httpClient))
	httpClient.SetTokenSource(session.Token)

	listCache, err := cache.NewLRU[any](cfg.CacheSize)
	if err != nil {
		logger.Log.Fatal("cache init failed", zap.Error(err))
	}
	admin := adminapp.NewAdminUseCase(adminrepo.NewRESTAdminRepository(httpClient), listCache)

	ctx := context.Background()
	stdin := bufio.NewScanner(os.Stdin)

	email, password := config.EnvConfig.Email, config.EnvConfig.Password
	if email == "" {
		email = prompt(stdin, "admin email: ")
		password = prompt(stdin, "password: ")
	}
	if _, err := session.AdminLogin(ctx, email, password); err != nil {
		logger.Log.Fatal("admin login failed", zap.Error(err))
	}

	fmt.Println("commands: stats | users | ban <id> | unban <id> | verify <id> | unverify <id> |")
	fmt.Println("          gigs | gig-status <id> <status> | bookings | booking-status <id> <status> |")
	fmt.Println("          payments | refund <id> | verifications | approve <id> | reject <id> <reason> |")
	fmt.Println("          tickets | close <id> | settings | set-fee <percent> | quit")

	for {
		fields := strings.Fields(prompt(stdin, "admin> "))
		if len(fields) == 0 {
			continue
		}
		if err := dispatch(ctx, admin, fields); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func dispatch(ctx context.Context, admin adminapp.AdminUseCase, fields []string) error {
	cmd, args := fields[0], fields[1:]

	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	switch cmd {
	case "quit":
		os.Exit(0)
	case "stats":
		stats, err := admin.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("users=%d gigs=%d bookings=%d revenue=%.2f open_tickets=%d pending_verifications=%d\n",
			stats.TotalUsers, stats.TotalGigs, stats.TotalBookings,
			stats.TotalRevenue, stats.OpenTickets, stats.PendingVerifications)
	case "users":
		users, err := admin.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s %s <%s> role=%s banned=%t verified=%t\n",
				u.ID, u.Username, u.Email, u.Role, u.IsBanned, u.IsVerified)
		}
	case "ban":
		return admin.SetUserBanned(ctx, arg(0), true)
	case "unban":
		return admin.SetUserBanned(ctx, arg(0), false)
	case "verify":
		return admin.SetUserVerified(ctx, arg(0), true)
	case "unverify":
		return admin.SetUserVerified(ctx, arg(0), false)
	case "gigs":
		gigs, err := admin.Gigs(ctx)
		if err != nil {
			return err
		}
		for _, g := range gigs {
			fmt.Printf("%s %q by %s price=%.2f status=%s\n", g.ID, g.Title, g.SellerName, g.Price, g.Status)
		}
	case "gig-status":
		return admin.SetGigStatus(ctx, arg(0), arg(1))
	case "bookings":
		bookings, err := admin.Bookings(ctx)
		if err != nil {
			return err
		}
		for _, b := range bookings {
			fmt.Printf("%s %q buyer=%s seller=%s status=%s\n", b.ID, b.GigTitle, b.BuyerID, b.SellerID, b.Status)
		}
	case "booking-status":
		return admin.SetBookingStatus(ctx, arg(0), arg(1))
	case "payments":
		payments, err := admin.Payments(ctx)
		if err != nil {
			return err
		}
		for _, p := range payments {
			fmt.Printf("%s booking=%s amount=%.2f status=%s\n", p.ID, p.BookingID, p.Amount, p.Status)
		}
	case "refund":
		return admin.RefundPayment(ctx, arg(0))
	case "verifications":
		verifications, err := admin.Verifications(ctx)
		if err != nil {
			return err
		}
		for _, v := range verifications {
			fmt.Printf("%s user=%s status=%s doc=%s\n", v.ID, v.Username, v.Status, v.DocumentURL)
		}
	case "approve":
		return admin.ApproveVerification(ctx, arg(0))
	case "reject":
		reason := ""
		if len(args) > 1 {
			reason = strings.Join(args[1:], " ")
		}
		return admin.RejectVerification(ctx, arg(0), reason)
	case "tickets":
		tickets, err := admin.Tickets(ctx)
		if err != nil {
			return err
		}
		for _, t := range tickets {
			fmt.Printf("%s %q priority=%s status=%s\n", t.ID, t.Subject, t.Priority, t.Status)
		}
	case "close":
		return admin.CloseTicket(ctx, arg(0))
	case "settings":
		settings, err := admin.Settings(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("service_fee_percent=%.2f\n", settings.ServiceFeePercent)
	case "set-fee":
		fee, err := strconv.ParseFloat(arg(0), 64)
		if err != nil {
			return fmt.Errorf("bad fee %q", arg(0))
		}
		return admin.UpdateSettings(ctx, admindomain.Settings{ServiceFeePercent: fee})
	default:
		fmt.Printf("unknown command %q\n", cmd)
	}
	return nil
}

func prompt(stdin *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !stdin.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(stdin.Text())
}
