package cli

import (
	"fmt"
	"strings"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
	"github.com/spf13/cobra"
)

func newDashboardCommand(opts *options, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show fleet, rental and revenue figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}

			stats, loadErr := services.NewDashboardService(s.clients, s.logger).Load(ctx)
			if opts.output == "json" {
				return p.JSON(stats)
			}

			t := newTable("METRIC", "VALUE")
			t.AddRow("Motorbikes", fmt.Sprintf("%d (%d available)", stats.TotalMotorbikes, stats.AvailableMotorbikes))
			t.AddRow("Users", fmt.Sprintf("%d", stats.TotalUsers))
			t.AddRow("Rentals", fmt.Sprintf("%d (%d pending)", stats.TotalRentals, stats.PendingRentals))
			t.AddRow("Revenue", domain.FormatPrice(stats.Revenue))
			t.AddRow("Blog posts", fmt.Sprintf("%d", stats.TotalBlogs))
			t.AddRow("Promotions", fmt.Sprintf("%d", stats.TotalPromotions))
			t.Render(p)

			if len(stats.RecentRentals) > 0 {
				p.Info("")
				p.Info("Recent rentals")
				recent := newTable("ID", "CUSTOMER", "MOTORBIKE", "TOTAL", "STATUS")
				for _, r := range stats.RecentRentals {
					recent.AddRow(r.ID, customerName(r), motorbikeName(r), domain.FormatPrice(r.TotalPrice), string(r.Status))
				}
				recent.Render(p)
			}
			if loadErr != nil {
				p.Warn("Some figures are missing: %s could not be loaded", strings.Join(stats.FailedSources, ", "))
			}
			return nil
		},
	}
}
