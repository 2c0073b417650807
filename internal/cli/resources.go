package cli

import (
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
	"github.com/spf13/cobra"
)

func newMotorbikesCommand(opts *options, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "motorbikes",
		Aliases: []string{"motorbike", "mb"},
		Short:   "Manage the motorbike fleet",
	}

	var q ports.MotorbikeQuery
	var motorbikeType, status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List motorbikes",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := &flagChecks{}
			checks.minimum("page", q.Page, 1)
			checks.minimum("limit", q.Limit, 1)
			checks.enum("type", motorbikeType, enumValues(domain.MotorbikeTypes))
			checks.enum("status", status, enumValues(domain.MotorbikeStatuses))
			if err := checks.err(); err != nil {
				return err
			}
			q.Type = domain.MotorbikeType(motorbikeType)
			q.Status = domain.MotorbikeStatus(status)

			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}
			page, err := unwrap(s.clients.Motorbikes.List(ctx, q))
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return p.JSON(page)
			}
			t := newTable("ID", "NAME", "TYPE", "PLATE", "PRICE/DAY", "STATUS")
			for _, m := range page.Items {
				t.AddRow(m.ID, m.Name, string(m.Type), m.LicensePlate, domain.FormatPrice(m.PricePerDay), string(m.Status))
			}
			t.Render(p)
			p.Info("%d of %d motorbikes (page %d)", len(page.Items), page.Total, q.Page)
			return nil
		},
	}
	list.Flags().Int64Var(&q.Page, "page", 1, "page number")
	list.Flags().Int64Var(&q.Limit, "limit", services.DefaultPageSize, "page size")
	list.Flags().StringVar(&motorbikeType, "type", "", "filter by type: "+joinValues(domain.MotorbikeTypes))
	list.Flags().StringVar(&status, "status", "", "filter by status: "+joinValues(domain.MotorbikeStatuses))
	list.Flags().StringVar(&q.Search, "search", "", "search by name or plate")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a motorbike",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}
			if _, err := unwrap(s.clients.Motorbikes.Delete(ctx, args[0])); err != nil {
				return err
			}
			p.Success("%s", domain.MotorbikeMessages.Deleted)
			return nil
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}

func newRentalsCommand(opts *options, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rentals",
		Aliases: []string{"rental"},
		Short:   "Review rentals and change their status",
	}

	var status string
	var page int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List rentals",
		Long:  "Fetches every rental and filters and pages them locally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := &flagChecks{}
			checks.minimum("page", page, 1)
			checks.enum("status", status, enumValues(domain.RentalStatuses))
			if err := checks.err(); err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}
			all, err := unwrap(s.clients.Rentals.List(ctx))
			if err != nil {
				return err
			}

			filtered := services.FilterRentals(all.Items, domain.RentalStatus(status))
			totalPages := services.TotalPages(len(filtered), services.DefaultPageSize)
			current := int(page)
			if current > totalPages {
				current = totalPages
			}
			if current < 1 {
				current = 1
			}
			items := services.Paginate(filtered, current, services.DefaultPageSize)

			if opts.output == "json" {
				return p.JSON(items)
			}
			t := newTable("ID", "CUSTOMER", "MOTORBIKE", "START", "END", "TOTAL", "STATUS")
			for _, r := range items {
				t.AddRow(r.ID, customerName(r), motorbikeName(r), domain.FormatDate(r.StartDate),
					domain.FormatDate(r.EndDate), domain.FormatPrice(r.TotalPrice), string(r.Status))
			}
			t.Render(p)
			p.Info("%d rentals, page %d of %d", len(filtered), current, totalPages)
			return nil
		},
	}
	list.Flags().StringVar(&status, "status", "", "filter by status: "+joinValues(domain.RentalStatuses))
	list.Flags().Int64Var(&page, "page", 1, "page number")

	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change the status of a rental",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, next := args[0], domain.RentalStatus(strings.ToUpper(args[1]))
			if !next.Valid() {
				return fmt.Errorf("unknown status %q, expected one of %s", args[1], joinValues(domain.RentalStatuses))
			}

			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}

			rental, err := unwrap(s.clients.Rentals.Get(ctx, id))
			if err != nil {
				return err
			}
			if rental.Status == next {
				p.Warn("Rental %s is already %s, nothing to do", id, next)
				return nil
			}
			if _, err := unwrap(s.clients.Rentals.UpdateStatus(ctx, id, next)); err != nil {
				return err
			}
			p.Success("%s: %s → %s", domain.MsgRentalStatusUpdated, rental.Status, next)
			return nil
		},
	}

	cmd.AddCommand(list, setStatus)
	return cmd
}

func newUsersCommand(opts *options, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Browse customer and admin accounts",
	}

	var q ports.UserQuery
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := &flagChecks{}
			checks.minimum("page", q.Page, 1)
			checks.minimum("limit", q.Limit, 1)
			if err := checks.err(); err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}
			page, err := unwrap(s.clients.Users.List(ctx, q))
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return p.JSON(page)
			}
			t := newTable("ID", "NAME", "EMAIL", "PHONE", "ROLE", "JOINED")
			for _, u := range page.Items {
				t.AddRow(u.ID, u.Name, u.Email, orDash(u.Phone), string(u.Role), domain.FormatDate(u.CreatedAt))
			}
			t.Render(p)
			p.Info("%d of %d users (page %d)", len(page.Items), page.Total, q.Page)
			return nil
		},
	}
	list.Flags().Int64Var(&q.Page, "page", 1, "page number")
	list.Flags().Int64Var(&q.Limit, "limit", services.DefaultPageSize, "page size")
	list.Flags().StringVar(&q.Search, "search", "", "search by name or email")

	var reg domain.RegisterPayload
	register := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		Long:  "Creates an account through the public sign-up endpoint. New accounts get the CUSTOMER role.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.New().Struct(reg); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrMissingFields, err)
			}

			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}
			user, err := unwrap(s.clients.Auth.Register(ctx, reg))
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return p.JSON(user)
			}
			p.Success("Registered %s (%s), id %s", user.Name, user.Email, user.ID)
			return nil
		},
	}
	register.Flags().StringVar(&reg.Name, "name", "", "full name")
	register.Flags().StringVarP(&reg.Email, "email", "e", "", "email")
	register.Flags().StringVarP(&reg.Password, "password", "p", "", "initial password")
	register.Flags().StringVar(&reg.Phone, "phone", "", "phone number")

	cmd.AddCommand(list, register)
	return cmd
}

func newBlogsCommand(opts *options, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "blogs",
		Aliases: []string{"blog"},
		Short:   "Browse blog posts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List blog posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}
			page, err := unwrap(s.clients.Blogs.List(ctx))
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return p.JSON(page)
			}
			t := newTable("ID", "TITLE", "TAG", "AUTHOR", "CREATED")
			for _, b := range page.Items {
				t.AddRow(b.ID, b.Title, orDash(b.Tag), orDash(b.Author), domain.FormatDate(b.CreatedAt))
			}
			t.Render(p)
			p.Info("%d blog posts", page.Total)
			return nil
		},
	})
	return cmd
}

func newPromotionsCommand(opts *options, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "promotions",
		Aliases: []string{"promotion", "promo"},
		Short:   "Browse promotions",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List promotions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.requireLogin(ctx); err != nil {
				return err
			}
			page, err := unwrap(s.clients.Promotions.List(ctx))
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return p.JSON(page)
			}
			t := newTable("ID", "TITLE", "BADGE", "ACTIVE", "START", "END")
			for _, pr := range page.Items {
				active := "no"
				if pr.IsActive {
					active = "yes"
				}
				t.AddRow(pr.ID, pr.Title, orDash(pr.Badge), active, optionalDate(pr.StartDate), optionalDate(pr.EndDate))
			}
			t.Render(p)
			p.Info("%d promotions", page.Total)
			return nil
		},
	})
	return cmd
}

func customerName(r domain.Rental) string {
	if r.User == nil {
		return "-"
	}
	return r.User.Name
}

func motorbikeName(r domain.Rental) string {
	if r.Motorbike == nil {
		return "-"
	}
	return r.Motorbike.Name
}

func optionalDate(dt *strfmt.DateTime) string {
	if dt == nil {
		return "-"
	}
	return domain.FormatDate(*dt)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
