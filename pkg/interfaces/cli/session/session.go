// Package session drives the interactive warehouse browsing loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/vkarsten/warehouse-management-system/pkg/application/services"
	"github.com/vkarsten/warehouse-management-system/pkg/domain/entities"
	"github.com/vkarsten/warehouse-management-system/pkg/interfaces/cli/output"
)

// action is one entry of the numbered main menu
type action int

const (
	actionListWarehouses action = iota + 1
	actionBrowseCategories
	actionSearchAndOrder
	actionQuit
)

// Session runs the interactive terminal loop: greet the user, offer the
// action menu, dispatch to the query and order services, repeat until the
// user quits.
type Session struct {
	queries *services.QueryService
	orders  *services.OrderService
	log     *zap.Logger
	out     io.Writer
	now     func() time.Time

	userName string
}

// New creates an interactive session over the given services
func New(queries *services.QueryService, orders *services.OrderService, log *zap.Logger) *Session {
	return &Session{
		queries: queries,
		orders:  orders,
		log:     log,
		out:     os.Stdout,
		now:     time.Now,
	}
}

// Run executes the session until the user quits or aborts. An abort (ctrl+c
// inside a prompt) ends the session cleanly rather than as an error.
func (s *Session) Run(ctx context.Context) error {
	err := s.loop(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		s.goodbye()
		return nil
	}
	return err
}

func (s *Session) loop(ctx context.Context) error {
	if err := s.welcome(ctx); err != nil {
		return err
	}

	for {
		choice, err := s.menuChoice(ctx)
		if err != nil {
			return err
		}

		switch choice {
		case actionListWarehouses:
			fmt.Fprint(s.out, output.WarehouseListings(s.queries.WarehouseListings()))
		case actionBrowseCategories:
			err = s.browseCategories(ctx)
		case actionSearchAndOrder:
			err = s.searchAndOrder(ctx)
		case actionQuit:
			s.goodbye()
			return nil
		}
		if err != nil {
			return err
		}

		again, err := s.confirm(ctx, "Do you want to perform another action?")
		if err != nil {
			return err
		}
		if !again {
			s.goodbye()
			return nil
		}
	}
}

func (s *Session) welcome(ctx context.Context) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Please enter your user name").
			Validate(notEmpty("user name")).
			Value(&s.userName),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	fmt.Fprintln(s.out, output.Styles.Title.Render(fmt.Sprintf("Hello %s!", s.userName)))
	return nil
}

func (s *Session) menuChoice(ctx context.Context) (action, error) {
	var choice action
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[action]().
			Title("What would you like to do?").
			Options(
				huh.NewOption("1. List items by warehouse", actionListWarehouses),
				huh.NewOption("2. Browse items by category", actionBrowseCategories),
				huh.NewOption("3. Search an item and place an order", actionSearchAndOrder),
				huh.NewOption("4. Quit", actionQuit),
			).
			Value(&choice),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return 0, err
	}
	return choice, nil
}

func (s *Session) browseCategories(ctx context.Context) error {
	menu := s.queries.CategoryMenu()
	if len(menu) == 0 {
		fmt.Fprintln(s.out, output.Styles.Muted.Render("The catalog has no categories."))
		return nil
	}

	options := make([]huh.Option[string], 0, len(menu))
	for _, choice := range menu {
		label := fmt.Sprintf("%d. %s (%d items)", choice.Index, choice.Name, choice.Count)
		options = append(options, huh.NewOption(label, choice.Name))
	}

	var category string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Choose a category").
			Options(options...).
			Value(&category),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	fmt.Fprint(s.out, output.CategoryListing(category, s.queries.ItemsByCategory(category)))
	return nil
}

func (s *Session) searchAndOrder(ctx context.Context) error {
	var itemName string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("What is the name of the item?").
			Validate(notEmpty("item name")).
			Value(&itemName),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	report := s.queries.AvailabilityReport(itemName, s.now())
	fmt.Fprint(s.out, output.Availability(report))

	if report.Total == 0 {
		return nil
	}

	wantsOrder, err := s.confirm(ctx, "Would you like to order this item?")
	if err != nil || !wantsOrder {
		return err
	}

	quantity, err := s.askQuantity(ctx)
	if err != nil {
		return err
	}

	order, err := s.orders.PlaceOrder(report.ItemName, quantity)

	var insufficient *services.InsufficientStockError
	if errors.As(err, &insufficient) {
		fmt.Fprintln(s.out, output.Styles.Warning.Render(fmt.Sprintf(
			"There are not this many available. The maximum amount that can be ordered is %d.",
			insufficient.Available)))

		capped, confirmErr := s.confirm(ctx, "Would you like to order this amount?")
		if confirmErr != nil || !capped {
			return confirmErr
		}
		order, err = s.orders.PlaceOrder(report.ItemName, insufficient.Available)
	}
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	s.log.Info("order placed",
		zap.String("reference", order.Reference),
		zap.String("item", order.ItemName),
		zap.Int("quantity", int(order.Quantity)),
	)
	fmt.Fprint(s.out, output.OrderConfirmation(order.Reference, order.ItemName, int(order.Quantity)))
	return nil
}

func (s *Session) askQuantity(ctx context.Context) (entities.Quantity, error) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("How many would you like to order?").
			Validate(positiveNumber).
			Value(&raw),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return 0, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid order amount %q: %w", raw, err)
	}
	return entities.Quantity(quantity), nil
}

func (s *Session) confirm(ctx context.Context, title string) (bool, error) {
	var answer bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return answer, nil
}

func (s *Session) goodbye() {
	name := s.userName
	if name == "" {
		name = "stranger"
	}
	fmt.Fprintln(s.out, output.Styles.Title.Render(fmt.Sprintf("Thank you for your visit, %s!", name)))
}

// notEmpty validates a required free-text prompt
func notEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// positiveNumber recovers malformed numeric input by re-prompting instead of
// crashing the session.
func positiveNumber(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return errors.New("please enter a number")
	}
	if n <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}
