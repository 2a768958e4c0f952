// Package cli implements the interactive text menu of the store.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/bestbuy-store/internal/domain/order"
	"github.com/xenking/bestbuy-store/internal/domain/product"
	"github.com/xenking/bestbuy-store/internal/domain/store"
)

const menu = `
    Store Menu
    ----------
1. List all products in store
2. Show total amount in store
3. Make an order
4. Quit
`

// Catalog is the read side of the store used by the menu.
type Catalog interface {
	ActiveProducts() []product.Product
	TotalQuantity() int
}

// OrderPlacer places orders built by the menu.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req order.PlaceOrderRequest) (*order.Order, error)
}

// Shell runs the menu loop: it reads choices line by line and writes
// listings, prompts and results to out.
type Shell struct {
	catalog Catalog
	orders  OrderPlacer
	out     io.Writer

	lines   <-chan string
	readErr error
}

// New creates a Shell writing to out.
func New(catalog Catalog, orders OrderPlacer, out io.Writer) *Shell {
	return &Shell{
		catalog: catalog,
		orders:  orders,
		out:     out,
	}
}

// Run serves the menu until the user quits, in is exhausted, or ctx is
// canceled. Reaching the end of in is not an error.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	s.readErr = nil
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		// Read by prompt only after lines is closed.
		s.readErr = scanner.Err()
	}()
	s.lines = lines

	err := s.loop(ctx)
	switch {
	case errors.Is(err, errInputFailed):
		return errors.Wrap(s.readErr, "read input")
	case errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}

func (s *Shell) loop(ctx context.Context) error {
	for {
		s.print(menu)
		choice, err := s.prompt(ctx, "Please choose a number: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.listProducts()
		case "2":
			s.printf("Total of %d items in store\n", s.catalog.TotalQuantity())
		case "3":
			if err := s.makeOrder(ctx); err != nil {
				return err
			}
		case "4":
			return nil
		default:
			s.print("Invalid choice, please try again.\n")
		}
	}
}

func (s *Shell) listProducts() {
	active := s.catalog.ActiveProducts()
	if len(active) == 0 {
		s.print("No active products in the store.\n")
		return
	}

	s.print("------\n")
	for i, p := range active {
		s.printf("%d. %s\n", i+1, p.Show())
	}
	s.print("------\n")
}

func (s *Shell) makeOrder(ctx context.Context) error {
	var items []store.LineItem

	s.listProducts()
	s.print("When you want to finish order, enter empty text.\n")
	for {
		choice, err := s.prompt(ctx, "Which product # do you want? ")
		if err != nil {
			return err
		}
		if choice == "" {
			break
		}
		amount, err := s.prompt(ctx, "What amount do you want? ")
		if err != nil {
			return err
		}
		if amount == "" {
			break
		}

		item, ok := s.lineItem(choice, amount)
		if !ok {
			s.print("Error adding product!\n")
			continue
		}
		items = append(items, item)
		s.print("Product added to list!\n")
	}

	if len(items) == 0 {
		s.print("No items added to the order.\n")
		return nil
	}

	o, err := s.orders.PlaceOrder(ctx, order.PlaceOrderRequest{Items: items})
	if err != nil {
		s.printf("Error while making order! %s\n", err)
		return nil
	}
	s.printf("Order total cost: %s dollars.\n", o.Total)
	return nil
}

// lineItem parses a product number and amount entered by the user. Stock is
// checked for stocked products only; the product itself enforces the rest
// when the order is placed.
func (s *Shell) lineItem(choice, amount string) (store.LineItem, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return store.LineItem{}, false
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		return store.LineItem{}, false
	}

	active := s.catalog.ActiveProducts()
	if index < 1 || index > len(active) {
		return store.LineItem{}, false
	}
	p := active[index-1]
	if quantity < 1 {
		return store.LineItem{}, false
	}
	if p.Kind() != product.KindUnlimited && quantity > p.Quantity() {
		return store.LineItem{}, false
	}
	return store.LineItem{Product: p, Quantity: quantity}, true
}

// errInputFailed signals that the input stopped on a read error, stored in
// readErr.
var errInputFailed = errors.New("input failed")

// prompt writes text and waits for the next input line. It returns io.EOF
// once the input is exhausted.
func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	s.print(text)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			if s.readErr != nil {
				return "", errInputFailed
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
