package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"univen.com/backoffice/config"
	"univen.com/backoffice/console"
	"univen.com/backoffice/core"
)

// Ad-hoc lookups against the customer store, for operators without portal
// access: -id prints one account profile, -q searches.
func main() {
	id := flag.String("id", "", "customer id to look up")
	query := flag.String("q", "", "search term")
	flag.Parse()

	if *id == "" && *query == "" {
		fmt.Fprintln(os.Stderr, "usage: console -id <uuid> | -q <term>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := core.Connect(cfg.Database.GetDSN(), cfg.Database.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}

	svc := core.NewCustomerService(db, zap.NewNop())
	ctx := context.Background()

	if *id != "" {
		customer := svc.GetByID(ctx, *id)
		if customer == nil {
			log.Fatalf("customer %s not found", *id)
		}
		console.PrintCustomer(customer)
		return
	}

	page, err := svc.Search(ctx, *query, 1, 20)
	if err != nil {
		log.Fatal(err)
	}
	console.PrintPage(page)
}
