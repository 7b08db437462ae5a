package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"univen.com/backoffice/config"
	"univen.com/backoffice/security"
)

func main() {
	user := flag.String("user", "", "operator user name")
	email := flag.String("email", "", "operator email")
	role := flag.String("role", "agent", "operator role")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	token, err := security.CreateAPIToken(&security.Identity{
		UserName: *user,
		Email:    *email,
		Role:     *role,
	}, cfg.Auth.SigningSecret, cfg.Auth.Issuer, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
