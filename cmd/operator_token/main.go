package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/pageza/promptchef/backend/config"
	"github.com/pageza/promptchef/backend/internal/service"
)

func main() {
	subject := flag.String("subject", "operator", "Name recorded in the token's sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "How long the token stays valid")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	secret := config.OperatorSecret()
	if secret == "" {
		log.Fatal("OPERATOR_JWT_SECRET or OPERATOR_JWT_SECRET_FILE must be set")
	}

	token, err := service.NewOperatorTokenService(secret).GenerateToken(*subject, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
