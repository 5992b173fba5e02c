// Command hashpw produces the Argon2id hash expected in
// NEXTLAYER_ADMIN_PASSWORD_HASH from a plaintext editor password.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/nextlayer-studio/storefront-backend/pkg/config"
	"github.com/nextlayer-studio/storefront-backend/pkg/security"
)

func main() {
	password := flag.String("password", "", "password to hash (omit to read from stdin)")
	flag.Parse()

	_ = godotenv.Load()

	var cfg config.PasswordConfig
	if err := envconfig.Process(config.EnvPrefix, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parsing argon parameters: %v\n", err)
		os.Exit(1)
	}

	plain := *password
	if plain == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintf(os.Stderr, "reading password from stdin: %v\n", err)
			os.Exit(1)
		}
		plain = strings.TrimRight(line, "\r\n")
	}

	hash, err := security.HashPassword(plain, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashing password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
