package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/forgo/roam/api/pkg/jwt"
)

// dev-token signs a development bearer token for exercising the API
// locally. Production tokens come from the identity service.
func main() {
	privateKeyPath := flag.String("key", "./keys/private.pem", "Path to JWT private key")
	userID := flag.String("user", "user:dev", "User ID for the token")
	username := flag.String("username", "dev", "Username for the token")
	issuer := flag.String("issuer", "roam.forgo.software", "JWT issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	generate := flag.Bool("generate-keys", false, "Generate a key pair at ./keys and exit")

	flag.Parse()

	if *generate {
		if err := os.MkdirAll("./keys", 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating key directory: %v\n", err)
			os.Exit(1)
		}
		if err := jwt.GenerateKeyPair("./keys/private.pem", "./keys/public.pem"); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating keys: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote ./keys/private.pem and ./keys/public.pem")
		return
	}

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: *privateKeyPath,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate a key pair first: dev-token -generate-keys\n")
		os.Exit(1)
	}

	token, err := jwtService.Sign(jwt.Claims{
		UserID:   *userID,
		Username: *username,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"user_id":      *userID,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	fmt.Println(token)
}
